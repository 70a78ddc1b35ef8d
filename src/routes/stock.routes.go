package routes

import (
	"github.com/gin-gonic/gin"

	"asset-stock/src/handlers"
)

func RegisterStockRoutes(r *gin.RouterGroup, handler *handlers.StockHandler) {
	// Read path
	r.GET("/stock/overview", handler.GetOverview)
	r.GET("/stock/alerts", handler.GetAlerts)
	r.GET("/stock/availability", handler.GetAvailability)
	r.GET("/stock/thresholds", handler.GetThresholds)

	// Admin + reservation lifecycle
	r.PUT("/stock/thresholds", handler.SetThreshold)
	r.POST("/reservations", handler.CreateReservation)
	r.POST("/reservations/:id/commit", handler.CommitReservation)
	r.POST("/reservations/:id/release", handler.ReleaseReservation)
}

func RegisterAssetRoutes(r *gin.RouterGroup, handler *handlers.AssetHandler) {
	r.GET("/catalog/models", handler.ListModels)
	r.POST("/catalog/models", handler.CreateModel)

	r.GET("/assets", handler.ListAssets)
	r.POST("/assets", handler.CreateAsset)
	r.POST("/assets/split", handler.SplitContainer)

	r.POST("/usage", handler.RecordUsage)
}
