package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"asset-stock/src/requests"
	"asset-stock/src/services"
)

type AssetHandler struct {
	Service *services.AssetService
}

// ListModels - Catalog snapshot
func (h *AssetHandler) ListModels(c *gin.Context) {
	items, err := h.Service.ListModels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

// CreateModel - Register a model definition
func (h *AssetHandler) CreateModel(c *gin.Context) {
	var req requests.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Service.CreateModel(services.CreateModelRequest{
		Category:          req.Category,
		Type:              req.Type,
		Name:              req.Name,
		Brand:             req.Brand,
		BulkType:          req.BulkType,
		UnitOfMeasure:     req.UnitOfMeasure,
		BaseUnitOfMeasure: req.BaseUnitOfMeasure,
		QuantityPerUnit:   req.QuantityPerUnit,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Model created successfully",
		"data":    item,
	})
}

// ListAssets - Registry snapshot
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.Service.ListAssets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": assets})
}

// CreateAsset - Intake of one physical record
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req requests.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := h.Service.CreateAsset(services.CreateAssetRequest{
		Name:           req.Name,
		Brand:          req.Brand,
		Status:         req.Status,
		InitialBalance: req.InitialBalance,
		PurchasePrice:  req.PurchasePrice,
		CreatedBy:      req.CreatedBy,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Asset created successfully",
		"data":    asset,
	})
}

// SplitContainer - Cut a measured container into parent + remainder
func (h *AssetHandler) SplitContainer(c *gin.Context) {
	var req requests.SplitContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset_id"})
		return
	}

	child, err := h.Service.SplitContainer(services.SplitContainerRequest{
		AssetID:   assetID,
		Qty:       req.Qty,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Container split successfully",
		"data":    child,
	})
}

// RecordUsage - Append a consumption event
func (h *AssetHandler) RecordUsage(c *gin.Context) {
	var req requests.RecordUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usage, err := h.Service.RecordUsage(services.RecordUsageRequest{
		Name:      req.Name,
		Brand:     req.Brand,
		Qty:       req.Qty,
		DocNumber: req.DocNumber,
		Kind:      req.Kind,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usage recorded successfully",
		"data":    usage,
	})
}
