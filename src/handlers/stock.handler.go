package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"asset-stock/src/models"
	"asset-stock/src/requests"
	"asset-stock/src/services"
	"asset-stock/src/stock"
)

type StockHandler struct {
	Service *services.StockService
}

// ============ GET ENDPOINTS ============

// GetOverview - Aggregated per-model stock picture
func (h *StockHandler) GetOverview(c *gin.Context) {
	overview, err := h.Service.Overview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records":      overview.Records,
		"alerts":       overview.Alerts,
		"warnings":     overview.Warnings,
		"generated_at": time.Now().Format(time.RFC3339),
	})
}

// GetAlerts - LOW/OUT stock lines plus dashboard counters
func (h *StockHandler) GetAlerts(c *gin.Context) {
	alerts, err := h.Service.Alerts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records":      alerts.Records,
		"alerts":       alerts.Alerts,
		"generated_at": time.Now().Format(time.RFC3339),
	})
}

// GetAvailability - Allocatable stock for one model and unit
func (h *StockHandler) GetAvailability(c *gin.Context) {
	name := c.Query("name")
	brand := c.Query("brand")
	unit := c.Query("unit")
	if name == "" || brand == "" || unit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, brand and unit are required"})
		return
	}

	qty, err := strconv.ParseFloat(c.DefaultQuery("qty", "0"), 64)
	if err != nil || qty < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid qty"})
		return
	}

	availability, err := h.Service.CheckAvailability(stock.AvailabilityRequest{
		Name:  name,
		Brand: brand,
		Qty:   qty,
		Unit:  unit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"model_key":    models.ModelKey(name, brand),
		"requested":    qty,
		"unit":         unit,
		"availability": availability,
	})
}

// GetThresholds - All overrides
func (h *StockHandler) GetThresholds(c *gin.Context) {
	overrides, err := h.Service.GetThresholds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"thresholds": overrides})
}

// ============ WRITE ENDPOINTS ============

// SetThreshold - Upsert one override
func (h *StockHandler) SetThreshold(c *gin.Context) {
	var req requests.SetThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetThreshold(req.ModelKey, *req.Threshold, req.UpdatedBy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Threshold updated successfully",
		"model_key": req.ModelKey,
		"threshold": *req.Threshold,
	})
}

// CreateReservation - Open a pending reservation
func (h *StockHandler) CreateReservation(c *gin.Context) {
	var req requests.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := h.Service.CreateReservation(services.ReservationRequest{
		Name:      req.Name,
		Brand:     req.Brand,
		Unit:      req.Unit,
		Qty:       req.Qty,
		DocNumber: req.DocNumber,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reservation created successfully",
		"data":    reservation,
	})
}

// CommitReservation - Mark a pending reservation fulfilled
func (h *StockHandler) CommitReservation(c *gin.Context) {
	h.resolveReservation(c, models.ReservationCommitted)
}

// ReleaseReservation - Drop a pending reservation's claim
func (h *StockHandler) ReleaseReservation(c *gin.Context) {
	h.resolveReservation(c, models.ReservationReleased)
}

func (h *StockHandler) resolveReservation(c *gin.Context, status models.ReservationStatus) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return
	}

	if err := h.Service.ResolveReservation(id, status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation " + string(status),
		"id":      id,
	})
}
