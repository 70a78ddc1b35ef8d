package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"asset-stock/src/models"
	"asset-stock/src/repositories"
	"asset-stock/src/stock"
)

// ============ REQUEST STRUCTS ============
type ReservationRequest struct {
	Name      string
	Brand     string
	Unit      string
	Qty       float64
	DocNumber string
	CreatedBy string
}

// ============ RESULT STRUCTS ============
type OverviewRecord struct {
	stock.ModelStock
	Threshold int         `json:"threshold"`
	Level     stock.Level `json:"level"`
}

type OverviewResult struct {
	Records  []OverviewRecord   `json:"records"`
	Alerts   stock.AlertSummary `json:"alerts"`
	Warnings stock.Warnings     `json:"warnings"`
}

// ============ STOCK SERVICE ============

// StockService exposes the aggregation, availability and alerting read path.
// Every call recomputes from a fresh registry snapshot; nothing is cached.
type StockService struct {
	DB         *gorm.DB
	Assets     *repositories.AssetRepository
	Catalog    *repositories.CatalogRepository
	Ledger     *repositories.LedgerRepository
	Thresholds *repositories.ThresholdRepository
	Log        *zap.Logger
}

// Overview - Aggregate the registry into per-model stock lines with alert levels
func (s *StockService) Overview() (*OverviewResult, error) {
	assets, err := s.Assets.ListAssets()
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	catalog, err := s.Catalog.ListModels()
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	usage, err := s.Ledger.ListMaterialUsage()
	if err != nil {
		return nil, fmt.Errorf("list material usage: %w", err)
	}
	overrides, err := s.Thresholds.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load threshold overrides: %w", err)
	}

	agg := stock.Aggregate(assets, catalog, usage)
	if agg.Warnings.OutOfRangeBalances > 0 || agg.Warnings.OrphanedChildren > 0 {
		s.Log.Warn("stock aggregation found data-quality anomalies",
			zap.Int("out_of_range_balances", agg.Warnings.OutOfRangeBalances),
			zap.Int("orphaned_children", agg.Warnings.OrphanedChildren),
		)
	}

	result := &OverviewResult{
		Records:  make([]OverviewRecord, 0, len(agg.Records)),
		Alerts:   stock.CountAlerts(agg.Records, overrides),
		Warnings: agg.Warnings,
	}
	for _, rec := range agg.Records {
		threshold := stock.ThresholdFor(rec.Key(), rec.BulkType == models.BulkTypeMeasurement, overrides)
		result.Records = append(result.Records, OverviewRecord{
			ModelStock: rec,
			Threshold:  threshold,
			Level:      stock.Classify(rec.InStorage, threshold),
		})
	}
	return result, nil
}

// Alerts - Only the LOW/OUT stock lines, plus the dashboard counters
func (s *StockService) Alerts() (*OverviewResult, error) {
	overview, err := s.Overview()
	if err != nil {
		return nil, err
	}

	filtered := make([]OverviewRecord, 0)
	for _, rec := range overview.Records {
		if rec.Level != stock.LevelOK {
			filtered = append(filtered, rec)
		}
	}
	overview.Records = filtered
	return overview, nil
}

// CheckAvailability - Allocatable stock for one model, reservations accounted
func (s *StockService) CheckAvailability(req stock.AvailabilityRequest) (stock.Availability, error) {
	catalog, err := s.Catalog.ListModels()
	if err != nil {
		return stock.Availability{}, fmt.Errorf("list models: %w", err)
	}
	assets, err := s.Assets.ListAssets()
	if err != nil {
		return stock.Availability{}, fmt.Errorf("list assets: %w", err)
	}
	pending, err := s.Ledger.ListPendingReservations()
	if err != nil {
		return stock.Availability{}, fmt.Errorf("list pending reservations: %w", err)
	}

	return stock.CheckAvailability(catalog, assets, pending, req), nil
}

// CreateReservation - Open a pending reservation after re-checking
// availability inside the transaction, so two concurrent requesters cannot
// both claim the last container.
func (s *StockService) CreateReservation(req ReservationRequest) (*models.Reservation, error) {
	if req.Qty <= 0 {
		return nil, errors.New("reservation qty must be positive")
	}

	var reservation *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var catalog []models.StandardItem
		if err := tx.Find(&catalog).Error; err != nil {
			return err
		}
		var assets []models.Asset
		if err := tx.Find(&assets).Error; err != nil {
			return err
		}
		var pending []models.Reservation
		if err := tx.Where("status = ?", models.ReservationPending).Find(&pending).Error; err != nil {
			return err
		}

		availability := stock.CheckAvailability(catalog, assets, pending, stock.AvailabilityRequest{
			Name:  req.Name,
			Brand: req.Brand,
			Qty:   req.Qty,
			Unit:  req.Unit,
		})
		if availability.AvailableSmart < req.Qty {
			return fmt.Errorf("insufficient stock: requested %g, available %g", req.Qty, availability.AvailableSmart)
		}

		reservation = &models.Reservation{
			ID:        uuid.New(),
			Name:      req.Name,
			Brand:     req.Brand,
			Unit:      req.Unit,
			Qty:       req.Qty,
			Status:    models.ReservationPending,
			DocNumber: req.DocNumber,
			CreatedBy: req.CreatedBy,
			CreatedAt: time.Now(),
		}
		return s.Ledger.CreateReservation(tx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("model_key", models.ModelKey(req.Name, req.Brand)),
		zap.Float64("qty", req.Qty),
		zap.String("unit", req.Unit),
	)
	return reservation, nil
}

// ResolveReservation - Commit or release a pending reservation
func (s *StockService) ResolveReservation(id uuid.UUID, status models.ReservationStatus) error {
	if status != models.ReservationCommitted && status != models.ReservationReleased {
		return errors.New("reservation can only be resolved to committed or released")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Ledger.ResolveReservation(tx, id, status)
	})
}

// GetThresholds - All overrides, modelKey -> container count
func (s *StockService) GetThresholds() (map[string]int, error) {
	return s.Thresholds.GetAll()
}

// SetThreshold - Replace the default for one model key, last write wins
func (s *StockService) SetThreshold(modelKey string, threshold int, updatedBy string) error {
	if modelKey == "" {
		return errors.New("model key is required")
	}
	if threshold < 0 {
		return errors.New("threshold cannot be negative")
	}
	return s.Thresholds.Set(modelKey, threshold, updatedBy)
}
