package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"asset-stock/src/models"
	"asset-stock/src/repositories"
)

// ============ REQUEST STRUCTS ============
type CreateModelRequest struct {
	Category          string
	Type              string
	Name              string
	Brand             string
	BulkType          string
	UnitOfMeasure     string
	BaseUnitOfMeasure *string
	QuantityPerUnit   *float64
}

type CreateAssetRequest struct {
	Name           string
	Brand          string
	Status         string
	InitialBalance *float64
	PurchasePrice  decimal.Decimal
	CreatedBy      string
}

type SplitContainerRequest struct {
	AssetID   uuid.UUID
	Qty       float64
	CreatedBy string
}

type RecordUsageRequest struct {
	Name      string
	Brand     string
	Qty       float64
	DocNumber string
	Kind      string
}

// ============ ASSET SERVICE ============

// AssetService is the write path the engine reads from: catalog definitions,
// asset intake, container splits and the consumption ledger.
type AssetService struct {
	DB      *gorm.DB
	Assets  *repositories.AssetRepository
	Catalog *repositories.CatalogRepository
	Ledger  *repositories.LedgerRepository
	Log     *zap.Logger
}

// ListModels - Catalog snapshot
func (s *AssetService) ListModels() ([]models.StandardItem, error) {
	return s.Catalog.ListModels()
}

// ListAssets - Registry snapshot
func (s *AssetService) ListAssets() ([]models.Asset, error) {
	return s.Assets.ListAssets()
}

// CreateModel - Register a model definition in the catalog
func (s *AssetService) CreateModel(req CreateModelRequest) (*models.StandardItem, error) {
	bulkType := models.BulkType(req.BulkType)
	if !bulkType.Valid() {
		return nil, errors.New("invalid bulk type")
	}
	if bulkType == models.BulkTypeMeasurement {
		if req.BaseUnitOfMeasure == nil || req.QuantityPerUnit == nil {
			return nil, errors.New("measurement models require base_unit_of_measure and quantity_per_unit")
		}
		if *req.QuantityPerUnit <= 0 {
			return nil, errors.New("quantity_per_unit must be positive")
		}
	} else if req.BaseUnitOfMeasure != nil || req.QuantityPerUnit != nil {
		return nil, errors.New("base_unit_of_measure and quantity_per_unit only apply to measurement models")
	}

	existing, err := s.Catalog.FindModel(req.Name, req.Brand)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("model already exists for this name and brand")
	}

	category, err := s.Catalog.EnsureCategory(req.Category)
	if err != nil {
		return nil, err
	}
	itemType, err := s.Catalog.EnsureItemType(category.ID, req.Type)
	if err != nil {
		return nil, err
	}

	item := &models.StandardItem{
		TypeID:            itemType.ID,
		Name:              req.Name,
		Brand:             req.Brand,
		BulkType:          bulkType,
		UnitOfMeasure:     req.UnitOfMeasure,
		BaseUnitOfMeasure: req.BaseUnitOfMeasure,
		QuantityPerUnit:   req.QuantityPerUnit,
	}
	if err := s.Catalog.CreateModel(item); err != nil {
		return nil, err
	}
	return item, nil
}

// CreateAsset - Intake of one physical record. New measurement containers
// are seeded with the model's nominal capacity unless an explicit initial
// balance is given.
func (s *AssetService) CreateAsset(req CreateAssetRequest) (*models.Asset, error) {
	def, err := s.Catalog.FindModel(req.Name, req.Brand)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, errors.New("no such model in catalog")
	}

	status := models.AssetStatus(req.Status)
	if req.Status == "" {
		status = models.StatusInStorage
	}
	if !status.Valid() {
		return nil, errors.New("invalid asset status")
	}

	var initialBalance float64
	if def.IsMeasurement() {
		initialBalance = *def.QuantityPerUnit
		if req.InitialBalance != nil {
			initialBalance = *req.InitialBalance
		}
		if initialBalance <= 0 {
			return nil, errors.New("initial balance must be positive")
		}
	} else if req.InitialBalance != nil {
		return nil, errors.New("initial balance only applies to measurement models")
	}

	var category, itemType string
	var parentType models.ItemType
	if err := s.DB.First(&parentType, "id = ?", def.TypeID).Error; err == nil {
		itemType = parentType.Name
		var parentCategory models.Category
		if err := s.DB.First(&parentCategory, "id = ?", parentType.CategoryID).Error; err == nil {
			category = parentCategory.Name
		}
	}

	asset := &models.Asset{
		ID:             uuid.New(),
		Name:           req.Name,
		Brand:          req.Brand,
		Category:       category,
		Type:           itemType,
		Status:         status,
		InitialBalance: initialBalance,
		PurchasePrice:  req.PurchasePrice,
		CreatedBy:      req.CreatedBy,
		CreatedAt:      time.Now(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Assets.Create(tx, asset)
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// SplitContainer - Cut a measured container in two: the parent keeps its
// initial balance (and the model's grand total), the remainder becomes a
// child asset referencing it. The split never changes the model's total
// content.
func (s *AssetService) SplitContainer(req SplitContainerRequest) (*models.Asset, error) {
	if req.Qty <= 0 {
		return nil, errors.New("split qty must be positive")
	}

	var child *models.Asset
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var parent models.Asset
		if err := tx.First(&parent, "id = ?", req.AssetID).Error; err != nil {
			return err
		}

		def, err := s.Catalog.FindModel(parent.NormalizedName(), parent.Brand)
		if err != nil {
			return err
		}
		if def == nil || !def.IsMeasurement() {
			return errors.New("only measured containers can be split")
		}
		if parent.Status != models.StatusInStorage {
			return errors.New("only in-storage containers can be split")
		}

		remaining := parent.EffectiveBalance()
		if req.Qty >= remaining {
			return fmt.Errorf("split qty %g must be below the remaining balance %g", req.Qty, remaining)
		}

		keep := remaining - req.Qty
		parent.CurrentBalance = &keep
		if err := s.Assets.Save(tx, &parent); err != nil {
			return err
		}

		child = &models.Asset{
			ID:             uuid.New(),
			Name:           parent.NormalizedName() + models.SplitSuffix,
			Brand:          parent.Brand,
			Category:       parent.Category,
			Type:           parent.Type,
			Status:         models.StatusInStorage,
			InitialBalance: req.Qty,
			ParentAssetID:  &parent.ID,
			PurchasePrice:  decimal.Zero,
			CreatedBy:      req.CreatedBy,
			CreatedAt:      time.Now(),
		}
		return s.Assets.Create(tx, child)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("container split",
		zap.String("parent_id", req.AssetID.String()),
		zap.String("child_id", child.ID.String()),
		zap.Float64("qty", req.Qty),
	)
	return child, nil
}

// RecordUsage - Append a consumption event and draw the content down from
// in-storage containers, oldest first.
func (s *AssetService) RecordUsage(req RecordUsageRequest) (*models.MaterialUsage, error) {
	if req.Qty <= 0 {
		return nil, errors.New("usage qty must be positive")
	}
	kind := models.UsageKind(req.Kind)
	if kind != models.UsageInstallation && kind != models.UsageMaintenance {
		return nil, errors.New("invalid usage kind")
	}

	def, err := s.Catalog.FindModel(req.Name, req.Brand)
	if err != nil {
		return nil, err
	}
	if def == nil || !def.IsMeasurement() {
		return nil, errors.New("material usage only applies to measurement models")
	}

	var usage *models.MaterialUsage
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var containers []models.Asset
		if err := tx.
			Where("(name = ? OR name = ?) AND brand = ? AND status = ?",
				req.Name, req.Name+models.SplitSuffix, req.Brand, models.StatusInStorage).
			Find(&containers).Error; err != nil {
			return err
		}
		sort.Slice(containers, func(i, j int) bool {
			return containers[i].CreatedAt.Before(containers[j].CreatedAt)
		})

		remaining := req.Qty
		for i := range containers {
			if remaining <= 0 {
				break
			}
			balance := containers[i].EffectiveBalance()
			if balance <= 0 {
				continue
			}
			draw := balance
			if draw > remaining {
				draw = remaining
			}
			updated := balance - draw
			containers[i].CurrentBalance = &updated
			if err := s.Assets.Save(tx, &containers[i]); err != nil {
				return err
			}
			remaining -= draw
		}
		if remaining > 0 {
			return fmt.Errorf("insufficient content: short by %g", remaining)
		}

		usage = &models.MaterialUsage{
			ID:        uuid.New(),
			Name:      req.Name,
			Brand:     req.Brand,
			Qty:       req.Qty,
			DocNumber: req.DocNumber,
			Kind:      kind,
			CreatedAt: time.Now(),
		}
		return s.Ledger.CreateMaterialUsage(tx, usage)
	})
	if err != nil {
		return nil, err
	}
	return usage, nil
}
