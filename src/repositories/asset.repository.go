package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"asset-stock/src/models"
)

type AssetRepository struct {
	DB *gorm.DB
}

// ListAssets - Snapshot read of the full registry
func (r *AssetRepository) ListAssets() ([]models.Asset, error) {
	var assets []models.Asset
	err := r.DB.Order("created_at ASC").Find(&assets).Error
	return assets, err
}

// ListByModel - Assets of one model key, split remainders included
func (r *AssetRepository) ListByModel(name, brand string) ([]models.Asset, error) {
	var assets []models.Asset
	err := r.DB.
		Where("(name = ? OR name = ?) AND brand = ?", name, name+models.SplitSuffix, brand).
		Order("created_at ASC").
		Find(&assets).Error
	return assets, err
}

// FindByID - Single asset lookup
func (r *AssetRepository) FindByID(id uuid.UUID) (*models.Asset, error) {
	var asset models.Asset
	err := r.DB.First(&asset, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// Create - Register a physical asset
func (r *AssetRepository) Create(tx *gorm.DB, asset *models.Asset) error {
	return tx.Create(asset).Error
}

// Save - Persist asset mutations
func (r *AssetRepository) Save(tx *gorm.DB, asset *models.Asset) error {
	return tx.Save(asset).Error
}
