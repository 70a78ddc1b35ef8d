package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"asset-stock/src/models"
)

type ThresholdRepository struct {
	DB *gorm.DB
}

// GetAll - All overrides as modelKey -> threshold
func (r *ThresholdRepository) GetAll() (map[string]int, error) {
	var rows []models.ThresholdOverride
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	overrides := make(map[string]int, len(rows))
	for _, row := range rows {
		overrides[row.ModelKey] = row.Threshold
	}
	return overrides, nil
}

// Set - Upsert one override, last write wins
func (r *ThresholdRepository) Set(modelKey string, threshold int, updatedBy string) error {
	row := models.ThresholdOverride{
		ModelKey:  modelKey,
		Threshold: threshold,
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now(),
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "model_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"threshold", "updated_by", "updated_at"}),
	}).Create(&row).Error
}

// Delete - Drop an override, falling back to the type-aware default
func (r *ThresholdRepository) Delete(modelKey string) error {
	return r.DB.Where("model_key = ?", modelKey).Delete(&models.ThresholdOverride{}).Error
}
