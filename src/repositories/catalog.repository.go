package repositories

import (
	"errors"

	"gorm.io/gorm"

	"asset-stock/src/models"
)

type CatalogRepository struct {
	DB *gorm.DB
}

// ListModels - Snapshot of every model definition
func (r *CatalogRepository) ListModels() ([]models.StandardItem, error) {
	var items []models.StandardItem
	err := r.DB.Order("name ASC, brand ASC").Find(&items).Error
	return items, err
}

// FindModel - Resolve one model definition by (name, brand)
func (r *CatalogRepository) FindModel(name, brand string) (*models.StandardItem, error) {
	var item models.StandardItem
	err := r.DB.Where("name = ? AND brand = ?", name, brand).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateModel - Register a model definition
func (r *CatalogRepository) CreateModel(item *models.StandardItem) error {
	return r.DB.Create(item).Error
}

// EnsureCategory - Find or create a category by name
func (r *CatalogRepository) EnsureCategory(name string) (models.Category, error) {
	category := models.Category{Name: name}
	err := r.DB.FirstOrCreate(&category, "name = ?", name).Error
	return category, err
}

// EnsureItemType - Find or create a type under a category
func (r *CatalogRepository) EnsureItemType(categoryID uint, name string) (models.ItemType, error) {
	itemType := models.ItemType{CategoryID: categoryID, Name: name}
	err := r.DB.FirstOrCreate(&itemType, "category_id = ? AND name = ?", categoryID, name).Error
	return itemType, err
}
