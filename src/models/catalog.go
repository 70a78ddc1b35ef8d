package models

import (
	"time"
)

// ============ ENUMS & TYPES ============
type BulkType string

const (
	BulkTypeIndividual  BulkType = "individual"
	BulkTypeCount       BulkType = "count"
	BulkTypeMeasurement BulkType = "measurement"
)

func (b BulkType) Valid() bool {
	switch b {
	case BulkTypeIndividual, BulkTypeCount, BulkTypeMeasurement:
		return true
	default:
		return false
	}
}

// ============ CATALOG MODELS ============
type Category struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:varchar(100);unique;not null" json:"name"`
	CreatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}

type ItemType struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt  time.Time
}

func (ItemType) TableName() string {
	return "item_types"
}

// StandardItem is a model definition, identified by (name, brand). It carries
// the tracking semantics for every physical asset of that model:
// individually serialized units, countable bulk, or measured bulk where each
// record is a container with a depletable content balance.
type StandardItem struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TypeID uint   `gorm:"not null;index" json:"type_id"`
	Name   string `gorm:"type:varchar(200);not null;index:idx_model_key,unique" json:"name"`
	Brand  string `gorm:"type:varchar(100);not null;index:idx_model_key,unique" json:"brand"`

	BulkType      BulkType `gorm:"type:varchar(20);not null" json:"bulk_type"`
	UnitOfMeasure string   `gorm:"type:varchar(30);not null" json:"unit_of_measure"`

	// Defined iff BulkType is measurement.
	BaseUnitOfMeasure *string  `gorm:"type:varchar(30)" json:"base_unit_of_measure,omitempty"`
	QuantityPerUnit   *float64 `json:"quantity_per_unit,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StandardItem) TableName() string {
	return "standard_items"
}

func (m StandardItem) IsMeasurement() bool {
	return m.BulkType == BulkTypeMeasurement
}

// Key returns the model key used to group physical assets into one stock line.
func (m StandardItem) Key() string {
	return ModelKey(m.Name, m.Brand)
}

// ModelKey builds the name|brand identity of a stock line.
func ModelKey(name, brand string) string {
	return name + "|" + brand
}
