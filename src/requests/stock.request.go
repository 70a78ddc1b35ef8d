package requests

import "github.com/shopspring/decimal"

// ============ CATALOG ============
type CreateModelRequest struct {
	Category          string   `json:"category" binding:"required"`
	Type              string   `json:"type" binding:"required"`
	Name              string   `json:"name" binding:"required"`
	Brand             string   `json:"brand" binding:"required"`
	BulkType          string   `json:"bulk_type" binding:"required,oneof=individual count measurement"`
	UnitOfMeasure     string   `json:"unit_of_measure" binding:"required"`
	BaseUnitOfMeasure *string  `json:"base_unit_of_measure,omitempty"`
	QuantityPerUnit   *float64 `json:"quantity_per_unit,omitempty"`
}

// ============ ASSET INTAKE ============
type CreateAssetRequest struct {
	Name           string          `json:"name" binding:"required"`
	Brand          string          `json:"brand" binding:"required"`
	Status         string          `json:"status,omitempty"`
	InitialBalance *float64        `json:"initial_balance,omitempty"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	CreatedBy      string          `json:"created_by" binding:"required"`
}

// ============ CONTAINER SPLIT ============
type SplitContainerRequest struct {
	AssetID   string  `json:"asset_id" binding:"required"`
	Qty       float64 `json:"qty" binding:"required,gt=0"`
	CreatedBy string  `json:"created_by" binding:"required"`
}

// ============ RESERVATION ============
type CreateReservationRequest struct {
	Name      string  `json:"name" binding:"required"`
	Brand     string  `json:"brand" binding:"required"`
	Unit      string  `json:"unit" binding:"required"`
	Qty       float64 `json:"qty" binding:"required,gt=0"`
	DocNumber string  `json:"doc_number,omitempty"`
	CreatedBy string  `json:"created_by" binding:"required"`
}

// ============ MATERIAL USAGE ============
type RecordUsageRequest struct {
	Name      string  `json:"name" binding:"required"`
	Brand     string  `json:"brand" binding:"required"`
	Qty       float64 `json:"qty" binding:"required,gt=0"`
	DocNumber string  `json:"doc_number" binding:"required"`
	Kind      string  `json:"kind" binding:"required,oneof=installation maintenance"`
}

// ============ THRESHOLD OVERRIDE ============
type SetThresholdRequest struct {
	ModelKey  string `json:"model_key" binding:"required"`
	Threshold *int   `json:"threshold" binding:"required,gte=0"`
	UpdatedBy string `json:"updated_by" binding:"required"`
}
