package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ============ ENUMS & TYPES ============
type AssetStatus string

const (
	StatusInStorage      AssetStatus = "in_storage"
	StatusInUse          AssetStatus = "in_use"
	StatusInCustody      AssetStatus = "in_custody"
	StatusAwaitingReturn AssetStatus = "awaiting_return"
	StatusDamaged        AssetStatus = "damaged"
	StatusUnderRepair    AssetStatus = "under_repair"
	StatusOutForRepair   AssetStatus = "out_for_repair"
	StatusDecommissioned AssetStatus = "decommissioned"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case StatusInStorage, StatusInUse, StatusInCustody, StatusAwaitingReturn,
		StatusDamaged, StatusUnderRepair, StatusOutForRepair, StatusDecommissioned:
		return true
	default:
		return false
	}
}

// SplitSuffix marks remainder containers created by the legacy console when
// content was partially consumed and physically separated from its parent.
const SplitSuffix = " (Potongan)"

// ============ MAIN ASSET MODEL ============
type Asset struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `gorm:"type:varchar(200);not null;index" json:"name"`
	Brand    string `gorm:"type:varchar(100);not null;index" json:"brand"`
	Category string `gorm:"type:varchar(100)" json:"category"`
	Type     string `gorm:"type:varchar(100)" json:"type"`

	Status AssetStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	// Content tracking, measurement models only. CurrentBalance stays nil
	// until the first consumption; the effective balance then falls back to
	// InitialBalance.
	InitialBalance float64  `json:"initial_balance"`
	CurrentBalance *float64 `json:"current_balance,omitempty"`

	// Remainder containers reference the container they were cut from. Their
	// content was already provisioned under the parent's initial balance.
	ParentAssetID *uuid.UUID `gorm:"type:uuid;index" json:"parent_asset_id,omitempty"`

	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,2)" json:"purchase_price"`

	CreatedBy string `gorm:"type:varchar(100)" json:"created_by"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Asset) TableName() string {
	return "assets"
}

// NormalizedName strips the legacy split suffix so a remainder container
// resolves to the same model key as its parent.
func (a Asset) NormalizedName() string {
	return strings.TrimSuffix(a.Name, SplitSuffix)
}

// ModelKey returns the name|brand stock line this asset belongs to.
func (a Asset) ModelKey() string {
	return ModelKey(a.NormalizedName(), a.Brand)
}

// IsChild reports whether the asset is a split remainder, either by explicit
// parent reference or by the legacy name suffix of imported data.
func (a Asset) IsChild() bool {
	return a.ParentAssetID != nil || strings.HasSuffix(a.Name, SplitSuffix)
}

// EffectiveBalance is the remaining content of a container.
func (a Asset) EffectiveBalance() float64 {
	if a.CurrentBalance != nil {
		return *a.CurrentBalance
	}
	return a.InitialBalance
}
