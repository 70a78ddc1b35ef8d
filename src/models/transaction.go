package models

import (
	"time"

	"github.com/google/uuid"
)

// ============ RESERVATION LEDGER ============
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationCommitted ReservationStatus = "committed"
	ReservationReleased  ReservationStatus = "released"
)

// Reservation is quantity earmarked by a not-yet-fulfilled outbound request.
// Only pending rows reduce available stock; committing or releasing a
// reservation ends its claim (the commit is expected to coincide with the
// actual asset status change performed by the workflow side).
type Reservation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string `gorm:"type:varchar(200);not null;index" json:"name"`
	Brand string `gorm:"type:varchar(100);not null;index" json:"brand"`

	Unit string  `gorm:"type:varchar(30);not null" json:"unit"`
	Qty  float64 `gorm:"not null" json:"qty"`

	Status    ReservationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	DocNumber string            `gorm:"type:varchar(50)" json:"doc_number"`

	CreatedBy  string `gorm:"type:varchar(100)" json:"created_by"`
	CreatedAt  time.Time
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// ============ CONSUMPTION LEDGER ============
type UsageKind string

const (
	UsageInstallation UsageKind = "installation"
	UsageMaintenance  UsageKind = "maintenance"
)

// MaterialUsage records content consumed by an installation or maintenance
// job, in the model's base unit.
type MaterialUsage struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string `gorm:"type:varchar(200);not null;index" json:"name"`
	Brand string `gorm:"type:varchar(100);not null;index" json:"brand"`

	Qty       float64   `gorm:"not null" json:"qty"`
	DocNumber string    `gorm:"type:varchar(50);not null" json:"doc_number"`
	Kind      UsageKind `gorm:"type:varchar(20);not null" json:"kind"`

	CreatedAt time.Time
}

func (MaterialUsage) TableName() string {
	return "material_usages"
}

// ============ THRESHOLD OVERRIDES ============

// ThresholdOverride replaces the type-aware default alert threshold for one
// model key. Thresholds are container counts, never content amounts. A value
// of zero means alert only when literally out of stock.
type ThresholdOverride struct {
	ModelKey  string `gorm:"type:varchar(300);primaryKey" json:"model_key"`
	Threshold int    `gorm:"not null" json:"threshold"`
	UpdatedBy string `gorm:"type:varchar(100)" json:"updated_by"`
	UpdatedAt time.Time
}

func (ThresholdOverride) TableName() string {
	return "threshold_overrides"
}
