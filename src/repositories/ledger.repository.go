package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"asset-stock/src/models"
)

// LedgerRepository reads and writes the reservation and consumption ledgers.
type LedgerRepository struct {
	DB *gorm.DB
}

// ListPendingReservations - Pending requests not yet reflected as asset status changes
func (r *LedgerRepository) ListPendingReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.DB.
		Where("status = ?", models.ReservationPending).
		Order("created_at ASC").
		Find(&reservations).Error
	return reservations, err
}

// FindReservation - Single reservation lookup
func (r *LedgerRepository) FindReservation(id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.DB.First(&reservation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CreateReservation - Open a pending reservation
func (r *LedgerRepository) CreateReservation(tx *gorm.DB, reservation *models.Reservation) error {
	return tx.Create(reservation).Error
}

// ResolveReservation - Move a pending reservation to committed or released
func (r *LedgerRepository) ResolveReservation(tx *gorm.DB, id uuid.UUID, status models.ReservationStatus) error {
	now := time.Now()
	result := tx.Model(&models.Reservation{}).
		Where("id = ? AND status = ?", id, models.ReservationPending).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("reservation is not pending")
	}
	return nil
}

// ListMaterialUsage - Consumption ledger snapshot, oldest first
func (r *LedgerRepository) ListMaterialUsage() ([]models.MaterialUsage, error) {
	var usage []models.MaterialUsage
	err := r.DB.Order("created_at ASC").Find(&usage).Error
	return usage, err
}

// CreateMaterialUsage - Record a consumption event
func (r *LedgerRepository) CreateMaterialUsage(tx *gorm.DB, usage *models.MaterialUsage) error {
	return tx.Create(usage).Error
}
