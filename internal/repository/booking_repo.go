package repository

import (
	"errors"

	"hospital-finder-backend/internal/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new booking
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// GetByIDWithHospital retrieves a booking with its hospital resolved
func (r *BookingRepository) GetByIDWithHospital(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.Preload("Hospital").First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Confirm persists a confirmed booking and takes one bed from its
// hospital in a single transaction. The decrement is conditional on
// available_beds > 0: if no row matches, the transaction rolls back and
// ErrNoBedsAvailable is returned, leaving the booking untouched. The
// caller sets Status and ConfirmationDate on the booking beforehand.
// Returns the hospital's available bed count after the decrement.
func (r *BookingRepository) Confirm(booking *models.Booking) (int, error) {
	var bedsAfter int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Hospital{}).
			Where("id = ? AND available_beds > 0", booking.HospitalID).
			UpdateColumn("available_beds", gorm.Expr("available_beds - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoBedsAvailable
		}

		if err := tx.Model(booking).Updates(map[string]interface{}{
			"status":            booking.Status,
			"confirmation_date": booking.ConfirmationDate,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Hospital{}).
			Where("id = ?", booking.HospitalID).
			Select("available_beds").
			Row().Scan(&bedsAfter)
	})
	if err != nil {
		return 0, err
	}
	return bedsAfter, nil
}

// Cancel persists a cancelled booking. When restoreBed is set (the
// booking was confirmed before this call) the hospital gets its bed
// back in the same transaction, capped at total_beds.
func (r *BookingRepository) Cancel(booking *models.Booking, restoreBed bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Update("status", booking.Status).Error; err != nil {
			return err
		}
		if !restoreBed {
			return nil
		}
		return tx.Model(&models.Hospital{}).
			Where("id = ?", booking.HospitalID).
			UpdateColumn("available_beds", gorm.Expr("LEAST(available_beds + 1, total_beds)")).
			Error
	})
}
