package repository

import (
	"gorm.io/gorm"

	"harwin/models"
)

// BookingRepository abstracts storage of booking records.
type BookingRepository interface {
	// FindAll returns every booking in insertion order.
	FindAll() ([]models.Booking, error)
	// Insert persists a new booking and fills in its generated ID.
	Insert(b *models.Booking) error
	// FindByID looks up a booking by primary key. The bool reports whether
	// the record exists; it is false (with a nil error) for unknown ids.
	FindByID(id uint) (models.Booking, bool, error)
	// UpdateStatus persists a new status string for an existing booking,
	// leaving every other field untouched.
	UpdateStatus(id uint, status string) error
}

// GormBookingRepo implements BookingRepository on GORM + Postgres.
type GormBookingRepo struct {
	db *gorm.DB
}

// NewGormBookingRepo wraps an already-connected GORM handle.
func NewGormBookingRepo(db *gorm.DB) *GormBookingRepo {
	return &GormBookingRepo{db: db}
}

func (r *GormBookingRepo) FindAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Order("id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepo) Insert(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *GormBookingRepo) FindByID(id uint) (models.Booking, bool, error) {
	var b models.Booking
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.Booking{}, false, nil
		}
		return models.Booking{}, false, err
	}
	return b, true, nil
}

func (r *GormBookingRepo) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}
