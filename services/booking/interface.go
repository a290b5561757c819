package booking

import (
	"harwin/database/repository"
	"harwin/models"
	"harwin/services/notification"
)

// BookingService exposes the delivery-booking operations.
type BookingService interface {
	// ListBookings returns every booking on record.
	ListBookings() ([]models.Booking, error)

	// CreateBooking stores a new booking with status forced to Pending.
	CreateBooking(input models.BookingInput) (*models.Booking, error)

	// UpdateBookingStatus persists a new status for an existing booking and
	// emails the submitter best-effort. A nil status keeps the current
	// value. Returns *NotFoundError for unknown ids.
	UpdateBookingStatus(id uint, status *string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         repository.BookingRepository
	Notification notification.NotificationService
}
