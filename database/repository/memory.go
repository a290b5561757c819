package repository

import (
	"sync"

	"harwin/models"
)

// MemoryBookingRepo is an in-memory BookingRepository used by tests and
// local development without a database.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	nextID   uint
	bookings []models.Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{nextID: 1}
}

func (r *MemoryBookingRepo) FindAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *MemoryBookingRepo) Insert(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *MemoryBookingRepo) FindByID(id uint) (models.Booking, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, true, nil
		}
	}
	return models.Booking{}, false, nil
}

func (r *MemoryBookingRepo) UpdateStatus(id uint, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			return nil
		}
	}
	return nil
}
