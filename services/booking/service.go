package booking

import (
	"go.uber.org/zap"

	"harwin/models"
	"harwin/utils"
)

func (s *DefaultBookingService) ListBookings() ([]models.Booking, error) {
	return s.Repo.FindAll()
}

func (s *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	b := models.Booking{
		Subcontractor: input.Subcontractor,
		Company:       input.Company,
		DeliveryType:  input.DeliveryType,
		Email:         input.Email,
		Notes:         input.Notes,
		Date:          input.Date,
		Time:          input.Time,
		Status:        models.StatusPending,
	}
	if err := s.Repo.Insert(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *DefaultBookingService) UpdateBookingStatus(id uint, status *string) (*models.Booking, error) {
	b, found, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{ID: id}
	}

	newStatus := b.Status
	if status != nil {
		newStatus = *status
	}
	if err := s.Repo.UpdateStatus(id, newStatus); err != nil {
		return nil, err
	}
	b.Status = newStatus

	// Best-effort notification: a mail failure is logged and swallowed, the
	// update itself has already been committed and stays reported as a
	// success.
	if err := s.Notification.SendStatusUpdate(b); err != nil {
		utils.GetLogger().Error("Email error",
			zap.Uint("bookingID", b.ID),
			zap.String("status", b.Status),
			zap.Error(err))
	}

	return &b, nil
}
