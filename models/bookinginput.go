package models

// BookingInput is the payload subcontractors submit to create a booking.
// Status is deliberately absent: new bookings always start out Pending.
type BookingInput struct {
	Subcontractor string `json:"subcontractor" binding:"required"`
	Company       string `json:"company" binding:"required"`
	DeliveryType  string `json:"deliveryType" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Notes         string `json:"notes"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
}
