package models

// StatusPending is the status every booking is created with, regardless of
// what the client sent. Later values are whatever the admin submits
// ("Approved"/"Rejected" in practice); the field is deliberately not an enum.
const StatusPending = "Pending"

// Booking represents a single delivery-booking request submitted by a
// subcontractor for the Harwin project.
type Booking struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Subcontractor string `gorm:"size:100" json:"subcontractor"`
	Company       string `gorm:"size:100" json:"company"`
	DeliveryType  string `gorm:"size:100" json:"deliveryType"`
	Email         string `gorm:"size:100" json:"email"` // notification recipient
	Notes         string `gorm:"type:text" json:"notes"`
	Date          string `gorm:"size:20" json:"date"` // free-form, not validated
	Time          string `gorm:"size:10" json:"time"` // free-form, not validated
	Status        string `gorm:"size:20" json:"status"`
}
