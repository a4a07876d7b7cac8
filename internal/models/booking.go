package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is an appointment request. Only patient name, phone and therapy
// are mandatory; everything else may be filled in later by the clinic.
type Booking struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID *string `gorm:"type:uuid;index" json:"userId"`

	TherapyID string `gorm:"type:uuid;not null;index" json:"therapyId"`

	PatientName  string  `gorm:"size:150;not null" json:"patientName"`
	PatientPhone string  `gorm:"size:20;not null" json:"patientPhone"`
	PatientEmail *string `gorm:"size:255" json:"patientEmail"`
	PatientAge   *int    `json:"patientAge"`

	AppointmentDate *string `gorm:"size:20" json:"appointmentDate"`
	AppointmentTime *string `gorm:"size:20" json:"appointmentTime"`
	AdditionalNotes *string `gorm:"type:text" json:"additionalNotes"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	return nil
}

// OwnedBy reports whether userID is the booking's owner. Guest bookings
// have no owner.
func (b *Booking) OwnedBy(userID string) bool {
	return b.UserID != nil && userID != "" && *b.UserID == userID
}
