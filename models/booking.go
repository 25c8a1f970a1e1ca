package models

import "time"

// Booking is a patient's reservation of one slot for one treatment on one date.
type Booking struct {
	ID              string    `bson:"id,omitempty" json:"id,omitempty"`                   // Unique booking identifier (UUID)
	Treatment       string    `bson:"treatment" json:"treatment"`                         // References AppointmentOption.Name (soft reference)
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"`             // Date string, exact match only
	Slot            string    `bson:"slot" json:"slot"`                                   // One of the treatment's slot labels
	Email           string    `bson:"email" json:"email"`                                 // Patient identifier
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"` // Carried through untouched
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`             // Carried through untouched
	CreatedAt       time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
