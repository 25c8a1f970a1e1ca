package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a bookable treatment with its fixed daily slot menu.
// The catalog of options is managed outside this service and read-only here.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"` // slot labels, e.g. "10.00 AM - 11.00 AM"
}
