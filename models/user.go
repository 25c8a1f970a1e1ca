package models

import "time"

// User represents a portal user record. Stored as-is; the portal performs no
// authentication against it.
type User struct {
	ID        string    `bson:"id,omitempty" json:"id,omitempty"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
