package models

// InsertAck is the insert acknowledgment returned to the client. A rejected
// booking is a recognized business outcome, never an error: Acknowledged is
// false and Message explains the conflict.
type InsertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
