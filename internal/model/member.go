package model

import "time"

// Member is a person belonging to the association.  IDs follow the legacy
// MBR-001 sequence.
type Member struct {
	ID        string    `json:"member_id"`
	LastName  string    `json:"last_name"`
	FirstName string    `json:"first_name"`
	Contact   *string   `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
