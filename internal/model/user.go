package model

import "time"

// User is an application account.  IDs follow the legacy U0001 sequence.
// Only the bcrypt hash of the password is ever stored.
type User struct {
	ID           string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // ADMIN | TREASURER
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
