package model

import "time"

// Activity is an event organized by the association (a fundraiser, a fair,
// a concert).  Lots and expenses hang off an activity.
type Activity struct {
	ID           uint64    `json:"activity_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	ActivityDate string    `json:"activity_date"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
