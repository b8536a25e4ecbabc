package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense records money spent on an activity.  IDs follow the legacy
// DPS-001 sequence.  Receipt holds a reference to the supporting document.
type Expense struct {
	ID          string          `json:"expense_id"`
	ActivityID  uint64          `json:"activity_id"`
	Name        string          `json:"name"`
	Receipt     *string         `json:"receipt,omitempty"`
	ExpenseDate string          `json:"expense_date"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
