package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation is a gift collected outside of ticket sales (the legacy
// "quête").  IDs follow the QTE-001 sequence.
type Donation struct {
	ID           string          `json:"donation_id"`
	DonationDate string          `json:"donation_date"` // YYYY-MM-DD
	DonorName    string          `json:"donor_name"`
	Amount       decimal.Decimal `json:"amount"`
	Receipt      *string         `json:"receipt,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
