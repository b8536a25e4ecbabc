package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MemberDonation is a gift a member makes for an activity without buying a
// ticket (the legacy "sans billet" record).  IDs follow the SB-001
// sequence.  MemberLastName/MemberFirstName are joined in on reads.
type MemberDonation struct {
	ID              string          `json:"member_donation_id"`
	MemberID        string          `json:"member_id"`
	ActivityID      uint64          `json:"activity_id"`
	Amount          decimal.Decimal `json:"amount"`
	DonationDate    string          `json:"donation_date"` // YYYY-MM-DD
	MemberLastName  *string         `json:"member_last_name,omitempty"`
	MemberFirstName *string         `json:"member_first_name,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
