package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is one sellable unit inside a lot, identified by a number that is
// unique within that lot.  MemberID is set only while the ticket is
// ASSIGNED or PAID; PaymentDate (a bare YYYY-MM-DD date) only while PAID.
// MemberLastName/MemberFirstName are populated from the members table on
// reads and are never written.
type Ticket struct {
	ID              string          `json:"ticket_id"`
	LotID           string          `json:"lot_id"`
	Number          int             `json:"number"`
	MemberID        *string         `json:"member_id,omitempty"`
	Status          TicketStatus    `json:"status"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	PaymentDate     *string         `json:"payment_date,omitempty"`
	MemberLastName  *string         `json:"member_last_name,omitempty"`
	MemberFirstName *string         `json:"member_first_name,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
