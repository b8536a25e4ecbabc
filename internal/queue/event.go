// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// TicketsIssuedEvent is published after a lot's tickets are generated. It
// carries enough for downstream consumers to log or notify without querying
// the primary database.
type TicketsIssuedEvent struct {
	LotID      string `json:"lot_id"`
	LotName    string `json:"lot_name"`
	ActivityID uint64 `json:"activity_id"`
	RangeStart int    `json:"range_start"`
	RangeEnd   int    `json:"range_end"`
	Count      int    `json:"count"`
	UnitPrice  string `json:"unit_price"`
	IssuedAt   string `json:"issued_at"`
}

// TicketPaidEvent is published when a ticket transitions to PAID.
type TicketPaidEvent struct {
	TicketID    string `json:"ticket_id"`
	LotID       string `json:"lot_id"`
	Number      int    `json:"number"`
	MemberID    string `json:"member_id"`
	UnitPrice   string `json:"unit_price"`
	PaymentDate string `json:"payment_date"`
	PaidAt      string `json:"paid_at"`
}
