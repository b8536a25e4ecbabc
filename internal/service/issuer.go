// Package service holds business operations that span repositories or
// require transactional guarantees.
package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"assogest/internal/model"
	"assogest/internal/repository"
	"assogest/internal/utils"
)

// Issuer generates the full set of tickets for a lot. The whole batch runs
// in one transaction: either every number in the range gets a ticket or
// none does.
type Issuer struct {
	db      *sql.DB
	tickets *repository.TicketRepo
}

// NewIssuer constructs an Issuer.
func NewIssuer(db *sql.DB, tickets *repository.TicketRepo) *Issuer {
	return &Issuer{db: db, tickets: tickets}
}

// BuildTickets materializes one AVAILABLE ticket per number in the lot's
// range, each with a fresh random ID and the given unit price. It does not
// touch the database.
func BuildTickets(lot *model.Lot, unitPrice decimal.Decimal) ([]model.Ticket, error) {
	if lot.RangeEnd < lot.RangeStart {
		return nil, fmt.Errorf("invalid range %d-%d", lot.RangeStart, lot.RangeEnd)
	}
	out := make([]model.Ticket, 0, lot.Size())
	for n := lot.RangeStart; n <= lot.RangeEnd; n++ {
		id, err := utils.NewID()
		if err != nil {
			return nil, err
		}
		out = append(out, model.Ticket{
			ID:        id,
			LotID:     lot.ID,
			Number:    n,
			Status:    model.StatusAvailable,
			UnitPrice: unitPrice,
		})
	}
	return out, nil
}

// Generate issues every ticket of the lot inside a transaction and returns
// them. A duplicate number in the lot rolls the whole batch back and
// surfaces as repository.ErrDuplicate.
func (s *Issuer) Generate(ctx context.Context, lot *model.Lot, unitPrice decimal.Decimal) ([]model.Ticket, error) {
	batch, err := BuildTickets(lot, unitPrice)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range batch {
		if err := s.tickets.CreateTx(ctx, tx, &batch[i]); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return batch, nil
}
