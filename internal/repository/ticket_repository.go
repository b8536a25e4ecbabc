package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"assogest/internal/model"
)

// ErrTicketNotFound is returned when a ticket lookup yields no rows.
var ErrTicketNotFound = errors.New("ticket not found")

// ticketSelect is the shared projection for ticket reads. Member names are
// joined in so list and detail responses can show who holds each ticket
// without a second query.
const ticketSelect = `SELECT t.id, t.lot_id, t.number, t.member_id, t.status,
       t.unit_price, t.payment_date, m.last_name, m.first_name,
       t.created_at, t.updated_at
  FROM tickets t
  LEFT JOIN members m ON m.id = t.member_id`

// TicketRepo provides methods to work with tickets in the database.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTicket(row rowScanner) (*model.Ticket, error) {
	var t model.Ticket
	var payment sql.NullTime
	err := row.Scan(
		&t.ID, &t.LotID, &t.Number, &t.MemberID, &t.Status,
		&t.UnitPrice, &payment, &t.MemberLastName, &t.MemberFirstName,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if payment.Valid {
		d := payment.Time.Format("2006-01-02")
		t.PaymentDate = &d
	}
	return &t, nil
}

// Create inserts a single ticket.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket) error {
	return create(ctx, r.db, t)
}

// CreateTx inserts a ticket inside an open transaction. Batch issuance
// uses this so a duplicate number rolls back the whole lot.
func (r *TicketRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.Ticket) error {
	return create(ctx, tx, t)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func create(ctx context.Context, ex execer, t *model.Ticket) error {
	const q = `INSERT INTO tickets (id, lot_id, number, member_id, status, unit_price, payment_date)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := ex.ExecContext(ctx, q, t.ID, t.LotID, t.Number, t.MemberID, t.Status, t.UnitPrice, t.PaymentDate)
	if err != nil {
		return translateMySQL(err)
	}
	return nil
}

// GetByID retrieves a ticket with its holder's name.
func (r *TicketRepo) GetByID(ctx context.Context, id string) (*model.Ticket, error) {
	const q = ticketSelect + ` WHERE t.id = ?`
	t, err := scanTicket(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return t, nil
}

// ListAll retrieves every ticket ordered by lot then number.
func (r *TicketRepo) ListAll(ctx context.Context) ([]model.Ticket, error) {
	const q = ticketSelect + ` ORDER BY t.lot_id, t.number`
	return r.list(ctx, q)
}

// ListByLot retrieves the tickets of one lot ordered by number.
func (r *TicketRepo) ListByLot(ctx context.Context, lotID string) ([]model.Ticket, error) {
	const q = ticketSelect + ` WHERE t.lot_id = ? ORDER BY t.number`
	return r.list(ctx, q, lotID)
}

// ListByActivity retrieves every ticket of every lot of one activity.
func (r *TicketRepo) ListByActivity(ctx context.Context, activityID uint64) ([]model.Ticket, error) {
	const q = ticketSelect + `
	  JOIN lots l ON l.id = t.lot_id
	 WHERE l.activity_id = ? ORDER BY t.lot_id, t.number`
	return r.list(ctx, q, activityID)
}

func (r *TicketRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// TicketUpdate describes a partial update. Nil pointers leave the column
// untouched; the Clear flags write an explicit NULL.
type TicketUpdate struct {
	Number       *int
	MemberID     *string
	ClearMember  bool
	Status       *model.TicketStatus
	UnitPrice    *decimal.Decimal
	PaymentDate  *string
	ClearPayment bool
}

// buildTicketUpdate renders the SET clause for a TicketUpdate. Every field
// maps to a fixed column; nothing is derived from request keys.
func buildTicketUpdate(u TicketUpdate) (string, []interface{}) {
	var sets []string
	var args []interface{}
	if u.Number != nil {
		sets = append(sets, "number = ?")
		args = append(args, *u.Number)
	}
	switch {
	case u.ClearMember:
		sets = append(sets, "member_id = NULL")
	case u.MemberID != nil:
		sets = append(sets, "member_id = ?")
		args = append(args, *u.MemberID)
	}
	if u.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *u.Status)
	}
	if u.UnitPrice != nil {
		sets = append(sets, "unit_price = ?")
		args = append(args, *u.UnitPrice)
	}
	switch {
	case u.ClearPayment:
		sets = append(sets, "payment_date = NULL")
	case u.PaymentDate != nil:
		sets = append(sets, "payment_date = ?")
		args = append(args, *u.PaymentDate)
	}
	if len(sets) == 0 {
		return "", nil
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	return strings.Join(sets, ", "), args
}

// Update applies a partial update and returns the fresh row. An update
// that changes nothing is a no-op read.
func (r *TicketRepo) Update(ctx context.Context, id string, u TicketUpdate) (*model.Ticket, error) {
	set, args := buildTicketUpdate(u)
	if set == "" {
		return r.GetByID(ctx, id)
	}
	q := `UPDATE tickets SET ` + set + ` WHERE id = ?`
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, translateMySQL(err)
	}
	// MySQL reports zero affected rows for identical values, so existence
	// is checked by the re-select rather than RowsAffected.
	return r.GetByID(ctx, id)
}

// Delete removes a ticket.
func (r *TicketRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tickets WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTicketNotFound
	}
	return nil
}

// SumPaidByLot totals the unit prices of the lot's PAID tickets. A lot
// with no paid ticket sums to zero.
func (r *TicketRepo) SumPaidByLot(ctx context.Context, lotID string) (decimal.Decimal, error) {
	const q = `SELECT SUM(unit_price) FROM tickets WHERE lot_id = ? AND status = 'PAID'`
	return r.sum(ctx, q, lotID)
}

// SumPaidAll totals the unit prices of every PAID ticket.
func (r *TicketRepo) SumPaidAll(ctx context.Context) (decimal.Decimal, error) {
	const q = `SELECT SUM(unit_price) FROM tickets WHERE status = 'PAID'`
	return r.sum(ctx, q)
}

func (r *TicketRepo) sum(ctx context.Context, q string, args ...interface{}) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
