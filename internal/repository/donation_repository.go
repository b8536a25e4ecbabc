package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"assogest/internal/model"
)

// ErrDonationNotFound is returned when a donation lookup yields no rows.
var ErrDonationNotFound = errors.New("donation not found")

// DonationRepo provides methods to work with donations in the database.
type DonationRepo struct {
	db *sql.DB
}

// NewDonationRepo constructs a DonationRepo with the given DB handle.
func NewDonationRepo(db *sql.DB) *DonationRepo {
	return &DonationRepo{db: db}
}

// Create inserts a donation under the next QTE- sequential ID.
func (r *DonationRepo) Create(ctx context.Context, d *model.Donation) error {
	id, err := nextSeqID(ctx, r.db, "donations", "id", "QTE-", 3)
	if err != nil {
		return err
	}
	const q = `INSERT INTO donations (id, donation_date, donor_name, amount, receipt)
	           VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, id, d.DonationDate, d.DonorName, d.Amount, d.Receipt); err != nil {
		return translateMySQL(err)
	}
	d.ID = id
	return nil
}

// GetByID retrieves a donation by its id.
func (r *DonationRepo) GetByID(ctx context.Context, id string) (*model.Donation, error) {
	const q = `SELECT id, DATE_FORMAT(donation_date, '%Y-%m-%d'), donor_name, amount, receipt, created_at, updated_at
	           FROM donations WHERE id = ?`
	var d model.Donation
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&d.ID, &d.DonationDate, &d.DonorName, &d.Amount, &d.Receipt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListAll retrieves every donation ordered by id.
func (r *DonationRepo) ListAll(ctx context.Context) ([]model.Donation, error) {
	const q = `SELECT id, DATE_FORMAT(donation_date, '%Y-%m-%d'), donor_name, amount, receipt, created_at, updated_at
	           FROM donations ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Donation
	for rows.Next() {
		var d model.Donation
		if err := rows.Scan(&d.ID, &d.DonationDate, &d.DonorName, &d.Amount, &d.Receipt, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces a donation's mutable fields.
func (r *DonationRepo) Update(ctx context.Context, d *model.Donation) error {
	const q = `UPDATE donations SET donation_date = ?, donor_name = ?, amount = ?, receipt = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, d.DonationDate, d.DonorName, d.Amount, d.Receipt, d.ID); err != nil {
		return translateMySQL(err)
	}
	if _, err := r.GetByID(ctx, d.ID); err != nil {
		return err
	}
	return nil
}

// Delete removes a donation.
func (r *DonationRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM donations WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDonationNotFound
	}
	return nil
}

// SumAll totals every donation; an empty table sums to zero.
func (r *DonationRepo) SumAll(ctx context.Context) (decimal.Decimal, error) {
	const q = `SELECT SUM(amount) FROM donations`
	var total decimal.NullDecimal
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
