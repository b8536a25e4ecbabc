package repository

import (
	"context"
	"database/sql"
	"errors"

	"assogest/internal/model"
)

// ErrMemberDonationNotFound is returned when a lookup yields no rows.
var ErrMemberDonationNotFound = errors.New("member donation not found")

// memberDonationSelect joins the giver's name in, mirroring the ticket
// reads: callers always see who gave without a second query.
const memberDonationSelect = `SELECT d.id, d.member_id, d.activity_id, d.amount,
       DATE_FORMAT(d.donation_date, '%Y-%m-%d'), m.last_name, m.first_name,
       d.created_at, d.updated_at
  FROM member_donations d
  JOIN members m ON m.id = d.member_id`

// MemberDonationRepo provides methods to work with ticketless member
// donations in the database.
type MemberDonationRepo struct {
	db *sql.DB
}

// NewMemberDonationRepo constructs a MemberDonationRepo with the given DB
// handle.
func NewMemberDonationRepo(db *sql.DB) *MemberDonationRepo {
	return &MemberDonationRepo{db: db}
}

// Create inserts a donation under the next SB- sequential ID.
func (r *MemberDonationRepo) Create(ctx context.Context, d *model.MemberDonation) error {
	id, err := nextSeqID(ctx, r.db, "member_donations", "id", "SB-", 3)
	if err != nil {
		return err
	}
	const q = `INSERT INTO member_donations (id, member_id, activity_id, amount, donation_date)
	           VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, id, d.MemberID, d.ActivityID, d.Amount, d.DonationDate); err != nil {
		return translateMySQL(err)
	}
	d.ID = id
	return nil
}

// GetByID retrieves a donation with the giving member's name.
func (r *MemberDonationRepo) GetByID(ctx context.Context, id string) (*model.MemberDonation, error) {
	const q = memberDonationSelect + ` WHERE d.id = ?`
	var d model.MemberDonation
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&d.ID, &d.MemberID, &d.ActivityID, &d.Amount, &d.DonationDate,
			&d.MemberLastName, &d.MemberFirstName, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberDonationNotFound
		}
		return nil, err
	}
	return &d, nil
}

// ListAll retrieves every donation ordered by id.
func (r *MemberDonationRepo) ListAll(ctx context.Context) ([]model.MemberDonation, error) {
	const q = memberDonationSelect + ` ORDER BY d.id`
	return r.list(ctx, q)
}

// ListByActivity retrieves the donations collected for one activity.
func (r *MemberDonationRepo) ListByActivity(ctx context.Context, activityID uint64) ([]model.MemberDonation, error) {
	const q = memberDonationSelect + ` WHERE d.activity_id = ? ORDER BY d.id`
	return r.list(ctx, q, activityID)
}

func (r *MemberDonationRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.MemberDonation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MemberDonation
	for rows.Next() {
		var d model.MemberDonation
		if err := rows.Scan(&d.ID, &d.MemberID, &d.ActivityID, &d.Amount, &d.DonationDate,
			&d.MemberLastName, &d.MemberFirstName, &d.CreatedAt, &d.UpdatedAt); err != nil {
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
func (r *MemberDonationRepo) Update(ctx context.Context, d *model.MemberDonation) error {
	const q = `UPDATE member_donations SET member_id = ?, activity_id = ?, amount = ?, donation_date = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, d.MemberID, d.ActivityID, d.Amount, d.DonationDate, d.ID); err != nil {
		return translateMySQL(err)
	}
	if _, err := r.GetByID(ctx, d.ID); err != nil {
		return err
	}
	return nil
}

// Delete removes a donation.
func (r *MemberDonationRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM member_donations WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMemberDonationNotFound
	}
	return nil
}
