package repository

import (
	"context"
	"database/sql"
	"errors"

	"assogest/internal/model"
)

// ErrMemberNotFound is returned when a member lookup yields no rows.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepo provides methods to work with members in the database.
type MemberRepo struct {
	db *sql.DB
}

// NewMemberRepo constructs a MemberRepo with the given DB handle.
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// Create inserts a member under the next MBR- sequential ID and fills it in
// on the model.
func (r *MemberRepo) Create(ctx context.Context, m *model.Member) error {
	id, err := nextSeqID(ctx, r.db, "members", "id", "MBR-", 3)
	if err != nil {
		return err
	}
	const q = `INSERT INTO members (id, last_name, first_name, contact) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, id, m.LastName, m.FirstName, m.Contact); err != nil {
		return translateMySQL(err)
	}
	m.ID = id
	return nil
}

// GetByID retrieves a member by its id.
func (r *MemberRepo) GetByID(ctx context.Context, id string) (*model.Member, error) {
	const q = `SELECT id, last_name, first_name, contact, created_at, updated_at
	           FROM members WHERE id = ?`
	var m model.Member
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.LastName, &m.FirstName, &m.Contact, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListAll retrieves every member ordered by id.
func (r *MemberRepo) ListAll(ctx context.Context) ([]model.Member, error) {
	const q = `SELECT id, last_name, first_name, contact, created_at, updated_at
	           FROM members ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Member
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.LastName, &m.FirstName, &m.Contact, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces a member's mutable fields.
func (r *MemberRepo) Update(ctx context.Context, m *model.Member) error {
	const q = `UPDATE members SET last_name = ?, first_name = ?, contact = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, m.LastName, m.FirstName, m.Contact, m.ID); err != nil {
		return translateMySQL(err)
	}
	if _, err := r.GetByID(ctx, m.ID); err != nil {
		return err
	}
	return nil
}

// Delete removes a member. Tickets keep members alive through ON DELETE
// RESTRICT, which surfaces as ErrConflict.
func (r *MemberRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM members WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMemberNotFound
	}
	return nil
}
