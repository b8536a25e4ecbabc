package repository

import (
	"context"
	"database/sql"
	"errors"

	"assogest/internal/model"
)

// ErrLotNotFound is returned when a lot lookup yields no rows.
var ErrLotNotFound = errors.New("lot not found")

// LotRepo provides methods to work with ticket lots in the database.
type LotRepo struct {
	db *sql.DB
}

// NewLotRepo constructs a LotRepo with the given DB handle.
func NewLotRepo(db *sql.DB) *LotRepo {
	return &LotRepo{db: db}
}

// Create inserts a lot. The caller supplies the ID (an opaque hex string)
// so that tickets can be issued against it in the same request.
func (r *LotRepo) Create(ctx context.Context, l *model.Lot) error {
	const q = `INSERT INTO lots (id, activity_id, name, description, range_start, range_end)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, l.ID, l.ActivityID, l.Name, l.Description, l.RangeStart, l.RangeEnd)
	if err != nil {
		return translateMySQL(err)
	}
	return nil
}

// GetByID retrieves a lot by its id.
func (r *LotRepo) GetByID(ctx context.Context, id string) (*model.Lot, error) {
	const q = `SELECT id, activity_id, name, description, range_start, range_end, created_at, updated_at
	           FROM lots WHERE id = ?`
	var l model.Lot
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&l.ID, &l.ActivityID, &l.Name, &l.Description, &l.RangeStart, &l.RangeEnd, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLotNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListAll retrieves every lot, newest first.
func (r *LotRepo) ListAll(ctx context.Context) ([]model.Lot, error) {
	const q = `SELECT id, activity_id, name, description, range_start, range_end, created_at, updated_at
	           FROM lots ORDER BY created_at DESC, id`
	return r.list(ctx, q)
}

// ListByActivity retrieves the lots of one activity ordered by range start.
func (r *LotRepo) ListByActivity(ctx context.Context, activityID uint64) ([]model.Lot, error) {
	const q = `SELECT id, activity_id, name, description, range_start, range_end, created_at, updated_at
	           FROM lots WHERE activity_id = ? ORDER BY range_start`
	return r.list(ctx, q, activityID)
}

func (r *LotRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Lot, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Lot
	for rows.Next() {
		var l model.Lot
		if err := rows.Scan(
			&l.ID, &l.ActivityID, &l.Name, &l.Description,
			&l.RangeStart, &l.RangeEnd, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateMeta changes a lot's name and description. The number range is
// immutable once tickets exist, so it is not touched here.
func (r *LotRepo) UpdateMeta(ctx context.Context, id, name string, description *string) error {
	const q = `UPDATE lots SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, description, id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish a missing row from a no-change update.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a lot. Tickets reference lots with ON DELETE RESTRICT, so
// a populated lot surfaces as ErrConflict.
func (r *LotRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM lots WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrLotNotFound
	}
	return nil
}
