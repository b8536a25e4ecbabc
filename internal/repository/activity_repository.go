package repository

import (
	"context"
	"database/sql"
	"errors"

	"assogest/internal/model"
)

// ErrActivityNotFound is returned when an activity lookup yields no rows.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepo provides methods to work with activities in the database.
type ActivityRepo struct {
	db *sql.DB
}

// NewActivityRepo constructs an ActivityRepo with the given DB handle.
func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Create inserts an activity. On success the auto-increment ID is populated.
func (r *ActivityRepo) Create(ctx context.Context, a *model.Activity) error {
	const q = `INSERT INTO activities (name, description, activity_date) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.Description, a.ActivityDate)
	if err != nil {
		return translateMySQL(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID retrieves an activity by its id.
func (r *ActivityRepo) GetByID(ctx context.Context, id uint64) (*model.Activity, error) {
	const q = `SELECT id, name, description, DATE_FORMAT(activity_date, '%Y-%m-%d'), created_at, updated_at
	           FROM activities WHERE id = ?`
	var a model.Activity
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&a.ID, &a.Name, &a.Description, &a.ActivityDate, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListAll retrieves every activity, most recent date first.
func (r *ActivityRepo) ListAll(ctx context.Context) ([]model.Activity, error) {
	const q = `SELECT id, name, description, DATE_FORMAT(activity_date, '%Y-%m-%d'), created_at, updated_at
	           FROM activities ORDER BY activity_date DESC, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Activity
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.ActivityDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces an activity's mutable fields.
func (r *ActivityRepo) Update(ctx context.Context, a *model.Activity) error {
	const q = `UPDATE activities SET name = ?, description = ?, activity_date = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, a.Name, a.Description, a.ActivityDate, a.ID); err != nil {
		return translateMySQL(err)
	}
	if _, err := r.GetByID(ctx, a.ID); err != nil {
		return err
	}
	return nil
}

// Delete removes an activity. Lots and expenses restrict deletion, which
// surfaces as ErrConflict.
func (r *ActivityRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM activities WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return translateMySQL(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrActivityNotFound
	}
	return nil
}
