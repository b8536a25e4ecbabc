package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"assogest/internal/model"
)

// ErrExpenseNotFound is returned when an expense lookup yields no rows.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepo provides methods to work with expenses in the database.
type ExpenseRepo struct {
	db *sql.DB
}

// NewExpenseRepo constructs an ExpenseRepo with the given DB handle.
func NewExpenseRepo(db *sql.DB) *ExpenseRepo {
	return &ExpenseRepo{db: db}
}

// Create inserts an expense under the next DPS- sequential ID.
func (r *ExpenseRepo) Create(ctx context.Context, e *model.Expense) error {
	id, err := nextSeqID(ctx, r.db, "expenses", "id", "DPS-", 3)
	if err != nil {
		return err
	}
	const q = `INSERT INTO expenses (id, activity_id, name, receipt, expense_date, amount)
	           VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, id, e.ActivityID, e.Name, e.Receipt, e.ExpenseDate, e.Amount); err != nil {
		return translateMySQL(err)
	}
	e.ID = id
	return nil
}

// GetByID retrieves an expense by its id.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	const q = `SELECT id, activity_id, name, receipt, DATE_FORMAT(expense_date, '%Y-%m-%d'), amount, created_at, updated_at
	           FROM expenses WHERE id = ?`
	var e model.Expense
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&e.ID, &e.ActivityID, &e.Name, &e.Receipt, &e.ExpenseDate, &e.Amount, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListAll retrieves every expense ordered by id.
func (r *ExpenseRepo) ListAll(ctx context.Context) ([]model.Expense, error) {
	const q = `SELECT id, activity_id, name, receipt, DATE_FORMAT(expense_date, '%Y-%m-%d'), amount, created_at, updated_at
	           FROM expenses ORDER BY id`
	return r.list(ctx, q)
}

// ListByActivity retrieves the expenses booked against one activity.
func (r *ExpenseRepo) ListByActivity(ctx context.Context, activityID uint64) ([]model.Expense, error) {
	const q = `SELECT id, activity_id, name, receipt, DATE_FORMAT(expense_date, '%Y-%m-%d'), amount, created_at, updated_at
	           FROM expenses WHERE activity_id = ? ORDER BY id`
	return r.list(ctx, q, activityID)
}

func (r *ExpenseRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.ActivityID, &e.Name, &e.Receipt, &e.ExpenseDate, &e.Amount, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces an expense's mutable fields.
func (r *ExpenseRepo) Update(ctx context.Context, e *model.Expense) error {
	const q = `UPDATE expenses SET activity_id = ?, name = ?, receipt = ?, expense_date = ?, amount = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, e.ActivityID, e.Name, e.Receipt, e.ExpenseDate, e.Amount, e.ID); err != nil {
		return translateMySQL(err)
	}
	if _, err := r.GetByID(ctx, e.ID); err != nil {
		return err
	}
	return nil
}

// Delete removes an expense.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM expenses WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// SumByActivity totals the expenses of one activity; no rows sum to zero.
func (r *ExpenseRepo) SumByActivity(ctx context.Context, activityID uint64) (decimal.Decimal, error) {
	const q = `SELECT SUM(amount) FROM expenses WHERE activity_id = ?`
	return r.sum(ctx, q, activityID)
}

// SumAll totals every expense.
func (r *ExpenseRepo) SumAll(ctx context.Context) (decimal.Decimal, error) {
	const q = `SELECT SUM(amount) FROM expenses`
	return r.sum(ctx, q)
}

func (r *ExpenseRepo) sum(ctx context.Context, q string, args ...interface{}) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
