package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"assogest/internal/model"
	"assogest/internal/utils"
)

// ErrUserNotFound is returned when a user lookup yields no rows.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when a registration reuses a username.
var ErrUsernameExists = errors.New("username already exists")

// UserRepo persists application accounts.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create hashes the password and inserts a user under the next U sequential
// ID. The username is normalized to lower case before storage.
func (r *UserRepo) Create(ctx context.Context, username, email, password, role string, cost int) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return "", err
	}
	id, err := nextSeqID(ctx, r.db, "users", "id", "U", 4)
	if err != nil {
		return "", err
	}
	var emailPtr *string
	if email != "" {
		emailPtr = &email
	}
	const q = `INSERT INTO users (id, username, email, password_hash, role) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, id, username, emailPtr, hash, role); err != nil {
		if errors.Is(translateMySQL(err), ErrDuplicate) {
			return "", ErrUsernameExists
		}
		return "", err
	}
	return id, nil
}

// GetByUsername fetches a user by normalized username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	const q = `SELECT id, username, email, password_hash, role, created_at, updated_at
	           FROM users WHERE username = ? LIMIT 1`
	return r.get(ctx, q, username)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT id, username, email, password_hash, role, created_at, updated_at
	           FROM users WHERE id = ? LIMIT 1`
	return r.get(ctx, q, id)
}

func (r *UserRepo) get(ctx context.Context, q string, arg interface{}) (*model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, q, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
