package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"schoolportal/internal/store"
)

// Repository persists accounts.
type Repository struct {
	db *store.DB
}

// NewRepository creates a repo.
func NewRepository(db *store.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an account and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, a Account) (Account, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	q := r.db.Rebind(`
		INSERT INTO users (username, password_hash, name, role, class, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	if err := r.db.QueryRowxContext(ctx, q, a.Username, a.PasswordHash, a.Name, a.Role, a.Class, a.CreatedAt).Scan(&a.ID); err != nil {
		return Account{}, err
	}
	return a, nil
}

// GetByUsername returns the account for a username, or nil when unknown.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	q := r.db.Rebind(`
		SELECT id, username, password_hash, name, role, class, created_at
		FROM users WHERE username = ?
	`)
	var a Account
	if err := r.db.GetContext(ctx, &a, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// ListStudents returns all student accounts ordered by class then name.
func (r *Repository) ListStudents(ctx context.Context) ([]Account, error) {
	q := r.db.Rebind(`
		SELECT id, username, password_hash, name, role, class, created_at
		FROM users WHERE role = ?
		ORDER BY class, name
	`)
	var students []Account
	if err := r.db.SelectContext(ctx, &students, q, RoleStudent); err != nil {
		return nil, err
	}
	return students, nil
}
