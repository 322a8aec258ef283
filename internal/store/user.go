package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

const userColumns = "id, username, email, password_hash, created_at"

// UserStore provides account lookup and creation for the auth surface.
type UserStore struct {
	pool *pgxpool.Pool
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// Create inserts a user and fills in its id and creation time.
func (s *UserStore) Create(ctx context.Context, u *model.User) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		u.Username, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Get returns a user by id.
func (s *UserStore) Get(ctx context.Context, id int) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

// GetByEmail returns a user by email address.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
}

// GetByUsername returns a user by username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username))
}

// UpdateUsername renames a user and returns the updated record.
func (s *UserStore) UpdateUsername(ctx context.Context, id int, username string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `
		UPDATE users SET username = $2 WHERE id = $1
		RETURNING `+userColumns, id, username))
}
