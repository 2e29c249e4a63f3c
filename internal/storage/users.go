package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/claude/caliq/internal/models"
)

// ErrNotFound is returned for exact-key lookups that miss.
var ErrNotFound = errors.New("not found")

// CreateUser inserts a user and returns it with its generated id.
func (s *Store) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	u.ID = newID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`,
		u.ID, u.Username, u.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

// GetUserByUsername fetches a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("querying user by username: %w", err)
	}
	return u, nil
}
