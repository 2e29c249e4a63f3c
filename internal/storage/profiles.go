package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/claude/caliq/internal/models"
)

// CreateProfile inserts a user profile and returns it with its generated id.
func (s *Store) CreateProfile(ctx context.Context, p models.UserProfile) (models.UserProfile, error) {
	p.ID = newID()
	goals, err := json.Marshal(p.Goals)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("encoding goals: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO user_profiles (id, user_id, name, height, weight, fitness_level, goals, daily_time_available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.UserID, p.Name, p.Height, p.Weight, p.FitnessLevel, string(goals), p.DailyTimeAvailable)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("inserting profile: %w", err)
	}
	return p, nil
}

// GetProfile fetches the profile owned by a user.
func (s *Store) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	var (
		p     models.UserProfile
		goals string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, height, weight, fitness_level, goals, daily_time_available
		 FROM user_profiles WHERE user_id = $1`, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.Height, &p.Weight, &p.FitnessLevel, &goals, &p.DailyTimeAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("querying profile: %w", err)
	}
	if err := json.Unmarshal([]byte(goals), &p.Goals); err != nil {
		return models.UserProfile{}, fmt.Errorf("decoding goals: %w", err)
	}
	return p, nil
}
