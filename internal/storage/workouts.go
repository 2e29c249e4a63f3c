package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/claude/caliq/internal/models"
)

// CreateWorkout persists a generated workout. The store assigns the id and
// creation timestamp.
func (s *Store) CreateWorkout(ctx context.Context, w models.Workout) (models.Workout, error) {
	w.ID = newID()
	w.CreatedAt = time.Now().UTC()

	exercises, err := json.Marshal(w.Exercises)
	if err != nil {
		return models.Workout{}, fmt.Errorf("encoding exercises: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO workouts (id, user_id, name, exercises, duration, difficulty, type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID, w.UserID, w.Name, string(exercises), w.Duration, w.Difficulty, w.Type, formatTime(w.CreatedAt))
	if err != nil {
		return models.Workout{}, fmt.Errorf("inserting workout: %w", err)
	}
	return w, nil
}

// GetWorkout fetches a single workout by id.
func (s *Store) GetWorkout(ctx context.Context, id string) (models.Workout, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, exercises, duration, difficulty, type, created_at
		 FROM workouts WHERE id = $1`, id)
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Workout{}, ErrNotFound
	}
	if err != nil {
		return models.Workout{}, fmt.Errorf("querying workout: %w", err)
	}
	return w, nil
}

// WorkoutsByUser returns all workouts generated for a user.
func (s *Store) WorkoutsByUser(ctx context.Context, userID string) ([]models.Workout, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, exercises, duration, difficulty, type, created_at
		 FROM workouts WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var out []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row rowScanner) (models.Workout, error) {
	var (
		w         models.Workout
		exercises string
		createdAt string
	)
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &exercises, &w.Duration, &w.Difficulty, &w.Type, &createdAt); err != nil {
		return models.Workout{}, err
	}
	if err := json.Unmarshal([]byte(exercises), &w.Exercises); err != nil {
		return models.Workout{}, fmt.Errorf("decoding exercises: %w", err)
	}
	w.CreatedAt = parseTime(createdAt)
	return w, nil
}
