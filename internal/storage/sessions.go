package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/caliq/internal/models"
)

// CreateSession persists a completed workout session. The store assigns the
// id and completion timestamp.
func (s *Store) CreateSession(ctx context.Context, sess models.WorkoutSession) (models.WorkoutSession, error) {
	sess.ID = newID()
	if sess.CompletedAt.IsZero() {
		sess.CompletedAt = time.Now().UTC()
	}

	completed, err := json.Marshal(sess.ExercisesCompleted)
	if err != nil {
		return models.WorkoutSession{}, fmt.Errorf("encoding completed exercises: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO workout_sessions (id, user_id, workout_id, completed_at, duration, exercises_completed, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sess.ID, sess.UserID, sess.WorkoutID, formatTime(sess.CompletedAt), sess.Duration, string(completed), sess.Feedback)
	if err != nil {
		return models.WorkoutSession{}, fmt.Errorf("inserting session: %w", err)
	}
	return sess, nil
}

// SessionsByUser returns all of a user's sessions, unordered.
func (s *Store) SessionsByUser(ctx context.Context, userID string) ([]models.WorkoutSession, error) {
	return s.querySessions(ctx,
		`SELECT id, user_id, workout_id, completed_at, duration, exercises_completed, feedback
		 FROM workout_sessions WHERE user_id = $1`, userID)
}

// RecentSessions returns up to limit sessions for a user, most recent first.
func (s *Store) RecentSessions(ctx context.Context, userID string, limit int) ([]models.WorkoutSession, error) {
	return s.querySessions(ctx,
		`SELECT id, user_id, workout_id, completed_at, duration, exercises_completed, feedback
		 FROM workout_sessions WHERE user_id = $1
		 ORDER BY completed_at DESC LIMIT $2`, userID, limit)
}

// SessionCount returns how many sessions a user has completed. The generator
// derives the current training week from it.
func (s *Store) SessionCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workout_sessions WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return n, nil
}

func (s *Store) querySessions(ctx context.Context, query string, args ...any) ([]models.WorkoutSession, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []models.WorkoutSession
	for rows.Next() {
		var (
			sess        models.WorkoutSession
			completedAt string
			completed   string
		)
		if err := rows.Scan(&sess.ID, &sess.UserID, &sess.WorkoutID, &completedAt, &sess.Duration, &completed, &sess.Feedback); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		if err := json.Unmarshal([]byte(completed), &sess.ExercisesCompleted); err != nil {
			return nil, fmt.Errorf("decoding completed exercises: %w", err)
		}
		sess.CompletedAt = parseTime(completedAt)
		out = append(out, sess)
	}
	return out, rows.Err()
}
