package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/claude/caliq/internal/models"
)

// SessionStore is the storage collaborator the recorder submits to.
type SessionStore interface {
	CreateSession(ctx context.Context, s models.WorkoutSession) (models.WorkoutSession, error)
}

// Recorder converts a finished session into a persisted record. Storage
// failure is non-fatal: the session still completes locally.
type Recorder struct {
	store SessionStore
	log   *slog.Logger
	clock func() time.Time
}

// NewRecorder creates a Recorder.
func NewRecorder(store SessionStore, log *slog.Logger) *Recorder {
	return &Recorder{store: store, log: log, clock: time.Now}
}

// Record builds the WorkoutSession for a completed engine and submits it.
// The completed-exercise list is the full planned list with planned sets,
// reps, and durations; there is no sensor counting actual reps. The returned
// record is the stored one when submission succeeds, otherwise the local one.
func (r *Recorder) Record(ctx context.Context, userID string, e *Engine) models.WorkoutSession {
	w := e.Workout()
	st := e.State()

	completed := make([]models.CompletedExercise, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		completed = append(completed, models.CompletedExercise{
			Name:     ex.Name,
			Sets:     setCount(ex),
			Reps:     ex.Reps,
			Duration: ex.Duration,
		})
	}

	feedback := e.feedback
	if feedback == "" {
		feedback = "positive"
	}

	record := models.WorkoutSession{
		UserID:             userID,
		WorkoutID:          w.ID,
		CompletedAt:        r.clock(),
		Duration:           int(r.clock().Sub(st.StartedAt).Minutes()),
		ExercisesCompleted: completed,
		Feedback:           feedback,
	}

	stored, err := r.store.CreateSession(ctx, record)
	if err != nil {
		r.log.Warn("failed to persist workout session", "workout", w.ID, "error", err)
		return record
	}
	return stored
}
