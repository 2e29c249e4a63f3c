package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/claude/caliq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created []models.WorkoutSession
	err     error
}

func (f *fakeStore) CreateSession(ctx context.Context, s models.WorkoutSession) (models.WorkoutSession, error) {
	if f.err != nil {
		return models.WorkoutSession{}, f.err
	}
	s.ID = "stored"
	f.created = append(f.created, s)
	return s, nil
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecorderRecordsPlannedExercises(t *testing.T) {
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	e := silentEngine(twoExerciseWorkout(), WithEngineClock(func() time.Time { return start }))
	e.Start()

	store := &fakeStore{}
	r := NewRecorder(store, discardLog())
	r.clock = func() time.Time { return start.Add(17 * time.Minute) }

	record := r.Record(context.Background(), "u1", e)

	assert.Equal(t, "stored", record.ID)
	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, "w1", record.WorkoutID)
	assert.Equal(t, 17, record.Duration)
	assert.Equal(t, "positive", record.Feedback)

	require.Len(t, record.ExercisesCompleted, 2)
	assert.Equal(t, models.CompletedExercise{Name: "Exercise A", Sets: 2, Reps: 0, Duration: 5}, record.ExercisesCompleted[0])
	assert.Equal(t, models.CompletedExercise{Name: "Exercise B", Sets: 1, Reps: 0, Duration: 4}, record.ExercisesCompleted[1])
}

func TestRecorderKeepsNegativeFeedback(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()
	e.Feedback("negative")

	store := &fakeStore{}
	record := NewRecorder(store, discardLog()).Record(context.Background(), "u1", e)
	assert.Equal(t, "negative", record.Feedback)
}

func TestRecorderSurvivesStoreFailure(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()

	store := &fakeStore{err: errors.New("database gone")}
	record := NewRecorder(store, discardLog()).Record(context.Background(), "u1", e)

	// the local record still comes back, just without a stored id
	assert.Empty(t, record.ID)
	assert.Equal(t, "w1", record.WorkoutID)
	assert.Len(t, record.ExercisesCompleted, 2)
}
