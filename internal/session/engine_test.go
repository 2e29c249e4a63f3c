package session

import (
	"sync"
	"testing"
	"time"

	"github.com/claude/caliq/internal/models"
	"github.com/claude/caliq/internal/voice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSpeaker captures spoken lines for assertions.
type recordingSpeaker struct {
	mu    sync.Mutex
	lines []string
}

func (s *recordingSpeaker) Speak(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, text)
	return nil
}

func (s *recordingSpeaker) Stop() {}

func (s *recordingSpeaker) spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func twoExerciseWorkout() *models.Workout {
	return &models.Workout{
		ID:   "w1",
		Name: "Test Session",
		Exercises: []models.Exercise{
			{ID: "a", Name: "Exercise A", Duration: 5, Sets: 2, RestTime: 3},
			{ID: "b", Name: "Exercise B", Duration: 4, Sets: 1},
		},
	}
}

func silentEngine(w *models.Workout, opts ...EngineOption) *Engine {
	return NewEngine(w, voice.New(nil), opts...)
}

func TestEngineStartsInReady(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	st := e.State()
	assert.Equal(t, PhaseReady, st.Phase)
	assert.Equal(t, 1, st.Set)
}

func TestEngineStartEntersFirstExercise(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()

	st := e.State()
	assert.Equal(t, PhaseExercise, st.Phase)
	assert.Equal(t, 0, st.ExerciseIndex)
	assert.Equal(t, 1, st.Set)
	assert.Equal(t, 5, st.TimeRemaining)
	assert.False(t, st.StartedAt.IsZero())
}

func TestEngineStartWithoutExercisesIsNoOp(t *testing.T) {
	e := silentEngine(&models.Workout{ID: "w", Exercises: []models.Exercise{}})
	e.Start()
	assert.Equal(t, PhaseReady, e.State().Phase)
}

func TestEngineCompletesAfterExactTickCount(t *testing.T) {
	// 5+3+5 seconds for exercise A (two sets with rest), 4 for exercise B
	completed := false
	e := silentEngine(twoExerciseWorkout(), WithOnComplete(func() { completed = true }))
	e.Start()

	for i := 0; i < 16; i++ {
		e.Tick()
		require.NotEqual(t, PhaseComplete, e.State().Phase, "completed early at tick %d", i+1)
	}
	e.Tick()
	assert.Equal(t, PhaseComplete, e.State().Phase)
	assert.True(t, completed)

	// further ticks are no-ops
	e.Tick()
	assert.Equal(t, PhaseComplete, e.State().Phase)
}

func TestEngineRestBetweenSets(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()

	for i := 0; i < 5; i++ {
		e.Tick()
	}
	st := e.State()
	assert.Equal(t, PhaseRest, st.Phase)
	assert.Equal(t, 2, st.Set)
	assert.Equal(t, 3, st.TimeRemaining)
	assert.Equal(t, 0, st.ExerciseIndex)
}

func TestEnginePause(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()
	e.Tick()
	remaining := e.State().TimeRemaining

	e.Pause()
	assert.True(t, e.State().Paused)
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	assert.Equal(t, remaining, e.State().TimeRemaining)

	e.Pause()
	assert.False(t, e.State().Paused)
	e.Tick()
	assert.Equal(t, remaining-1, e.State().TimeRemaining)
}

func TestEnginePauseBeforeStartIsNoOp(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Pause()
	assert.False(t, e.State().Paused)
}

func TestEngineSkip(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()
	e.Skip()

	st := e.State()
	assert.Equal(t, 1, st.ExerciseIndex)
	assert.Equal(t, PhaseExercise, st.Phase)
	assert.Equal(t, 1, st.Set)
	assert.Equal(t, 4, st.TimeRemaining)
}

func TestEngineSkipAnnouncesNextExercise(t *testing.T) {
	sp := &recordingSpeaker{}
	e := NewEngine(twoExerciseWorkout(), voice.New(sp))
	e.Start()
	e.Skip()

	require.Eventually(t, func() bool {
		for _, line := range sp.spoken() {
			if line == "Next up: Exercise B. Get ready!" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestEngineSkipOnLastExerciseIsNoOp(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()
	e.Skip()
	before := e.State()
	e.Skip()
	assert.Equal(t, before, e.State())
}

func TestEngineRestart(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()

	// burn into the second set's rest, then restart
	for i := 0; i < 6; i++ {
		e.Tick()
	}
	require.Equal(t, PhaseRest, e.State().Phase)

	e.Restart()
	st := e.State()
	assert.Equal(t, PhaseExercise, st.Phase)
	assert.Equal(t, 0, st.ExerciseIndex)
	assert.Equal(t, 1, st.Set)
	assert.Equal(t, 5, st.TimeRemaining)
}

func TestEngineCuesSpoken(t *testing.T) {
	sp := &recordingSpeaker{}
	e := NewEngine(twoExerciseWorkout(), voice.New(sp))
	e.Start()

	require.Eventually(t, func() bool {
		for _, line := range sp.spoken() {
			if line == "Starting Exercise A. Focus on your form!" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestEngineFeedbackStored(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	e.Start()
	e.Feedback("negative")
	assert.Equal(t, "negative", e.feedback)
}

func TestEngineCurrentExercise(t *testing.T) {
	e := silentEngine(twoExerciseWorkout())
	ex, ok := e.CurrentExercise()
	require.True(t, ok)
	assert.Equal(t, "a", ex.ID)
}
