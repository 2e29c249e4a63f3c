// Package session drives one live training run: the exercise/rest state
// machine, its voice cues, and the recording of the finished session.
package session

import (
	"time"

	"github.com/claude/caliq/internal/models"
	"github.com/claude/caliq/internal/voice"
)

// Phase of a running session.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhaseExercise Phase = "exercise"
	PhaseRest     Phase = "rest"
	PhaseComplete Phase = "complete"
)

// Defaults applied when an exercise omits a value: rep-based exercises get a
// nominal window, missing rest gets a standard break.
const (
	defaultExerciseSeconds = 45
	defaultRestSeconds     = 60
)

// State is a snapshot of the running session.
type State struct {
	ExerciseIndex int
	Set           int // 1-based
	Phase         Phase
	TimeRemaining int // seconds
	Paused        bool
	RepsCompleted int
	StartedAt     time.Time
}

// Engine is the session state machine. It is not safe for concurrent use:
// a single caller drives it, one Tick per second plus discrete control calls.
type Engine struct {
	workout    *models.Workout
	coach      *voice.Coach
	state      State
	feedback   string
	clock      func() time.Time
	onComplete func()
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithEngineClock overrides the wall clock used for the session start time.
func WithEngineClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.clock = now }
}

// WithOnComplete registers a callback fired exactly once when the session
// transitions into the complete phase.
func WithOnComplete(fn func()) EngineOption {
	return func(e *Engine) { e.onComplete = fn }
}

// NewEngine creates an engine for the workout. The coach may not be nil;
// pass voice.New(nil) for a silent session.
func NewEngine(workout *models.Workout, coach *voice.Coach, opts ...EngineOption) *Engine {
	e := &Engine{
		workout: workout,
		coach:   coach,
		clock:   time.Now,
		state:   State{Set: 1, Phase: PhaseReady},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a snapshot of the current session state.
func (e *Engine) State() State {
	return e.state
}

// Workout returns the workout this session runs.
func (e *Engine) Workout() *models.Workout {
	return e.workout
}

// CurrentExercise returns the exercise the session is on, if any.
func (e *Engine) CurrentExercise() (models.Exercise, bool) {
	if e.state.ExerciseIndex >= len(e.workout.Exercises) {
		return models.Exercise{}, false
	}
	return e.workout.Exercises[e.state.ExerciseIndex], true
}

// Start begins the session. Only valid from the ready phase with at least one
// exercise; anything else is a no-op.
func (e *Engine) Start() {
	if e.state.Phase != PhaseReady || len(e.workout.Exercises) == 0 {
		return
	}
	e.state.StartedAt = e.clock()
	e.state.Paused = false
	e.coach.StartWorkout()
	e.enterExercise(0, 1)
}

// Tick advances the countdown by one second. Ticks are no-ops while paused
// and outside the exercise/rest phases.
func (e *Engine) Tick() {
	if e.state.Paused || (e.state.Phase != PhaseExercise && e.state.Phase != PhaseRest) {
		return
	}

	if e.state.TimeRemaining > 0 {
		e.state.TimeRemaining--
	}
	if e.state.TimeRemaining > 0 {
		e.dispatchTimerCues()
		return
	}

	ex, _ := e.CurrentExercise()
	switch e.state.Phase {
	case PhaseExercise:
		if e.state.Set < setCount(ex) {
			e.enterRest(ex)
		} else if e.state.ExerciseIndex < len(e.workout.Exercises)-1 {
			e.enterExercise(e.state.ExerciseIndex+1, 1)
		} else {
			e.complete()
		}
	case PhaseRest:
		e.state.Phase = PhaseExercise
		e.state.TimeRemaining = exerciseSeconds(ex)
		e.state.RepsCompleted = 0
		e.coach.StartExercise(ex.Name)
	}
}

// Pause toggles the paused flag. While paused, ticks are suspended entirely.
func (e *Engine) Pause() {
	if e.state.Phase == PhaseReady || e.state.Phase == PhaseComplete {
		return
	}
	e.state.Paused = !e.state.Paused
}

// Skip jumps to the next exercise, announced with the "next up" cue rather
// than the usual start cue. A skip from the last exercise is a no-op.
func (e *Engine) Skip() {
	if e.state.Phase != PhaseExercise && e.state.Phase != PhaseRest {
		return
	}
	if e.state.ExerciseIndex >= len(e.workout.Exercises)-1 {
		return
	}
	next := e.state.ExerciseIndex + 1
	e.setExercise(next, 1)
	e.coach.NextExercise(e.workout.Exercises[next].Name)
}

// Restart resets the current exercise to its first set without changing the
// exercise index.
func (e *Engine) Restart() {
	if e.state.Phase != PhaseExercise && e.state.Phase != PhaseRest {
		return
	}
	e.enterExercise(e.state.ExerciseIndex, 1)
}

// Stop aborts the session: in-flight speech is cancelled and no record is
// created. The caller is responsible for stopping its tick source.
func (e *Engine) Stop() {
	e.coach.Stop()
}

// Feedback records the athlete's thumbs up/down for the session. A positive
// tag earns a spoken encouragement.
func (e *Engine) Feedback(tag string) {
	e.feedback = tag
	if tag == "positive" {
		e.coach.Encouragement()
	}
}

func (e *Engine) enterExercise(index, set int) {
	e.setExercise(index, set)
	e.coach.StartExercise(e.workout.Exercises[index].Name)
}

func (e *Engine) setExercise(index, set int) {
	ex := e.workout.Exercises[index]
	e.state.ExerciseIndex = index
	e.state.Set = set
	e.state.Phase = PhaseExercise
	e.state.TimeRemaining = exerciseSeconds(ex)
	e.state.RepsCompleted = 0
}

func (e *Engine) enterRest(ex models.Exercise) {
	e.state.Phase = PhaseRest
	e.state.TimeRemaining = restSeconds(ex)
	e.state.Set++
	e.coach.Rest(restSeconds(ex))
}

func (e *Engine) complete() {
	e.state.Phase = PhaseComplete
	e.state.TimeRemaining = 0
	e.coach.WorkoutComplete()
	if e.onComplete != nil {
		e.onComplete()
	}
}

// dispatchTimerCues fires the countdown and halfway cues after a decrement
// that did not cross zero.
func (e *Engine) dispatchTimerCues() {
	t := e.state.TimeRemaining
	if t <= 3 {
		e.coach.Countdown(t)
		return
	}
	if e.state.Phase == PhaseExercise {
		if ex, ok := e.CurrentExercise(); ok && t == exerciseSeconds(ex)/2 {
			e.coach.Halfway()
		}
	}
}

func setCount(ex models.Exercise) int {
	if ex.Sets > 0 {
		return ex.Sets
	}
	return 1
}

func exerciseSeconds(ex models.Exercise) int {
	if ex.Duration > 0 {
		return ex.Duration
	}
	return defaultExerciseSeconds
}

func restSeconds(ex models.Exercise) int {
	if ex.RestTime > 0 {
		return ex.RestTime
	}
	return defaultRestSeconds
}
