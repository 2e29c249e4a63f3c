// Package generator builds workouts from the exercise catalog. Two strategies
// exist: the default 12-week progression schedule and a filter-shuffle
// fallback for schedule-free generation. Randomness, time, and id generation
// are injected so generation is reproducible in tests.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/claude/caliq/internal/models"
	"github.com/google/uuid"
)

// ErrInvalidProfile marks generation requests rejected before any assembly
// happens; callers map it to a validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// Params are the normalized inputs to a single generation call.
type Params struct {
	Type      string // strength | endurance | flexibility | mixed
	Duration  int    // minutes
	IsWeekend bool
	Day       time.Weekday
	Week      int // training week 1-12
}

// Strategy turns a profile and parameters into a workout.
type Strategy interface {
	Generate(profile models.UserProfile, p Params) (*models.Workout, error)
}

// Generator validates requests, fills defaults, and delegates to a Strategy.
type Generator struct {
	strategy Strategy
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the wall clock used for weekday resolution.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator around the given strategy.
func New(strategy Strategy, opts ...Option) *Generator {
	g := &Generator{strategy: strategy, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a workout for the request. Week is the current training
// week (see TrainingWeek); callers derive it from the user's persisted
// session count.
func (g *Generator) Generate(req models.GenerateRequest, week int) (*models.Workout, error) {
	if req.UserProfile == nil {
		return nil, fmt.Errorf("%w: user profile is required", ErrInvalidProfile)
	}
	profile := *req.UserProfile
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	p := Params{
		Type:      req.WorkoutType,
		Duration:  req.Duration,
		IsWeekend: req.IsWeekend,
		Day:       g.now().Weekday(),
		Week:      week,
	}
	if p.Type == "" {
		p.Type = "mixed"
	}
	if p.Duration <= 0 {
		p.Duration = profile.DailyTimeAvailable
	}
	if p.Week < 1 {
		p.Week = 1
	}

	return g.strategy.Generate(profile, p)
}

func validateProfile(profile models.UserProfile) error {
	switch profile.FitnessLevel {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
	default:
		return fmt.Errorf("%w: unknown fitness level %q", ErrInvalidProfile, profile.FitnessLevel)
	}
	if profile.DailyTimeAvailable <= 0 {
		return fmt.Errorf("%w: daily time available must be positive, got %d", ErrInvalidProfile, profile.DailyTimeAvailable)
	}
	return nil
}

// TrainingWeek derives the current training week from the number of completed
// sessions: one week of the plan per five finished sessions, clamped to the
// 12-week program.
func TrainingWeek(completedSessions int) int {
	week := completedSessions/5 + 1
	if week > 12 {
		week = 12
	}
	return week
}

// adjustReps scales a rep-based exercise for the athlete's level on a copy;
// the shared catalog entry is never mutated. Beginners train at 70% volume,
// advanced athletes at 130%, never below a single rep.
func adjustReps(ex models.Exercise, level string) models.Exercise {
	if ex.Reps == 0 {
		return ex
	}
	switch level {
	case models.LevelBeginner:
		ex.Reps = ex.Reps * 7 / 10
		if ex.Reps < 1 {
			ex.Reps = 1
		}
	case models.LevelAdvanced:
		ex.Reps = ex.Reps * 13 / 10
	}
	return ex
}

// newWorkoutID returns a collision-avoiding workout id. The storage layer
// assigns its own id when the workout is persisted.
func newWorkoutID() string {
	return "workout_" + uuid.NewString()
}

// defaultIDFunc and defaultRand are the production injection points shared by
// the strategies.
var (
	defaultIDFunc         = newWorkoutID
	defaultRand   *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
)
