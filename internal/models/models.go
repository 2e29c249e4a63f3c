package models

import "time"

// Fitness levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Exercise categories.
const (
	TypeStrength  = "strength"
	TypeEndurance = "endurance"
	TypeWarmup    = "warmup"
	TypeMobility  = "mobility"
)

// Exercise is a catalog entry. Exactly one of Reps/Duration is typically set
// (rep-based vs time-based), but neither is required; consumers must fall
// back to defaults rather than fail on a zero value.
type Exercise struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description,omitempty"`
	Instructions []string `json:"instructions"`
	Duration     int      `json:"duration,omitempty"` // seconds
	Reps         int      `json:"reps,omitempty"`
	Sets         int      `json:"sets,omitempty"`
	RestTime     int      `json:"restTime,omitempty"` // seconds
	Difficulty   string   `json:"difficulty"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`
	Equipment    []string `json:"equipment,omitempty"`
	FormTips     []string `json:"formTips,omitempty"`
}

// User is a minimal account record.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserProfile is created at onboarding and replayed by the client on every
// generation request.
type UserProfile struct {
	ID                 string   `json:"id"`
	UserID             string   `json:"userId"`
	Name               string   `json:"name"`
	Height             int      `json:"height,omitempty"` // cm
	Weight             int      `json:"weight,omitempty"` // kg
	FitnessLevel       string   `json:"fitnessLevel"`
	Goals              []string `json:"goals"`
	DailyTimeAvailable int      `json:"dailyTimeAvailable"` // minutes
}

// Workout is a generated workout. Exercises are resolved copies, not catalog
// references. An empty exercise list is legal only for rest days.
type Workout struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId,omitempty"`
	Name        string     `json:"name"`
	Exercises   []Exercise `json:"exercises"`
	Duration    int        `json:"duration"` // target minutes
	Difficulty  string     `json:"difficulty"`
	Type        string     `json:"type"`
	Description string     `json:"description,omitempty"`
	VoiceScript []string   `json:"voiceScript,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

// CompletedExercise summarizes one exercise of a finished session, as
// planned (there is no rep-counting sensor).
type CompletedExercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
	Duration int    `json:"duration"`
}

// WorkoutSession is the persisted record of a completed training run.
type WorkoutSession struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"userId"`
	WorkoutID          string              `json:"workoutId"`
	CompletedAt        time.Time           `json:"completedAt"`
	Duration           int                 `json:"duration"` // actual minutes
	ExercisesCompleted []CompletedExercise `json:"exercisesCompleted"`
	Feedback           string              `json:"feedback,omitempty"` // positive | negative
}

// GenerateRequest is the body of POST /api/v1/workouts/generate.
type GenerateRequest struct {
	UserProfile *UserProfile `json:"userProfile"`
	WorkoutType string       `json:"workoutType,omitempty"` // strength | endurance | flexibility | mixed
	Duration    int          `json:"duration,omitempty"`    // minutes
	IsWeekend   bool         `json:"isWeekend,omitempty"`
}
