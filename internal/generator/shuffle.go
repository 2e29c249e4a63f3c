package generator

import (
	"math/rand"

	"github.com/claude/caliq/internal/catalog"
	"github.com/claude/caliq/internal/models"
)

// ShuffleStrategy is the schedule-free generation mode: filter the catalog by
// level and requested type, shuffle, truncate to the time budget, then shape
// the result as an EMOM, circuit, or standard-sets session.
type ShuffleStrategy struct {
	rnd    *rand.Rand
	idFunc func() string
}

// NewShuffle creates the filter-shuffle strategy. Nil arguments fall back to
// a time-seeded source and uuid ids.
func NewShuffle(rnd *rand.Rand, idFunc func() string) *ShuffleStrategy {
	if rnd == nil {
		rnd = defaultRand
	}
	if idFunc == nil {
		idFunc = defaultIDFunc
	}
	return &ShuffleStrategy{rnd: rnd, idFunc: idFunc}
}

func (s *ShuffleStrategy) Generate(profile models.UserProfile, p Params) (*models.Workout, error) {
	pool := s.filter(profile, p.Type)

	shuffled := make([]models.Exercise, len(pool))
	copy(shuffled, pool)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	count := p.Duration / 3
	if count < 1 {
		count = 1
	}
	if count > len(shuffled) {
		count = len(shuffled)
	}
	picked := shuffled[:count]

	var (
		structured []models.Exercise
		structure  string
	)
	switch {
	case !p.IsWeekend && p.Duration <= 30:
		structured = s.emom(picked, profile.FitnessLevel, p.Duration)
		structure = "EMOM"
	case p.Duration > 30 || p.IsWeekend:
		structured = s.circuit(picked, p.Duration)
		structure = "Circuit"
	default:
		structured = s.standard(picked, profile.FitnessLevel, p.Duration)
		structure = "Standard"
	}

	return &models.Workout{
		ID:          s.idFunc(),
		Name:        structure + " " + titleForType(p.Type),
		Exercises:   structured,
		Duration:    p.Duration,
		Difficulty:  profile.FitnessLevel,
		Type:        p.Type,
		Description: descriptionForStructure(structure, p.Duration),
		VoiceScript: voiceScript(""),
	}, nil
}

// filter keeps catalog entries matching the athlete's level and the requested
// type or one of their goals. Warm-up and mobility moves always qualify.
func (s *ShuffleStrategy) filter(profile models.UserProfile, typ string) []models.Exercise {
	var out []models.Exercise
	for _, ex := range catalog.All() {
		if !levelAllows(profile.FitnessLevel, ex.Difficulty) {
			continue
		}
		if ex.Type == models.TypeWarmup || ex.Type == models.TypeMobility {
			out = append(out, ex)
			continue
		}
		if typ == "mixed" || ex.Type == typ || matchesGoal(profile.Goals, ex.Type) {
			out = append(out, ex)
		}
	}
	return out
}

// levelAllows admits exercises at or below the athlete's level.
func levelAllows(level, difficulty string) bool {
	rank := map[string]int{
		models.LevelBeginner:     0,
		models.LevelIntermediate: 1,
		models.LevelAdvanced:     2,
	}
	return rank[difficulty] <= rank[level]
}

func matchesGoal(goals []string, typ string) bool {
	for _, g := range goals {
		if g == typ {
			return true
		}
	}
	return false
}

// emom picks up to three exercises and runs them every minute on the minute.
// Each exercise owes its work inside a 60-second window; whatever is left of
// the window is rest.
func (s *ShuffleStrategy) emom(picked []models.Exercise, level string, duration int) []models.Exercise {
	if len(picked) > 3 {
		picked = picked[:3]
	}
	rounds := duration / len(nonEmpty(picked))

	out := make([]models.Exercise, 0, len(picked))
	for _, ex := range picked {
		ex = adjustReps(ex, level)
		ex.Sets = rounds
		work := ex.Duration
		if work == 0 || work > 50 {
			work = 40
		}
		ex.Duration = work
		ex.RestTime = 60 - work
		out = append(out, ex)
	}
	return out
}

// circuit uses fixed 45-second work and 15-second rest intervals; the round
// count scales with the session length.
func (s *ShuffleStrategy) circuit(picked []models.Exercise, duration int) []models.Exercise {
	rounds := (duration + 9) / 10

	out := make([]models.Exercise, 0, len(picked))
	for _, ex := range picked {
		ex.Duration = 45
		ex.RestTime = 15
		ex.Sets = rounds
		out = append(out, ex)
	}
	return out
}

// standard computes a set count from the per-exercise time budget, capped at
// the exercise's own set count, with rest fixed by fitness level.
func (s *ShuffleStrategy) standard(picked []models.Exercise, level string, duration int) []models.Exercise {
	perExercise := duration / len(nonEmpty(picked))

	rest := 75
	switch level {
	case models.LevelBeginner:
		rest = 90
	case models.LevelAdvanced:
		rest = 60
	}

	out := make([]models.Exercise, 0, len(picked))
	for _, ex := range picked {
		ex = adjustReps(ex, level)
		sets := perExercise / 3
		if sets < 2 {
			sets = 2
		}
		if ex.Sets > 0 && sets > ex.Sets {
			sets = ex.Sets
		}
		ex.Sets = sets
		ex.RestTime = rest
		out = append(out, ex)
	}
	return out
}

// nonEmpty guards the divisions above against a zero-length pick.
func nonEmpty(picked []models.Exercise) []models.Exercise {
	if len(picked) == 0 {
		return make([]models.Exercise, 1)
	}
	return picked
}

func titleForType(typ string) string {
	switch typ {
	case models.TypeStrength:
		return "Strength Session"
	case models.TypeEndurance:
		return "Endurance Session"
	case "flexibility":
		return "Mobility Session"
	default:
		return "Mixed Session"
	}
}

func descriptionForStructure(structure string, duration int) string {
	switch structure {
	case "EMOM":
		return "Every minute on the minute: start each exercise at the top of a 60-second window and rest for whatever remains. Short, sharp, and honest."
	case "Circuit":
		return "Circuit training: 45 seconds of work, 15 seconds of transition, round after round. Keep moving and keep your form."
	default:
		return "Straight sets with strict rest. Own every rep and earn your recovery."
	}
}
