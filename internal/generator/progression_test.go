package generator

import (
	"testing"
	"time"

	"github.com/claude/caliq/internal/catalog"
	"github.com/claude/caliq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateOn(t *testing.T, day time.Weekday, level string, week int) *models.Workout {
	t.Helper()
	g := New(NewProgression(testIDs()), WithClock(fixedClock(day)))
	w, err := g.Generate(models.GenerateRequest{UserProfile: testProfile(level)}, week)
	require.NoError(t, err)
	return w
}

func TestProgressionRestDay(t *testing.T) {
	w := generateOn(t, time.Sunday, models.LevelBeginner, 1)

	assert.Equal(t, "Active Recovery Day", w.Name)
	assert.Empty(t, w.Exercises)
	assert.Equal(t, 0, w.Duration)
	assert.Equal(t, catalog.FocusRest, w.Type)
	assert.NotEmpty(t, w.VoiceScript)
}

func TestProgressionMondayTriplets(t *testing.T) {
	w := generateOn(t, time.Monday, models.LevelIntermediate, 1)

	assert.Equal(t, catalog.FocusFullBody, w.Type)
	assert.Equal(t, 60, w.Duration)

	ids := exerciseIDs(w)
	assert.Contains(t, ids, "push-normal")
	assert.Contains(t, ids, "pull-australian")
	assert.Contains(t, ids, "squat-bodyweight")
	assert.Contains(t, ids, "core-plank")

	// three warmups lead the session
	require.GreaterOrEqual(t, len(w.Exercises), 3)
	for _, ex := range w.Exercises[:3] {
		assert.Contains(t, []string{models.TypeWarmup, models.TypeMobility}, ex.Type)
	}
}

func TestProgressionAdvancesWithWeek(t *testing.T) {
	week1 := generateOn(t, time.Monday, models.LevelIntermediate, 1)
	week5 := generateOn(t, time.Monday, models.LevelIntermediate, 5)
	week12 := generateOn(t, time.Monday, models.LevelIntermediate, 12)

	assert.Contains(t, exerciseIDs(week1), "push-normal")
	assert.Contains(t, exerciseIDs(week5), "push-diamond")
	assert.Contains(t, exerciseIDs(week12), "push-one-arm")
}

func TestProgressionPushDayDeduplicates(t *testing.T) {
	// in week 5 the push progression resolves to push-diamond, which the
	// push-emphasis day also adds explicitly; it must appear once
	w := generateOn(t, time.Tuesday, models.LevelIntermediate, 5)

	count := 0
	for _, ex := range w.Exercises {
		if ex.ID == "push-diamond" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestProgressionScalesRepsByLevel(t *testing.T) {
	beginner := generateOn(t, time.Monday, models.LevelBeginner, 1)
	advanced := generateOn(t, time.Monday, models.LevelAdvanced, 1)

	base, ok := catalog.ByID("push-normal")
	require.True(t, ok)

	assert.Equal(t, base.Reps*7/10, findExercise(t, beginner, "push-normal").Reps)
	assert.Equal(t, base.Reps*13/10, findExercise(t, advanced, "push-normal").Reps)
}

func TestProgressionNameIncludesWeekAndLevel(t *testing.T) {
	w := generateOn(t, time.Friday, models.LevelBeginner, 3)
	assert.Equal(t, "Week 3 - Leg Power Legion (BEGINNER)", w.Name)
}

func TestProgressionEveryTrainingDayNonEmpty(t *testing.T) {
	for d := time.Monday; d <= time.Saturday; d++ {
		w := generateOn(t, d, models.LevelIntermediate, 4)
		assert.NotEmpty(t, w.Exercises, "day %s", d)
		assert.NotEmpty(t, w.Description, "day %s", d)
		assert.NotEmpty(t, w.VoiceScript, "day %s", d)
	}
}

func exerciseIDs(w *models.Workout) []string {
	ids := make([]string, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		ids = append(ids, ex.ID)
	}
	return ids
}

func findExercise(t *testing.T, w *models.Workout, id string) models.Exercise {
	t.Helper()
	for _, ex := range w.Exercises {
		if ex.ID == id {
			return ex
		}
	}
	t.Fatalf("exercise %s not in workout", id)
	return models.Exercise{}
}
