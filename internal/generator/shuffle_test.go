package generator

import (
	"math/rand"
	"testing"

	"github.com/claude/caliq/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shuffleGen() *Generator {
	return New(NewShuffle(rand.New(rand.NewSource(42)), testIDs()))
}

func TestShuffleEMOM(t *testing.T) {
	g := shuffleGen()
	w, err := g.Generate(models.GenerateRequest{
		UserProfile: testProfile(models.LevelIntermediate),
		Duration:    30,
		IsWeekend:   false,
	}, 1)
	require.NoError(t, err)

	assert.Contains(t, w.Name, "EMOM")
	require.NotEmpty(t, w.Exercises)
	assert.LessOrEqual(t, len(w.Exercises), 3)
	for _, ex := range w.Exercises {
		// each minute window splits into work and rest
		assert.Equal(t, 60, ex.Duration+ex.RestTime, "exercise %s", ex.ID)
		assert.Equal(t, 30/len(w.Exercises), ex.Sets, "exercise %s", ex.ID)
	}
}

func TestShuffleCircuit(t *testing.T) {
	g := shuffleGen()
	w, err := g.Generate(models.GenerateRequest{
		UserProfile: testProfile(models.LevelIntermediate),
		Duration:    45,
	}, 1)
	require.NoError(t, err)

	assert.Contains(t, w.Name, "Circuit")
	require.NotEmpty(t, w.Exercises)
	for _, ex := range w.Exercises {
		assert.Equal(t, 45, ex.Duration)
		assert.Equal(t, 15, ex.RestTime)
		assert.Equal(t, 5, ex.Sets) // ceil(45/10)
	}
}

func TestShuffleWeekendShortIsCircuit(t *testing.T) {
	g := shuffleGen()
	w, err := g.Generate(models.GenerateRequest{
		UserProfile: testProfile(models.LevelBeginner),
		Duration:    20,
		IsWeekend:   true,
	}, 1)
	require.NoError(t, err)
	assert.Contains(t, w.Name, "Circuit")
}

func TestShuffleTruncatesToTimeBudget(t *testing.T) {
	g := shuffleGen()
	w, err := g.Generate(models.GenerateRequest{
		UserProfile: testProfile(models.LevelAdvanced),
		Duration:    45,
	}, 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(w.Exercises), 15) // floor(45/3)
}

func TestShuffleFilterRespectsLevel(t *testing.T) {
	s := NewShuffle(rand.New(rand.NewSource(1)), testIDs())
	pool := s.filter(*testProfile(models.LevelBeginner), "mixed")

	require.NotEmpty(t, pool)
	for _, ex := range pool {
		assert.Equal(t, models.LevelBeginner, ex.Difficulty, "exercise %s", ex.ID)
	}
}

func TestShuffleFilterAlwaysAdmitsWarmups(t *testing.T) {
	s := NewShuffle(rand.New(rand.NewSource(1)), testIDs())
	pool := s.filter(*testProfile(models.LevelBeginner), models.TypeEndurance)

	found := false
	for _, ex := range pool {
		if ex.Type == models.TypeWarmup || ex.Type == models.TypeMobility {
			found = true
		}
	}
	assert.True(t, found, "no warmup or mobility exercise in pool")
}

func TestShuffleFilterMatchesGoals(t *testing.T) {
	s := NewShuffle(rand.New(rand.NewSource(1)), testIDs())
	profile := testProfile(models.LevelIntermediate)
	profile.Goals = []string{models.TypeEndurance}

	pool := s.filter(*profile, models.TypeStrength)
	for _, ex := range pool {
		if ex.Type == models.TypeWarmup || ex.Type == models.TypeMobility {
			continue
		}
		assert.Contains(t, []string{models.TypeStrength, models.TypeEndurance}, ex.Type, "exercise %s", ex.ID)
	}
}

func TestShuffleStandardSets(t *testing.T) {
	s := NewShuffle(rand.New(rand.NewSource(1)), testIDs())
	picked := []models.Exercise{
		{ID: "a", Reps: 10, Sets: 4},
		{ID: "b", Reps: 10, Sets: 2},
	}

	out := s.standard(picked, models.LevelBeginner, 24)
	require.Len(t, out, 2)
	// 12 minutes per exercise gives 4 sets; b is capped at its own 2
	assert.Equal(t, 4, out[0].Sets)
	assert.Equal(t, 2, out[1].Sets)
	for _, ex := range out {
		assert.Equal(t, 90, ex.RestTime)
		assert.Equal(t, 7, ex.Reps)
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	gen := func() *models.Workout {
		g := New(NewShuffle(rand.New(rand.NewSource(7)), testIDs()))
		w, err := g.Generate(models.GenerateRequest{
			UserProfile: testProfile(models.LevelIntermediate),
			Duration:    30,
		}, 1)
		require.NoError(t, err)
		return w
	}

	assert.Equal(t, exerciseIDs(gen()), exerciseIDs(gen()))
}
