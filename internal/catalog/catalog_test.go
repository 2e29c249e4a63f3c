package catalog

import (
	"testing"
	"time"

	"github.com/claude/caliq/internal/models"
)

func TestAllReturnsCopies(t *testing.T) {
	first := All()
	first[0].Name = "mutated"
	first[0].Reps = -1

	second := All()
	if second[0].Name == "mutated" || second[0].Reps == -1 {
		t.Error("catalog entry mutated through All()")
	}
}

func TestByID(t *testing.T) {
	ex, ok := ByID("push-normal")
	if !ok {
		t.Fatal("push-normal not found")
	}
	if ex.Name != "Normal Push-Ups" {
		t.Errorf("name = %q, want Normal Push-Ups", ex.Name)
	}
	if ex.Type != models.TypeStrength {
		t.Errorf("type = %q, want strength", ex.Type)
	}

	if _, ok := ByID("no-such-exercise"); ok {
		t.Error("unknown id reported as found")
	}
}

func TestByDifficulty(t *testing.T) {
	for _, level := range []string{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced} {
		got := ByDifficulty(level)
		if len(got) == 0 {
			t.Errorf("no exercises at level %s", level)
			continue
		}
		for _, ex := range got {
			if ex.Difficulty != level {
				t.Errorf("%s listed under %s", ex.ID, level)
			}
		}
	}
}

func TestWarmups(t *testing.T) {
	warmups := Warmups()
	if len(warmups) < 3 {
		t.Fatalf("len(warmups) = %d, want at least 3", len(warmups))
	}
	for _, ex := range warmups {
		if ex.Type != models.TypeWarmup && ex.Type != models.TypeMobility {
			t.Errorf("%s has type %s", ex.ID, ex.Type)
		}
	}
}

func TestScheduleCoversWeek(t *testing.T) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		sched := Schedule(d)
		if sched.Focus == "" {
			t.Errorf("%s has no focus", d)
		}
	}
	if Schedule(time.Sunday).Focus != FocusRest {
		t.Errorf("Sunday focus = %q, want rest", Schedule(time.Sunday).Focus)
	}
	if Schedule(time.Monday).Duration != 60 {
		t.Errorf("Monday duration = %d, want 60", Schedule(time.Monday).Duration)
	}
}

func TestProgressionExerciseID(t *testing.T) {
	tests := []struct {
		path string
		week int
		want string
	}{
		{"push", 1, "push-normal"},
		{"push", 3, "push-normal"},
		{"push", 4, "push-diamond"},
		{"push", 7, "push-archer"},
		{"push", 11, "push-one-arm"},
		{"push", 12, "push-one-arm"},
		{"pull", 1, "pull-australian"},
		{"pull", 6, "pull-negative"},
		{"squat", 12, "squat-box-pistol"},
		{"nope", 5, ""},
	}
	for _, tt := range tests {
		if got := ProgressionExerciseID(tt.path, tt.week); got != tt.want {
			t.Errorf("ProgressionExerciseID(%q, %d) = %q, want %q", tt.path, tt.week, got, tt.want)
		}
	}
}

func TestProgressionStagesMonotonic(t *testing.T) {
	// advancing the week never moves a path backwards
	for _, path := range []string{"push", "pull", "squat"} {
		lastIdx := -1
		for week := 1; week <= 12; week++ {
			id := ProgressionExerciseID(path, week)
			idx := stageIndex(t, path, id)
			if idx < lastIdx {
				t.Errorf("path %s regressed at week %d", path, week)
			}
			lastIdx = idx
		}
	}
}

func stageIndex(t *testing.T, path, id string) int {
	t.Helper()
	for i, stage := range progressionPaths[path] {
		if stage == id {
			return i
		}
	}
	t.Fatalf("id %q not in path %q", id, path)
	return -1
}

func TestEveryProgressionStageExists(t *testing.T) {
	for path, stages := range progressionPaths {
		for _, id := range stages {
			if _, ok := ByID(id); !ok {
				t.Errorf("path %s references unknown exercise %s", path, id)
			}
		}
	}
}
