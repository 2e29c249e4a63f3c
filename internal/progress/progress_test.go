package progress

import (
	"testing"
	"time"

	"github.com/claude/caliq/internal/models"
)

var now = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func sessionOn(daysAgo, duration int, exercises int) models.WorkoutSession {
	completed := make([]models.CompletedExercise, exercises)
	return models.WorkoutSession{
		CompletedAt:        now.AddDate(0, 0, -daysAgo),
		Duration:           duration,
		ExercisesCompleted: completed,
	}
}

func TestComputeEmptyHistory(t *testing.T) {
	stats := Compute(nil, PeriodWeek, now)
	if stats.TotalWorkouts != 0 || stats.CurrentStreak != 0 {
		t.Errorf("stats = %+v, want zeros", stats)
	}
	if len(stats.Heatmap) != 84 {
		t.Errorf("len(heatmap) = %d, want 84", len(stats.Heatmap))
	}
}

func TestComputePeriodWindows(t *testing.T) {
	sessions := []models.WorkoutSession{
		sessionOn(1, 30, 5),
		sessionOn(10, 20, 4),
		sessionOn(100, 40, 6),
	}

	week := Compute(sessions, PeriodWeek, now)
	if week.TotalWorkouts != 1 || week.TotalMinutes != 30 {
		t.Errorf("week totals = %d workouts / %d min", week.TotalWorkouts, week.TotalMinutes)
	}

	month := Compute(sessions, PeriodMonth, now)
	if month.TotalWorkouts != 2 || month.TotalMinutes != 50 {
		t.Errorf("month totals = %d workouts / %d min", month.TotalWorkouts, month.TotalMinutes)
	}

	year := Compute(sessions, PeriodYear, now)
	if year.TotalWorkouts != 3 || year.TotalMinutes != 90 {
		t.Errorf("year totals = %d workouts / %d min", year.TotalWorkouts, year.TotalMinutes)
	}
}

func TestComputeCaloriesAndAverage(t *testing.T) {
	sessions := []models.WorkoutSession{
		sessionOn(1, 30, 5),
		sessionOn(2, 20, 4),
	}
	stats := Compute(sessions, PeriodWeek, now)
	if stats.AverageDuration != 25 {
		t.Errorf("average = %d, want 25", stats.AverageDuration)
	}
	if stats.EstimatedCalories != 400 {
		t.Errorf("calories = %d, want 400 (50 min * 8)", stats.EstimatedCalories)
	}
}

func TestPersonalBestsUseFullHistory(t *testing.T) {
	sessions := []models.WorkoutSession{
		sessionOn(1, 30, 5),
		sessionOn(200, 90, 12), // outside every period window
	}
	stats := Compute(sessions, PeriodWeek, now)
	if stats.PersonalBests.LongestWorkout != 90 {
		t.Errorf("longest = %d, want 90", stats.PersonalBests.LongestWorkout)
	}
	if stats.PersonalBests.MostExercises != 12 {
		t.Errorf("most exercises = %d, want 12", stats.PersonalBests.MostExercises)
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo []int
		want    int
	}{
		{"trained today and two days before", []int{0, 1, 2}, 3},
		{"not yet trained today", []int{1, 2, 3}, 3},
		{"gap two days ago breaks it", []int{0, 1, 3, 4}, 2},
		{"last trained three days ago", []int{3, 4, 5}, 0},
		{"single session today", []int{0}, 1},
		{"no sessions", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []models.WorkoutSession
			for _, d := range tt.daysAgo {
				sessions = append(sessions, sessionOn(d, 30, 3))
			}
			current, _ := streaks(sessions, now)
			if current != tt.want {
				t.Errorf("current streak = %d, want %d", current, tt.want)
			}
		})
	}
}

func TestBestStreak(t *testing.T) {
	// a five-day run long ago beats the current two-day run
	var sessions []models.WorkoutSession
	for _, d := range []int{0, 1, 30, 31, 32, 33, 34} {
		sessions = append(sessions, sessionOn(d, 30, 3))
	}
	current, best := streaks(sessions, now)
	if current != 2 {
		t.Errorf("current = %d, want 2", current)
	}
	if best != 5 {
		t.Errorf("best = %d, want 5", best)
	}
}

func TestStreakIgnoresDuplicateDays(t *testing.T) {
	sessions := []models.WorkoutSession{
		sessionOn(0, 20, 3),
		sessionOn(0, 25, 4), // second session same day
		sessionOn(1, 30, 5),
	}
	current, best := streaks(sessions, now)
	if current != 2 || best != 2 {
		t.Errorf("streaks = %d/%d, want 2/2", current, best)
	}
}

func TestHeatmap(t *testing.T) {
	sessions := []models.WorkoutSession{
		sessionOn(0, 20, 3),
		sessionOn(0, 25, 4),
		sessionOn(5, 30, 5),
	}
	heat := Heatmap(sessions, now, 84)
	if len(heat) != 84 {
		t.Fatalf("len(heat) = %d, want 84", len(heat))
	}
	// oldest day first, today last
	last := heat[len(heat)-1]
	if last.Date != "2025-06-15" || last.Count != 2 {
		t.Errorf("today = %+v, want 2025-06-15 count 2", last)
	}
	fiveAgo := heat[len(heat)-6]
	if fiveAgo.Date != "2025-06-10" || fiveAgo.Count != 1 {
		t.Errorf("five days ago = %+v", fiveAgo)
	}
	if heat[0].Date != "2025-03-24" {
		t.Errorf("first = %s, want 2025-03-24", heat[0].Date)
	}
}

func TestDayBucketsFollowNowZone(t *testing.T) {
	// A session stored in UTC that falls on the next calendar day in the
	// viewer's zone. Streak and heatmap must bucket it the same way.
	tokyoish := time.FixedZone("UTC+9", 9*3600)
	localNow := time.Date(2025, 6, 15, 1, 0, 0, 0, tokyoish)
	sessions := []models.WorkoutSession{
		{CompletedAt: time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC), Duration: 30},
	}

	stats := Compute(sessions, PeriodWeek, localNow)
	if stats.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", stats.CurrentStreak)
	}
	today := stats.Heatmap[len(stats.Heatmap)-1]
	if today.Date != "2025-06-15" || today.Count != 1 {
		t.Errorf("today = %+v, want 2025-06-15 count 1", today)
	}
}
