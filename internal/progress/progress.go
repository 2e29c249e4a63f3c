// Package progress computes display counters over persisted workout
// sessions: period totals, training streaks, personal bests, and the
// activity heatmap.
package progress

import (
	"sort"
	"time"

	"github.com/claude/caliq/internal/models"
)

// Period selects the window for the aggregate totals.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// caloriesPerMinute is the flat burn estimate used for display.
const caloriesPerMinute = 8

// Stats are the aggregated counters shown on the progress page.
type Stats struct {
	TotalWorkouts     int           `json:"totalWorkouts"`
	TotalMinutes      int           `json:"totalMinutes"`
	AverageDuration   int           `json:"averageDuration"`
	EstimatedCalories int           `json:"estimatedCalories"`
	CurrentStreak     int           `json:"currentStreak"`
	PersonalBests     PersonalBests `json:"personalBests"`
	Heatmap           []HeatmapDay  `json:"heatmap"`
}

// PersonalBests are all-time maxima.
type PersonalBests struct {
	LongestWorkout int `json:"longestWorkout"` // minutes
	MostExercises  int `json:"mostExercises"`
	BestStreak     int `json:"bestStreak"` // days
}

// HeatmapDay is one cell of the activity heatmap.
type HeatmapDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Compute aggregates a user's sessions. Period totals cover the window ending
// at now; streaks, bests, and the heatmap always use the full history.
func Compute(sessions []models.WorkoutSession, period Period, now time.Time) Stats {
	var start time.Time
	switch period {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, -1, 0)
	}

	var stats Stats
	for _, sess := range sessions {
		if sess.CompletedAt.Before(start) {
			continue
		}
		stats.TotalWorkouts++
		stats.TotalMinutes += sess.Duration
	}
	if stats.TotalWorkouts > 0 {
		stats.AverageDuration = stats.TotalMinutes / stats.TotalWorkouts
	}
	stats.EstimatedCalories = stats.TotalMinutes * caloriesPerMinute

	current, best := streaks(sessions, now)
	stats.CurrentStreak = current
	stats.PersonalBests = PersonalBests{BestStreak: best}
	for _, sess := range sessions {
		if sess.Duration > stats.PersonalBests.LongestWorkout {
			stats.PersonalBests.LongestWorkout = sess.Duration
		}
		if n := len(sess.ExercisesCompleted); n > stats.PersonalBests.MostExercises {
			stats.PersonalBests.MostExercises = n
		}
	}

	stats.Heatmap = Heatmap(sessions, now, 84)
	return stats
}

// streaks returns the current streak (consecutive training days ending today
// or yesterday) and the best streak over the whole history.
func streaks(sessions []models.WorkoutSession, now time.Time) (current, best int) {
	if len(sessions) == 0 {
		return 0, 0
	}

	loc := now.Location()
	seen := map[string]bool{}
	var days []time.Time
	for _, sess := range sessions {
		day := dayOf(sess.CompletedAt.In(loc))
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := dayOf(now)
	anchor := today
	run := 0
	for _, day := range days {
		if day.Equal(anchor) {
			run++
			anchor = anchor.AddDate(0, 0, -1)
			continue
		}
		// The streak survives a gap only once, at the start, when the user
		// has not yet trained today.
		if run == 0 && day.Equal(today.AddDate(0, 0, -1)) {
			run = 1
			anchor = day.AddDate(0, 0, -1)
			continue
		}
		break
	}
	current = run

	// Best streak: longest run of consecutive days anywhere in the history.
	run = 0
	for i, day := range days {
		if i == 0 || days[i-1].AddDate(0, 0, -1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	if current > best {
		best = current
	}
	return current, best
}

// dayOf is midnight of t's calendar day in t's location. Streaks and the
// heatmap both bucket by this key, so the two agree even when sessions carry
// a different zone than now.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Heatmap buckets sessions per calendar day, in now's zone, over the
// trailing window.
func Heatmap(sessions []models.WorkoutSession, now time.Time, days int) []HeatmapDay {
	counts := map[string]int{}
	for _, sess := range sessions {
		counts[sess.CompletedAt.In(now.Location()).Format("2006-01-02")]++
	}

	out := make([]HeatmapDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		out = append(out, HeatmapDay{Date: date, Count: counts[date]})
	}
	return out
}
