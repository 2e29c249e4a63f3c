package catalog

import "time"

// Training focuses assigned to weekdays.
const (
	FocusFullBody       = "full_body_strength"
	FocusPushEmphasis   = "push_emphasis"
	FocusPullEmphasis   = "pull_emphasis"
	FocusSquatEmphasis  = "squat_emphasis"
	FocusSkill          = "skill_integration"
	FocusActiveRecovery = "active_recovery"
	FocusRest           = "rest"
)

// DaySchedule describes one weekday of the 12-week plan.
type DaySchedule struct {
	Focus     string
	Duration  int // minutes
	Structure string
	Rounds    int
	Rest      int // seconds between rounds
}

var weeklySchedule = map[time.Weekday]DaySchedule{
	time.Monday:    {Focus: FocusFullBody, Duration: 60, Structure: "triplets", Rounds: 4, Rest: 120},
	time.Tuesday:   {Focus: FocusPushEmphasis, Duration: 45, Structure: "strength_focus", Rest: 90},
	time.Wednesday: {Focus: FocusPullEmphasis, Duration: 45, Structure: "strength_focus", Rest: 90},
	time.Thursday:  {Focus: FocusActiveRecovery, Duration: 45, Structure: "mobility_flow", Rest: 30},
	time.Friday:    {Focus: FocusSquatEmphasis, Duration: 45, Structure: "strength_focus", Rest: 90},
	time.Saturday:  {Focus: FocusSkill, Duration: 30, Structure: "combinations", Rest: 60},
	time.Sunday:    {Focus: FocusRest, Structure: "complete_rest"},
}

// Schedule returns the training focus for a weekday.
func Schedule(day time.Weekday) DaySchedule {
	return weeklySchedule[day]
}

// Progression paths: ordered exercise ids of increasing difficulty, indexed
// by training week via ProgressionExerciseID.
var progressionPaths = map[string][]string{
	"push":  {"push-normal", "push-diamond", "push-archer", "push-one-arm"},
	"pull":  {"pull-australian", "pull-negative", "pull-assisted", "pull-full"},
	"squat": {"squat-bodyweight", "squat-deep", "squat-bulgarian-split", "squat-box-pistol", "squat-pistol"},
}

// ProgressionExerciseID maps a training week (1-12) onto a path's exercise id.
// Weeks 1-3 select the first stage, 4-6 the second, 7-10 the third, and
// anything later the fourth (or the last stage the path has).
func ProgressionExerciseID(path string, week int) string {
	stages, ok := progressionPaths[path]
	if !ok || len(stages) == 0 {
		return ""
	}
	var idx int
	switch {
	case week <= 3:
		idx = 0
	case week <= 6:
		idx = 1
	case week <= 10:
		idx = 2
	default:
		idx = 3
	}
	if idx >= len(stages) {
		idx = len(stages) - 1
	}
	return stages[idx]
}
