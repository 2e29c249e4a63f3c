package generator

import (
	"fmt"
	"strings"

	"github.com/claude/caliq/internal/catalog"
	"github.com/claude/caliq/internal/models"
)

// ProgressionStrategy is the canonical generation mode: the weekday decides
// the training focus and the 12-week progression paths decide which stage of
// each movement the athlete trains.
type ProgressionStrategy struct {
	idFunc func() string
}

// NewProgression creates the progression strategy. A nil idFunc uses uuids.
func NewProgression(idFunc func() string) *ProgressionStrategy {
	if idFunc == nil {
		idFunc = defaultIDFunc
	}
	return &ProgressionStrategy{idFunc: idFunc}
}

func (s *ProgressionStrategy) Generate(profile models.UserProfile, p Params) (*models.Workout, error) {
	day := catalog.Schedule(p.Day)

	if day.Focus == catalog.FocusRest {
		return s.restDay(), nil
	}

	var selected []models.Exercise
	warmups := catalog.Warmups()
	if len(warmups) > 3 {
		warmups = warmups[:3]
	}
	selected = append(selected, warmups...)
	selected = append(selected, s.mainSet(profile, p.Week, day.Focus)...)

	duration := day.Duration
	if duration == 0 {
		duration = profile.DailyTimeAvailable
	}

	return &models.Workout{
		ID:          s.idFunc(),
		Name:        workoutName(day.Focus, p.Week, profile.FitnessLevel),
		Exercises:   selected,
		Duration:    duration,
		Difficulty:  profile.FitnessLevel,
		Type:        day.Focus,
		Description: workoutDescription(day.Focus),
		VoiceScript: voiceScript(day.Focus),
	}, nil
}

// mainSet resolves the day's main exercises. A catalog miss is tolerated: the
// exercise is omitted and the workout comes back shorter than planned.
func (s *ProgressionStrategy) mainSet(profile models.UserProfile, week int, focus string) []models.Exercise {
	var main []models.Exercise

	add := func(ex models.Exercise, ok bool) {
		if !ok {
			return
		}
		for _, existing := range main {
			if existing.ID == ex.ID {
				return
			}
		}
		main = append(main, ex)
	}
	addID := func(id string) {
		add(catalog.ByID(id))
	}
	addProgression := func(path string) {
		ex, ok := catalog.ByID(catalog.ProgressionExerciseID(path, week))
		if ok {
			ex = adjustReps(ex, profile.FitnessLevel)
		}
		add(ex, ok)
	}

	switch focus {
	case catalog.FocusFullBody:
		// Monday triplets: push + pull + squat + core
		addProgression("push")
		addProgression("pull")
		addProgression("squat")
		addID("core-plank")
	case catalog.FocusPushEmphasis:
		addProgression("push")
		addID("push-diamond")
		addID("explosive-push-up")
		addID("core-hollow-body")
	case catalog.FocusPullEmphasis:
		addProgression("pull")
		addID("pull-negative")
		addID("mobility-scapula-pushups")
	case catalog.FocusSquatEmphasis:
		addProgression("squat")
		addID("squat-deep")
		addID("squat-bulgarian-split")
	case catalog.FocusSkill:
		addID("explosive-push-up")
		addID("explosive-jump-squat")
		addProgression("push")
	case catalog.FocusActiveRecovery:
		addID("mobility-cat-cow")
		addID("mobility-scapula-pushups")
		addID("core-plank")
	default:
		addID("push-normal")
		addID("squat-bodyweight")
		addID("core-plank")
	}

	return main
}

func (s *ProgressionStrategy) restDay() *models.Workout {
	return &models.Workout{
		ID:         s.idFunc(),
		Name:       "Active Recovery Day",
		Exercises:  []models.Exercise{},
		Duration:   0,
		Difficulty: catalog.FocusRest,
		Type:       catalog.FocusRest,
		Description: "Complete rest day. Focus on sleep, hydration, and nutrition. " +
			"Your muscles grow during recovery, not just training!",
		VoiceScript: []string{
			"Today is your rest day, soldier!",
			"Recovery is not weakness - it's strategic preparation.",
			"Get 7-8 hours of sleep and stay hydrated.",
			"Tomorrow we return to battle stronger!",
		},
	}
}

func workoutName(focus string, week int, level string) string {
	base, ok := map[string]string{
		catalog.FocusFullBody:       "Full Body Domination",
		catalog.FocusPushEmphasis:   "Push Power Protocol",
		catalog.FocusPullEmphasis:   "Pull Strength Squadron",
		catalog.FocusSquatEmphasis:  "Leg Power Legion",
		catalog.FocusSkill:          "Elite Integration",
		catalog.FocusActiveRecovery: "Tactical Recovery",
	}[focus]
	if !ok {
		base = "Elite Training"
	}
	return fmt.Sprintf("Week %d - %s (%s)", week, base, strings.ToUpper(level))
}

var descriptions = map[string]string{
	catalog.FocusFullBody: "MONDAY MISSION: Full body triplets designed to build comprehensive strength. " +
		"4 rounds of push-pull-squat combinations with 2-minute strategic recovery. " +
		"This is your foundation day - make it count!",
	catalog.FocusPushEmphasis: "TUESDAY TARGET: Push emphasis training focused on building upper body pressing power. " +
		"Progressive overload toward one-arm push-up mastery. Every rep brings you closer to elite status!",
	catalog.FocusPullEmphasis: "WEDNESDAY WARFARE: Pull-focused session building back strength and grip endurance. " +
		"Systematic progression toward pull-up mastery. Your back muscles will become weapons!",
	catalog.FocusSquatEmphasis: "FRIDAY FORCE: Single-leg focused training building toward pistol squat mastery. " +
		"Balance, mobility, and strength combined into one elite movement pattern!",
	catalog.FocusSkill: "SATURDAY SKILLS: Integration day combining explosive power with technical precision. " +
		"This is where we forge the complete athlete - short, intense, maximum impact!",
	catalog.FocusActiveRecovery: "THURSDAY TACTICS: Strategic recovery with mobility work and light movement. " +
		"We're preparing your body for tomorrow's battles. Recovery is not rest - it's preparation!",
}

func workoutDescription(focus string) string {
	if d, ok := descriptions[focus]; ok {
		return d
	}
	return "Elite training session designed to push your limits and build real strength. No shortcuts, only results!"
}

var voiceScripts = map[string][]string{
	catalog.FocusFullBody: {
		"Listen up, soldier! Today we dominate all muscle groups!",
		"Four rounds of triplets - push, pull, squat. No mercy!",
		"This is where champions are forged. Let's move!",
		"2 minutes rest between rounds. Make every rep count!",
	},
	catalog.FocusPushEmphasis: {
		"Push day means push HARD! No weak reps allowed!",
		"We're building that chest and tricep strength today!",
		"Every push-up is a step closer to that one-arm goal!",
		"Feel the burn? That's weakness leaving your body!",
	},
	catalog.FocusPullEmphasis: {
		"Time to build that back strength, warrior!",
		"Pull-ups separate the strong from the weak!",
		"Grip that bar and show me what you're made of!",
		"Your lats will thank you later. Let's get it!",
	},
	catalog.FocusSquatEmphasis: {
		"Leg day is the foundation of all strength!",
		"Those pistol squats won't master themselves!",
		"Single leg strength - that's elite territory!",
		"Every squat builds unshakeable power!",
	},
	catalog.FocusSkill: {
		"Skills day! Time to put it all together!",
		"Explosive power meets technical precision!",
		"This is where we forge elite athletes!",
		"Short and intense - maximum impact!",
	},
	catalog.FocusActiveRecovery: {
		"Recovery is part of the process, soldier!",
		"Mobility work builds bulletproof movement!",
		"We're preparing the body for tomorrow's battle!",
		"Slow and controlled. Quality over speed!",
	},
}

func voiceScript(focus string) []string {
	if s, ok := voiceScripts[focus]; ok {
		return s
	}
	return []string{
		"Time to work, soldier!",
		"No excuses, only results!",
		"Push yourself beyond limits!",
		"Champions are made in moments like this!",
	}
}
