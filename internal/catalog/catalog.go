// Package catalog holds the static exercise table and the weekly progression
// schedule. Everything here is defined at process start and never mutated;
// callers that need to adjust an exercise must copy it first.
package catalog

import "github.com/claude/caliq/internal/models"

var exercises = []models.Exercise{
	// Push progression (one-arm push-up path)
	{
		ID:       "push-normal",
		Name:     "Normal Push-Ups",
		Type:     models.TypeStrength,
		Reps:     12,
		Sets:     3,
		RestTime: 60,
		Instructions: []string{
			"Start in plank position, hands shoulder-width apart",
			"Lower chest to floor with controlled 2-second descent",
			"Push up explosively in 1 second",
			"Maintain straight line from head to heels",
		},
		FormTips: []string{
			"Keep core tight throughout movement",
			"Don't let hips sag or pike up",
			"Full range of motion - chest touches floor",
			"2-0-1-0 tempo for strength gains",
		},
		Difficulty:   models.LevelBeginner,
		MuscleGroups: []string{"chest", "shoulders", "triceps", "core"},
	},
	{
		ID:       "push-diamond",
		Name:     "Diamond Push-Ups",
		Type:     models.TypeStrength,
		Reps:     8,
		Sets:     3,
		RestTime: 90,
		Instructions: []string{
			"Form diamond shape with thumbs and forefingers",
			"Position hands under chest center",
			"Lower with control, keeping elbows close to body",
			"Push up with explosive power",
		},
		FormTips: []string{
			"Keep diamond tight under chest",
			"Don't let elbows flare wide",
			"More tricep focus than regular push-ups",
			"Master regular push-ups first",
		},
		Difficulty:   models.LevelIntermediate,
		MuscleGroups: []string{"triceps", "chest", "shoulders"},
	},
	{
		ID:       "push-archer",
		Name:     "Archer Push-Ups",
		Type:     models.TypeStrength,
		Reps:     4,
		Sets:     4,
		RestTime: 120,
		Instructions: []string{
			"Start wide grip, shift weight to one arm",
			"Lower while extending opposite arm straight",
			"Push up using working arm primarily",
			"Alternate sides or complete all reps one side",
		},
		FormTips: []string{
			"Supporting arm stays straight like an archer's bow",
			"Working arm does 80% of the work",
			"Progress slowly - very demanding exercise",
			"Record yourself to check form",
		},
		Difficulty:   models.LevelAdvanced,
		MuscleGroups: []string{"chest", "shoulders", "triceps", "core"},
	},
	{
		ID:       "push-one-arm",
		Name:     "One-Arm Push-Up",
		Type:     models.TypeStrength,
		Reps:     1,
		Sets:     5,
		RestTime: 180,
		Instructions: []string{
			"Position working hand under chest center",
			"Spread legs wide for stability",
			"Keep non-working arm behind back",
			"Lower with perfect control, push up with full power",
		},
		FormTips: []string{
			"Takes 8-12 weeks to achieve first rep",
			"Practice negatives first (4-5 second descents)",
			"Keep core rock solid - no twisting",
			"Master archer push-ups before attempting",
		},
		Difficulty:   models.LevelAdvanced,
		MuscleGroups: []string{"chest", "shoulders", "triceps", "core"},
	},

	// Pull progression (pull-up path)
	{
		ID:       "pull-australian",
		Name:     "Australian Pull-Ups",
		Type:     models.TypeStrength,
		Reps:     10,
		Sets:     4,
		RestTime: 60,
		Instructions: []string{
			"Hang under bar with feet on ground",
			"Body straight from head to heels",
			"Pull chest to bar, squeeze shoulder blades",
			"Lower with control",
		},
		FormTips: []string{
			"Higher bar = easier, lower = harder",
			"Keep body rigid like a plank",
			"Pull with back muscles, not just arms",
			"Perfect for building pull-up strength",
		},
		Difficulty:   models.LevelBeginner,
		MuscleGroups: []string{"back", "biceps", "rear delts"},
		Equipment:    []string{"pull-up bar", "low bar"},
	},
	{
		ID:       "pull-negative",
		Name:     "Negative Pull-Ups",
		Type:     models.TypeStrength,
		Reps:     5,
		Sets:     3,
		RestTime: 90,
		Instructions: []string{
			"Jump or step up to chin-over-bar position",
			"Lower yourself very slowly (5 seconds minimum)",
			"Focus on control throughout entire descent",
			"Step down and repeat",
		},
		FormTips: []string{
			"5-second descent minimum for strength gains",
			"Don't drop - control the entire movement",
			"This builds the strength for full pull-ups",
			"Most important pull-up progression exercise",
		},
		Difficulty:   models.LevelIntermediate,
		MuscleGroups: []string{"back", "biceps", "forearms"},
		Equipment:    []string{"pull-up bar"},
	},
	{
		ID:       "pull-assisted",
		Name:     "Band Assisted Pull-Ups",
		Type:     models.TypeStrength,
		Reps:     8,
		Sets:     4,
		RestTime: 90,
		Instructions: []string{
			"Loop resistance band around bar and under feet",
			"Hang with arms fully extended",
			"Pull up until chin clears bar",
			"Lower with control to full hang",
		},
		FormTips: []string{
			"Band provides help at bottom, less at top",
			"Focus on pulling with back, not arms",
			"Use progressively thinner bands",
			"Bridge between negatives and full pull-ups",
		},
		Difficulty:   models.LevelIntermediate,
		MuscleGroups: []string{"back", "biceps", "rear delts"},
		Equipment:    []string{"pull-up bar", "resistance band"},
	},
	{
		ID:       "pull-full",
		Name:     "Pull-Ups",
		Type:     models.TypeStrength,
		Reps:     5,
		Sets:     3,
		RestTime: 120,
		Instructions: []string{
			"Hang from bar with arms fully extended",
			"Pull body up until chin clears bar",
			"Lower with control to full hang",
			"No swinging or kipping",
		},
		FormTips: []string{
			"Dead hang start and finish",
			"Pull with back, squeeze shoulder blades",
			"Chin must clear bar completely",
			"Quality over quantity - perfect form",
		},
		Difficulty:   models.LevelAdvanced,
		MuscleGroups: []string{"back", "biceps", "core"},
		Equipment:    []string{"pull-up bar"},
	},

	// Squat progression (pistol squat path)
	{
		ID:       "squat-bodyweight",
		Name:     "Bodyweight Squats",
		Type:     models.TypeStrength,
		Reps:     20,
		Sets:     3,
		RestTime: 45,
		Instructions: []string{
			"Stand with feet shoulder-width apart",
			"Lower as if sitting in invisible chair",
			"Keep chest up, knees track over toes",
			"Drive through heels to stand",
		},
		FormTips: []string{
			"Go as low as comfortable with good form",
			"Don't let knees cave inward",
			"Weight on heels, not toes",
			"Core engaged throughout movement",
		},
		Difficulty:   models.LevelBeginner,
		MuscleGroups: []string{"quads", "glutes", "hamstrings"},
	},
	{
		ID:       "squat-deep",
		Name:     "Deep Squats",
		Type:     models.TypeStrength,
		Reps:     15,
		Sets:     4,
		RestTime: 60,
		Instructions: []string{
			"Squat down as low as possible",
			"Aim for hamstrings to calves",
			"Hold bottom position briefly",
			"Stand up with control",
		},
		FormTips: []string{
			"Work on ankle mobility daily",
			"Heels stay flat on ground",
			"Deep squats prepare for pistol squats",
			"Quality depth over quantity",
		},
		Difficulty:   models.LevelIntermediate,
		MuscleGroups: []string{"quads", "glutes", "calves"},
	},
	{
		ID:       "squat-bulgarian-split",
		Name:     "Bulgarian Split Squats",
		Type:     models.TypeStrength,
		Reps:     8,
		Sets:     3,
		RestTime: 60,
		Instructions: []string{
			"Place rear foot on elevated surface",
			"Lower into lunge position",
			"Drive through front heel to return",
			"Complete all reps before switching legs",
		},
		FormTips: []string{
			"Most weight on front leg",
			"Don't push off back foot",
			"Builds single-leg strength for pistols",
			"Keep torso upright",
		},
		Difficulty:   models.LevelIntermediate,
		MuscleGroups: []string{"quads", "glutes", "hamstrings"},
		Equipment:    []string{"bench", "chair"},
	},
	{
		ID:       "squat-box-pistol",
		Name:     "Box Pistol Squats",
		Type:     models.TypeStrength,
		Reps:     5,
		Sets:     3,
		RestTime: 90,
		Instructions: []string{
			"Stand on box with one leg hanging off",
			"Extend hanging leg forward",
			"Lower until touching box lightly",
			"Drive up through standing leg",
		},
		FormTips: []string{
			"Box limits depth - builds confidence",
			"Extended leg stays straight",
			"Don't rely on box - just light touch",
			"Progress to lower boxes over time",
		},
		Difficulty:   models.LevelAdvanced,
		MuscleGroups: []string{"quads", "glutes", "core"},
		Equipment:    []string{"box", "platform"},
	},
	{
		ID:       "squat-pistol",
		Name:     "Pistol Squats",
		Type:     models.TypeStrength,
		Reps:     3,
		Sets:     5,
		RestTime: 120,
		Instructions: []string{
			"Stand on one leg, other leg extended forward",
			"Lower down keeping extended leg off ground",
			"Go as low as possible with control",
			"Drive up through heel to standing",
		},
		FormTips: []string{
			"Ultimate single-leg strength exercise",
			"Requires mobility, balance, and strength",
			"Takes months to master - be patient",
			"Practice balance work separately",
		},
		Difficulty:   models.LevelAdvanced,
		MuscleGroups: []string{"quads", "glutes", "core", "calves"},
	},

	// Core & stability
	{
		ID:       "core-plank",
		Name:     "Plank Hold",
		Type:     models.TypeStrength,
		Duration: 60,
		Sets:     3,
		RestTime: 30,
		Instructions: []string{
			"Start in push-up position",
			"Hold body in perfect straight line",
			"Breathe normally while maintaining position",
			"Don't let hips sag or pike up",
		},
		FormTips: []string{
			"Engage entire core, not just abs",
			"Keep shoulders over elbows",
			"Quality over time - perfect form first",
			"Build to 60+ seconds for strength gains",
		},
		Difficulty:   models.LevelBeginner,
		MuscleGroups: []string{"core", "shoulders"},
	},
	{
		ID:       "core-hollow-body",
		Name:     "Hollow Body Hold",
		Type:     models.TypeStrength,
		Duration: 30,
		Sets:     3,
		RestTime: 30,
		Instructions: []string{
			"Lie on back, press lower back to floor",
			"Lift shoulders and legs off ground",
			"Form a 'hollow' or banana shape",
			"Hold position while breathing",
		},
		FormTips: []string{
			"Lower back stays glued to floor",
			"The more you 'hollow' the harder it gets",
			"Essential for advanced calisthenics",
			"Start with knees bent if needed",
		},
		Difficulty:   models.LevelIntermediate,
		MuscleGroups: []string{"core", "hip flexors"},
	},

	// Dynamic & explosive
	{
		ID:       "explosive-push-up",
		Name:     "Explosive Push-Ups",
		Type:     models.TypeStrength,
		Reps:     6,
		Sets:     3,
		RestTime: 90,
		Instructions: []string{
			"Start in regular push-up position",
			"Lower with control",
			"Explode up with maximum force",
			"Hands may leave ground at top",
		},
		FormTips: []string{
			"Focus on explosive upward movement",
			"Land softly if hands leave ground",
			"Builds power for advanced moves",
			"Quality explosive movement over speed",
		},
		Difficulty:   models.LevelIntermediate,
		MuscleGroups: []string{"chest", "shoulders", "triceps"},
	},
	{
		ID:       "explosive-jump-squat",
		Name:     "Jump Squats",
		Type:     models.TypeEndurance,
		Reps:     10,
		Sets:     3,
		RestTime: 45,
		Instructions: []string{
			"Start in squat position",
			"Jump up with maximum effort",
			"Land softly and immediately squat again",
			"Maintain rhythm and power",
		},
		FormTips: []string{
			"Land soft - absorb impact",
			"Keep knees aligned over toes",
			"Jump for height, not just speed",
			"Builds explosive leg power",
		},
		Difficulty:   models.LevelIntermediate,
		MuscleGroups: []string{"quads", "glutes", "calves"},
	},

	// Warm-up & mobility
	{
		ID:       "warmup-arm-circles",
		Name:     "Arm Circles",
		Type:     models.TypeWarmup,
		Duration: 30,
		Sets:     1,
		Instructions: []string{
			"Extend arms parallel to ground",
			"Make small circles, gradually increase size",
			"Switch directions after 15 seconds",
			"Keep shoulders relaxed",
		},
		FormTips: []string{
			"Start small, build to large circles",
			"Both directions equally",
			"Prepares shoulders for training",
			"Part of every warm-up routine",
		},
		Difficulty:   models.LevelBeginner,
		MuscleGroups: []string{"shoulders"},
	},
	{
		ID:       "warmup-jumping-jacks",
		Name:     "Jumping Jacks",
		Type:     models.TypeWarmup,
		Duration: 60,
		Sets:     1,
		Instructions: []string{
			"Start standing with feet together",
			"Jump while spreading legs and raising arms",
			"Jump back to starting position",
			"Maintain steady rhythm",
		},
		FormTips: []string{
			"Land softly on balls of feet",
			"Keep core engaged",
			"Raises heart rate for training",
			"Classic warm-up movement",
		},
		Difficulty:   models.LevelBeginner,
		MuscleGroups: []string{"cardio"},
	},
	{
		ID:       "mobility-cat-cow",
		Name:     "Cat-Cow Stretch",
		Type:     models.TypeMobility,
		Duration: 60,
		Sets:     1,
		Instructions: []string{
			"Start on hands and knees",
			"Arch back and look up (cow)",
			"Round back and look down (cat)",
			"Flow smoothly between positions",
		},
		FormTips: []string{
			"Move slowly and controlled",
			"Feel the stretch through entire spine",
			"Essential for spine health",
			"Do before every workout",
		},
		Difficulty:   models.LevelBeginner,
		MuscleGroups: []string{"spine", "core"},
	},
	{
		ID:       "mobility-scapula-pushups",
		Name:     "Scapula Push-Ups",
		Type:     models.TypeMobility,
		Reps:     10,
		Sets:     2,
		RestTime: 30,
		Instructions: []string{
			"Start in push-up position",
			"Keep arms straight throughout",
			"Push shoulder blades apart and together",
			"Focus on scapular movement only",
		},
		FormTips: []string{
			"Arms stay locked - no elbow bending",
			"Movement comes from shoulder blades",
			"Activates muscles for push-ups",
			"Improves shoulder health",
		},
		Difficulty:   models.LevelBeginner,
		MuscleGroups: []string{"shoulders", "back"},
	},
}

// All returns every catalog exercise in catalog order. The slice is a copy;
// callers may reorder or rescale entries freely.
func All() []models.Exercise {
	out := make([]models.Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// ByID looks up an exercise by its catalog id.
func ByID(id string) (models.Exercise, bool) {
	for _, ex := range exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// ByDifficulty returns all exercises at the given difficulty, in catalog order.
func ByDifficulty(difficulty string) []models.Exercise {
	var out []models.Exercise
	for _, ex := range exercises {
		if ex.Difficulty == difficulty {
			out = append(out, ex)
		}
	}
	return out
}

// ByType returns all exercises with the given category tag, in catalog order.
func ByType(typ string) []models.Exercise {
	var out []models.Exercise
	for _, ex := range exercises {
		if ex.Type == typ {
			out = append(out, ex)
		}
	}
	return out
}

// Warmups returns exercises suitable as a warm-up prefix (warmup or mobility
// tagged), in catalog order.
func Warmups() []models.Exercise {
	var out []models.Exercise
	for _, ex := range exercises {
		if ex.Type == models.TypeWarmup || ex.Type == models.TypeMobility {
			out = append(out, ex)
		}
	}
	return out
}
