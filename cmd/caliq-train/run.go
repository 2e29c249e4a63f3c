package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/claude/caliq/internal/generator"
	"github.com/claude/caliq/internal/models"
	"github.com/claude/caliq/internal/session"
	"github.com/claude/caliq/internal/storage"
	"github.com/claude/caliq/internal/voice"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	runLevel    string
	runDuration int
	runType     string
	runUser     string
	runDBPath   string
	runSpeakCmd string
	runNoVoice  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate today's workout and run it with a live timer",
	Long: `Generates a workout for today's training focus and drives it second by
second. While the session runs, single-letter commands control it:

  p  pause / resume
  s  skip to the next exercise
  r  restart the current exercise
  v  toggle voice cues
  q  quit without finishing`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runLevel, "level", "l", "beginner", "fitness level (beginner, intermediate, advanced)")
	runCmd.Flags().IntVarP(&runDuration, "duration", "d", 30, "target duration in minutes")
	runCmd.Flags().StringVarP(&runType, "type", "t", "", "workout type (strength, endurance, flexibility, mixed)")
	runCmd.Flags().StringVarP(&runUser, "user", "u", "anonymous", "user ID for history and progress")
	runCmd.Flags().StringVar(&runDBPath, "db", os.Getenv("CALIQ_DB_PATH"), "SQLite database path (default in-memory)")
	runCmd.Flags().StringVar(&runSpeakCmd, "speak-cmd", envOr("CALIQ_SPEAK_CMD", "espeak"), "text-to-speech command")
	runCmd.Flags().BoolVar(&runNoVoice, "no-voice", false, "disable voice cues")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runSession(cmd *cobra.Command, args []string) error {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	store, err := storage.Open(storage.BackendSQLite, runDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	ctx := context.Background()
	completed, err := store.SessionCount(ctx, runUser)
	if err != nil {
		completed = 0
	}

	gen := generator.New(generator.NewProgression(nil))
	workout, err := gen.Generate(models.GenerateRequest{
		UserProfile: &models.UserProfile{
			UserID:             runUser,
			Name:               runUser,
			FitnessLevel:       runLevel,
			Goals:              []string{"strength"},
			DailyTimeAvailable: runDuration,
		},
		WorkoutType: runType,
		Duration:    runDuration,
		IsWeekend:   isWeekend(time.Now()),
	}, generator.TrainingWeek(completed))
	if err != nil {
		return fmt.Errorf("generating workout: %w", err)
	}

	fmt.Printf("\n%s\n", bold(workout.Name))
	if workout.Description != "" {
		fmt.Println(workout.Description)
	}
	if len(workout.Exercises) == 0 {
		fmt.Println(yellow("Rest day. No exercises scheduled, enjoy the recovery."))
		return nil
	}
	fmt.Println()
	for i, ex := range workout.Exercises {
		fmt.Printf("  %d. %s  %s\n", i+1, ex.Name, cyan(fmt.Sprintf("%d x %d", ex.Sets, ex.Reps)))
	}
	fmt.Println()

	coach := voice.New(newSpeaker())
	if runNoVoice {
		coach.Toggle()
	}

	done := make(chan struct{})
	engine := session.NewEngine(workout, coach, session.WithOnComplete(func() {
		close(done)
	}))

	commands := make(chan string)
	go readCommands(commands)

	engine.Start()
	printExercise(engine, green)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	lastIndex := engine.State().ExerciseIndex
	for {
		select {
		case <-done:
			fmt.Println()
			fmt.Println(green("Workout complete!"))
			engine.Feedback(askFeedback(commands))
			record := session.NewRecorder(store, slog.Default()).Record(ctx, runUser, engine)
			fmt.Printf("Recorded %d minutes across %d exercises.\n", record.Duration, len(record.ExercisesCompleted))
			return nil

		case line, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			switch line {
			case "p":
				engine.Pause()
				if engine.State().Paused {
					fmt.Println(yellow("Paused."))
				} else {
					fmt.Println(yellow("Resumed."))
				}
			case "s":
				engine.Skip()
			case "r":
				engine.Restart()
				fmt.Println(yellow("Exercise restarted."))
			case "v":
				if coach.Toggle() {
					fmt.Println(yellow("Voice on."))
				} else {
					fmt.Println(yellow("Voice off."))
				}
			case "q":
				engine.Stop()
				fmt.Println(yellow("Session abandoned."))
				return nil
			}

		case <-ticker.C:
			engine.Tick()
			st := engine.State()
			if st.Phase == session.PhaseComplete {
				continue
			}
			if st.ExerciseIndex != lastIndex {
				lastIndex = st.ExerciseIndex
				printExercise(engine, green)
			}
			printTimer(st)
		}
	}
}

func printExercise(e *session.Engine, green func(...any) string) {
	if ex, ok := e.CurrentExercise(); ok {
		fmt.Printf("\n%s  %d sets of %d\n", green(ex.Name), ex.Sets, ex.Reps)
	}
}

func printTimer(st session.State) {
	label := "work"
	if st.Phase == session.PhaseRest {
		label = "rest"
	}
	fmt.Printf("\r  set %d  %s  %2ds remaining ", st.Set, label, st.TimeRemaining)
}

func newSpeaker() voice.Speaker {
	sp, err := newExecSpeaker(runSpeakCmd)
	if err != nil {
		return nil
	}
	return sp
}

// askFeedback reads the athlete's verdict after the final cue. A closed
// channel (stdin gone) or anything other than "n" counts as positive.
func askFeedback(commands <-chan string) string {
	if commands == nil {
		return "positive"
	}
	fmt.Print("Good session? (y/n): ")
	if line, ok := <-commands; ok && line == "n" {
		return "negative"
	}
	return "positive"
}

func readCommands(out chan<- string) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if line != "" {
			out <- line
		}
	}
	close(out)
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
