package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/claude/caliq/internal/progress"
	"github.com/claude/caliq/internal/storage"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	progressUser   string
	progressPeriod string
	progressDBPath string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show training stats, streaks, and a 12-week heatmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(storage.BackendSQLite, progressDBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()
		if err := store.Migrate(); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}

		sessions, err := store.SessionsByUser(context.Background(), progressUser)
		if err != nil {
			return fmt.Errorf("loading sessions: %w", err)
		}

		stats := progress.Compute(sessions, progress.Period(progressPeriod), time.Now())

		bold := color.New(color.Bold).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		fmt.Printf("\n%s (%s)\n\n", bold("Training progress"), progressPeriod)
		fmt.Printf("  workouts:   %d\n", stats.TotalWorkouts)
		fmt.Printf("  minutes:    %d\n", stats.TotalMinutes)
		fmt.Printf("  avg length: %d min\n", stats.AverageDuration)
		fmt.Printf("  calories:   ~%d kcal\n", stats.EstimatedCalories)
		fmt.Printf("  streak:     %s\n", yellow(fmt.Sprintf("%d days (best %d)", stats.CurrentStreak, stats.PersonalBests.BestStreak)))
		fmt.Printf("  longest:    %d min\n", stats.PersonalBests.LongestWorkout)
		fmt.Println()

		// 12 weeks, one column per week, Monday on top.
		fmt.Println(bold("Last 12 weeks"))
		for row := 0; row < 7; row++ {
			fmt.Print("  ")
			for col := 0; col < 12; col++ {
				i := col*7 + row
				if i >= len(stats.Heatmap) {
					break
				}
				if stats.Heatmap[i].Count > 0 {
					fmt.Print(green("■ "))
				} else {
					fmt.Print("· ")
				}
			}
			fmt.Println()
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().StringVarP(&progressUser, "user", "u", "anonymous", "user ID")
	progressCmd.Flags().StringVarP(&progressPeriod, "period", "p", "week", "stats window (week, month, year)")
	progressCmd.Flags().StringVar(&progressDBPath, "db", os.Getenv("CALIQ_DB_PATH"), "SQLite database path")
}
