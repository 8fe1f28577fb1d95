// ABOUTME: CLI command for logging sets.
// ABOUTME: Finds or creates the day's entry and flags new personal bests.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	logDate     string
	logWeight   float64
	logReps     int
	logDistance float64
	logTime     float64
	logNotes    string
)

var logCmd = &cobra.Command{
	Use:   "log <exercise>",
	Short: "Log one set of an exercise",
	Long: `Log one set of an exercise. Pass only the flags the exercise's type
records; the store rejects sets that don't match the type's shape.

Examples:
  liftlog log "Bench Press" -w 100 -r 5
  liftlog log "Plank" -t 90
  liftlog log "Running" -d 5.2 -t 1560 --date 2026-08-30
  liftlog log "Pull Up" -r 12 --notes "strict form"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		date := time.Now()
		if logDate != "" {
			t, err := time.Parse(models.DateFormat, logDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", logDate)
			}
			date = t
		}

		def, err := store.GetExerciseByName(name)
		if err != nil {
			return fmt.Errorf("exercise not found: %s", name)
		}

		priorBest, err := store.PersonalBestForExercise(def.Name, nil)
		if err != nil {
			return fmt.Errorf("failed to check personal best: %w", err)
		}

		entry, err := store.FindEntry(def.ID, date)
		if err == storage.ErrNotFound {
			entry = models.NewWorkoutEntry(def.ID, date)
			if err := store.CreateEntry(entry); err != nil {
				return fmt.Errorf("failed to create entry: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to find entry: %w", err)
		}

		set := models.NewSet(entry.ID)
		if cmd.Flags().Changed("weight") {
			set.WithWeight(logWeight)
		}
		if cmd.Flags().Changed("reps") {
			set.WithReps(logReps)
		}
		if cmd.Flags().Changed("distance") {
			set.WithDistance(logDistance)
		}
		if cmd.Flags().Changed("time") {
			set.WithTime(logTime)
		}
		if logNotes != "" {
			set.WithNotes(logNotes)
		}

		if err := store.AddSet(set); err != nil {
			return fmt.Errorf("failed to log set: %w", err)
		}

		color.Green("✓ Logged %s", def.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(set.ID.String()[:8]),
			describeSet(set, def))
		if models.IsNewPersonalBest(set, priorBest, def.Type) {
			color.Yellow("  ★ new personal best")
		}
		return nil
	},
}

// describeSet renders the populated measurements of a set.
func describeSet(s *models.Set, def *models.ExerciseDefinition) string {
	out := ""
	if s.Weight != nil {
		out += fmt.Sprintf("%.4g %s ", *s.Weight, def.Unit)
	}
	if s.Reps != nil {
		out += fmt.Sprintf("× %d ", *s.Reps)
	}
	if s.Distance != nil {
		out += fmt.Sprintf("%.4g %s ", *s.Distance, def.Unit)
	}
	if s.TimeSeconds != nil {
		out += models.FormatSeconds(*s.TimeSeconds) + " "
	}
	if out == "" {
		return "(no measurements)"
	}
	return out[:len(out)-1]
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "calendar date (YYYY-MM-DD), defaults to today")
	logCmd.Flags().Float64VarP(&logWeight, "weight", "w", 0, "weight")
	logCmd.Flags().IntVarP(&logReps, "reps", "r", 0, "repetitions")
	logCmd.Flags().Float64VarP(&logDistance, "distance", "d", 0, "distance")
	logCmd.Flags().Float64VarP(&logTime, "time", "t", 0, "time in seconds")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the set")
	rootCmd.AddCommand(logCmd)
}
