// ABOUTME: CLI commands for exercise history and personal bests.
// ABOUTME: History shows per-day detail; pb shows the all-time best set.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyChart bool
)

var historyCmd = &cobra.Command{
	Use:   "history <exercise>",
	Short: "Show per-day history for an exercise",
	Long: `Show per-day history for an exercise, newest first.

With --chart, show the per-day aggregates used for progress charts
(best weight/reps/distance/time, total volume, set count) instead of
individual sets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if historyChart {
			return printChartHistory(name)
		}

		def, err := store.GetExerciseByName(name)
		if err != nil {
			return fmt.Errorf("exercise not found: %s", name)
		}

		days, err := store.ExerciseHistoryWithSets(def.Name, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(days) == 0 {
			fmt.Printf("No history for %s.\n", def.Name)
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		for _, day := range days {
			bold.Printf("%s", day.Date.Format(models.DateFormat))
			fmt.Printf(" %s\n", faint.Sprintf("(%d sets)", len(day.Sets)))
			for i := range day.Sets {
				fmt.Printf("  %d. %s\n", i+1, describeSet(&day.Sets[i], def))
			}
		}
		return nil
	},
}

func printChartHistory(name string) error {
	end := time.Now()
	start := end.AddDate(-10, 0, 0) // all plausible history
	days, err := store.ExerciseHistoryForChart(name, start, end)
	if err != nil {
		return fmt.Errorf("failed to load chart history: %w", err)
	}
	if len(days) == 0 {
		fmt.Printf("No history for %s.\n", name)
		return nil
	}

	for _, d := range days {
		line := d.Date.Format(models.DateFormat)
		if d.BestWeight != nil {
			line += fmt.Sprintf("  weight %.4g", *d.BestWeight)
		}
		if d.BestReps != nil {
			line += fmt.Sprintf("  reps %d", *d.BestReps)
		}
		if d.BestDistance != nil {
			line += fmt.Sprintf("  distance %.4g", *d.BestDistance)
		}
		if d.BestTime != nil {
			line += fmt.Sprintf("  time %s", models.FormatSeconds(*d.BestTime))
		}
		if d.TotalVolume > 0 {
			line += fmt.Sprintf("  volume %.4g", d.TotalVolume)
		}
		line += fmt.Sprintf("  (%d sets)", d.SetCount)
		fmt.Println(line)
	}
	return nil
}

var pbCmd = &cobra.Command{
	Use:   "pb <exercise>",
	Short: "Show the personal best for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		def, err := store.GetExerciseByName(name)
		if err != nil {
			return fmt.Errorf("exercise not found: %s", name)
		}

		best, err := store.PersonalBestForExercise(def.Name, nil)
		if err != nil {
			return fmt.Errorf("failed to find personal best: %w", err)
		}
		if best == nil {
			fmt.Printf("No sets recorded for %s yet.\n", def.Name)
			return nil
		}

		color.Yellow("★ %s", def.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(best.ID.String()[:8]),
			describeSet(best, def))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "most recent N days (0 = all)")
	historyCmd.Flags().BoolVar(&historyChart, "chart", false, "show per-day chart aggregates")
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(pbCmd)
}
