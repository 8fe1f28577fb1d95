// ABOUTME: CLI commands for viewing a day's workout and marked calendar dates.
// ABOUTME: The day view shows every entry with its sets, PBs starred.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	datesFrom string
	datesTo   string
)

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show everything logged on a date (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if len(args) == 1 {
			t, err := time.Parse(models.DateFormat, args[0])
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", args[0])
			}
			date = t
		}

		entries, err := store.EntriesForDate(date)
		if err != nil {
			return fmt.Errorf("failed to load day: %w", err)
		}
		if len(entries) == 0 {
			fmt.Printf("Nothing logged on %s.\n", date.Format(models.DateFormat))
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		for _, e := range entries {
			bold.Printf("%s", e.ExerciseName)
			fmt.Printf(" %s\n", faint.Sprintf("%s · %s", e.Category, e.Type.Label()))
			if len(e.Sets) == 0 {
				fmt.Println(faint.Sprint("  (no sets)"))
				continue
			}
			for i := range e.Sets {
				s := &e.Sets[i]
				def := &models.ExerciseDefinition{Unit: e.Unit}
				star := ""
				if s.IsPersonalBest {
					star = color.YellowString(" ★")
				}
				notes := ""
				if s.Notes != nil && *s.Notes != "" {
					notes = faint.Sprintf(" (%s)", truncate(*s.Notes, 30))
				}
				fmt.Printf("  %d. %s %s%s%s\n", i+1,
					faint.Sprint(s.ID.String()[:8]),
					describeSet(s, def), star, notes)
			}
		}
		return nil
	},
}

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List dates with logged workouts in a range",
	RunE: func(cmd *cobra.Command, args []string) error {
		end := time.Now()
		start := end.AddDate(0, -1, 0)
		if datesFrom != "" {
			t, err := time.Parse(models.DateFormat, datesFrom)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", datesFrom)
			}
			start = t
		}
		if datesTo != "" {
			t, err := time.Parse(models.DateFormat, datesTo)
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", datesTo)
			}
			end = t
		}

		dates, err := store.DatesWithEntries(start, end)
		if err != nil {
			return fmt.Errorf("failed to list dates: %w", err)
		}
		if len(dates) == 0 {
			fmt.Println("No workouts in range.")
			return nil
		}
		for _, d := range dates {
			fmt.Println(d.Format(models.DateFormat))
		}
		return nil
	},
}

func init() {
	datesCmd.Flags().StringVar(&datesFrom, "from", "", "range start (YYYY-MM-DD), default one month ago")
	datesCmd.Flags().StringVar(&datesTo, "to", "", "range end (YYYY-MM-DD), default today")
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(datesCmd)
}
