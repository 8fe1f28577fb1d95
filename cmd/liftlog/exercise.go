// ABOUTME: CLI commands for managing the exercise catalog.
// ABOUTME: Add, list, remove definitions, and list categories.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseAddDesc      string
	exerciseListCategory string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise catalog",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name> <category> <type> <unit>",
	Short: "Add an exercise definition",
	Long: `Add an exercise definition to the catalog.

The type decides which fields a set records:

  weight_reps, weight_distance, weight_time, weight_only,
  reps_only, reps_distance, reps_time,
  distance_only, distance_time,
  time_duration (hold: longer wins), time_speed (trial: shorter wins)

Examples:
  liftlog exercise add "Bench Press" Chest weight_reps kg
  liftlog exercise add "Plank" Core time_duration s --desc "Forearm plank"`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, category, typeStr, unit := args[0], args[1], args[2], args[3]

		if !models.IsValidExerciseType(typeStr) {
			return fmt.Errorf("unknown exercise type: %s", typeStr)
		}

		e := models.NewExerciseDefinition(name, category, models.ExerciseType(typeStr), unit)
		if exerciseAddDesc != "" {
			e.WithDescription(exerciseAddDesc)
		}

		if err := store.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		color.Green("✓ Added %s", name)
		fmt.Printf("  %s %s · %s · %s\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			category, e.Type.Label(), unit)
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercise definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var category *string
		if exerciseListCategory != "" {
			category = &exerciseListCategory
		}

		exercises, err := store.ListExercises(category)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			desc := ""
			if e.Description != nil && *e.Description != "" {
				desc = faint.Sprintf(" (%s)", truncate(*e.Description, 40))
			}
			fmt.Printf("%s %s %s %s [%s]%s\n",
				faint.Sprint(e.ID.String()[:8]),
				padRight(e.Name, 24),
				padRight(e.Category, 12),
				e.Type.Label(),
				e.Unit,
				desc)
		}
		return nil
	},
}

var exerciseRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an exercise and all its logged data",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteExercise(args[0]); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		color.Green("✓ Deleted exercise %s (with its entries and sets)", args[0])
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List distinct exercise categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := store.Categories()
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		if len(categories) == 0 {
			fmt.Println("No categories found.")
			return nil
		}
		fmt.Println(strings.Join(categories, "\n"))
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseAddDesc, "desc", "", "exercise description")
	exerciseListCmd.Flags().StringVarP(&exerciseListCategory, "category", "c", "", "filter by category")
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseRmCmd)
	exerciseCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(exerciseCmd)
}
