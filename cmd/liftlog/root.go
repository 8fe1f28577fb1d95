// ABOUTME: Root Cobra command for liftlog CLI.
// ABOUTME: Handles store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/liftlog/internal/config"
	"github.com/harperreed/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	store *storage.DB
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Personal workout log",
	Long: `Liftlog is a CLI tool for logging workouts and tracking progress.

QUICK START:

  $ liftlog seed                               # Load the starter exercise catalog
  $ liftlog log "Bench Press" -w 100 -r 5      # Log a set (today)
  $ liftlog day                                # Show today's workout
  $ liftlog pb "Bench Press"                   # Show your personal best
  $ liftlog history "Bench Press"              # Per-day history

EXERCISES:

  Every exercise has a type describing what it measures: weight_reps,
  weight_distance, weight_time, weight_only, reps_only, reps_distance,
  reps_time, distance_only, distance_time, time_duration (holds: longer
  wins), time_speed (trials: shorter wins).

  $ liftlog exercise add "Plank" Core time_duration s
  $ liftlog exercise list --category Core

BACKUP & EXPORT:

  $ liftlog backup create                  # Snapshot the store file
  $ liftlog backup restore backup.db       # Replace the store (safety copy kept)
  $ liftlog export csv -o workouts.csv     # One row per set, spreadsheet-ready

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants.

DATA STORAGE:

  A single SQLite file at ~/.local/share/liftlog/liftlog.db.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Restore replaces the store file; it must not hold it open.
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "restore" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
