// ABOUTME: CLI commands for deleting logged sets and entries.
// ABOUTME: Accepts full UUIDs or unambiguous ID prefixes.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Delete logged data",
}

var rmSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Delete a single set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteSet(args[0]); err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}
		color.Green("✓ Deleted set %s", args[0])
		return nil
	},
}

var rmEntryCmd = &cobra.Command{
	Use:   "entry <id>",
	Short: "Delete a workout entry and all its sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteEntry(args[0]); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		color.Green("✓ Deleted entry %s (with its sets)", args[0])
		return nil
	},
}

func init() {
	rmCmd.AddCommand(rmSetCmd)
	rmCmd.AddCommand(rmEntryCmd)
	rootCmd.AddCommand(rmCmd)
}
