// ABOUTME: CLI commands for backing up and restoring the store file.
// ABOUTME: Restore runs without an open store and keeps a safety copy.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/liftlog/internal/backup"
	"github.com/harperreed/liftlog/internal/config"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up or restore the store file",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the store to a timestamped backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := backup.NewManager(cfg.DBPath(), cfg.BackupDir())
		info, err := mgr.Create(store)
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		color.Green("✓ Backup created")
		fmt.Printf("  %s (%d bytes)\n", info.Path, info.Size)
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the store with a backup file",
	Long: `Replace the store with a backup file.

The candidate is validated (it must exist and look like a SQLite database)
before anything is touched. The current store is copied to a timestamped
safety location first; the replacement itself is atomic.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The store is not opened for this command (see root.go); load the
		// config here to find the store path.
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		mgr := backup.NewManager(c.DBPath(), c.BackupDir())
		safetyCopy, err := mgr.Restore(args[0])
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		color.Green("✓ Store restored from %s", args[0])
		if safetyCopy != "" {
			fmt.Printf("  previous store saved to %s\n", safetyCopy)
		}
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}
