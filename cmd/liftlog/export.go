// ABOUTME: CLI commands for exporting and importing logged data.
// ABOUTME: Supports CSV, JSON, and YAML export; JSON catalog import; seeding.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput  string
	importReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export logged data",
	Long: `Export logged data in various formats.

FORMATS:

  csv        One row per set, spreadsheet-ready
  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)

EXAMPLES:

  liftlog export csv -o workouts.csv
  liftlog export json                       # Print to stdout
  liftlog export yaml -o workouts.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error
		switch format {
		case "csv":
			data, err = store.ExportCSV()
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use csv, json, or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		color.Green("✓ Exported %s to %s (%d bytes)", format, exportOutput, len(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-import exercise definitions from a JSON file",
	Long: `Bulk-import exercise definitions from a JSON file: a flat array of
{name, category, type, unit, description?} objects.

The default merge mode keeps existing definitions and skips incoming names
that already exist (compared case-insensitively). With --replace, all
definitions (and their logged data) are wiped and the batch reinserted in a
single transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		records, err := storage.ParseDefinitionRecords(raw)
		if err != nil {
			return err
		}

		mode := storage.ImportMerge
		if importReplace {
			mode = storage.ImportReplace
		}

		summary, err := store.ImportDefinitions(records, mode)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Import complete")
		fmt.Printf("  added %d, skipped %d, failed %d\n",
			summary.Added, summary.Skipped, summary.Failed)
		for _, name := range summary.Existing {
			fmt.Printf("  already existing: %s\n", name)
		}
		for _, e := range summary.Errors {
			color.Red("  ✗ %s", e)
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in starter exercise catalog",
	Long: `Load the built-in starter exercise catalog. Seeding is idempotent:
names that already exist are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := store.SeedStarterCatalog()
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		color.Green("✓ Seeded starter catalog")
		fmt.Printf("  added %d, already present %d\n", summary.Added, summary.Skipped)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "wipe and reinsert instead of merging")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
}
