// ABOUTME: Tests for CLI command wiring, flags, and output helpers.
// ABOUTME: Includes end-to-end runs against a store in a temp XDG tree.
package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/liftlog/internal/backup"
	"github.com/harperreed/liftlog/internal/models"
	"github.com/harperreed/liftlog/internal/storage"
)

// setupTestCLI points the XDG dirs at a temp tree so commands run against a
// throwaway store, and returns the store path commands will use.
func setupTestCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	return filepath.Join(dir, "data", "liftlog", "liftlog.db")
}

// execute runs the root command with args, capturing cobra's own output.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	// Flag and lifecycle vars are package globals; reset them so runs don't
	// bleed into each other.
	store, cfg = nil, nil
	logDate, logNotes = "", ""
	logWeight, logDistance, logTime = 0, 0, 0
	logReps = 0
	exerciseAddDesc, exerciseListCategory = "", ""
	exportOutput = ""
	importReplace = false
	historyLimit, historyChart = 10, false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "liftlog" {
		t.Errorf("root Use = %s, want liftlog", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("root command has no short description")
	}
}

func TestCommandRegistration(t *testing.T) {
	want := []string{
		"exercise", "log", "day", "dates", "history", "pb",
		"export", "import", "seed", "backup", "rm", "mcp", "version",
	}
	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestExerciseAliases(t *testing.T) {
	if len(exerciseCmd.Aliases) == 0 || exerciseCmd.Aliases[0] != "ex" {
		t.Errorf("exercise aliases = %v, want [ex]", exerciseCmd.Aliases)
	}
	if len(exerciseListCmd.Aliases) == 0 || exerciseListCmd.Aliases[0] != "ls" {
		t.Errorf("exercise list aliases = %v, want [ls]", exerciseListCmd.Aliases)
	}
}

func TestLogFlags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"date", ""},
		{"weight", "w"},
		{"reps", "r"},
		{"distance", "d"},
		{"time", "t"},
		{"notes", ""},
	}
	for _, tt := range tests {
		f := logCmd.Flags().Lookup(tt.name)
		if f == nil {
			t.Errorf("log has no --%s flag", tt.name)
			continue
		}
		if f.Shorthand != tt.shorthand {
			t.Errorf("--%s shorthand = %q, want %q", tt.name, f.Shorthand, tt.shorthand)
		}
	}
}

func TestHistoryFlags(t *testing.T) {
	limit := historyCmd.Flags().Lookup("limit")
	if limit == nil || limit.Shorthand != "n" || limit.DefValue != "10" {
		t.Errorf("history --limit flag = %+v, want shorthand n default 10", limit)
	}
	if historyCmd.Flags().Lookup("chart") == nil {
		t.Error("history has no --chart flag")
	}
}

func TestExportAndImportFlags(t *testing.T) {
	wantFormats := []string{"csv", "json", "yaml"}
	if len(exportCmd.ValidArgs) != len(wantFormats) {
		t.Fatalf("export ValidArgs = %v, want %v", exportCmd.ValidArgs, wantFormats)
	}
	for i, f := range wantFormats {
		if exportCmd.ValidArgs[i] != f {
			t.Errorf("export ValidArgs[%d] = %s, want %s", i, exportCmd.ValidArgs[i], f)
		}
	}
	if exportCmd.Flags().Lookup("output") == nil {
		t.Error("export has no --output flag")
	}
	if importCmd.Flags().Lookup("replace") == nil {
		t.Error("import has no --replace flag")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is a long description", 10, "this is..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Errorf("padRight left long string = %q", got)
	}
}

func TestDescribeSet(t *testing.T) {
	def := models.NewExerciseDefinition("Bench Press", "Chest", "weight_reps", "kg")

	s := models.NewSet(def.ID).WithWeight(100).WithReps(5)
	if got := describeSet(s, def); got != "100 kg × 5" {
		t.Errorf("describeSet = %q", got)
	}

	hold := models.NewSet(def.ID).WithTime(90)
	if got := describeSet(hold, def); got != "1:30" {
		t.Errorf("describeSet hold = %q", got)
	}

	empty := models.NewSet(def.ID)
	if got := describeSet(empty, def); got != "(no measurements)" {
		t.Errorf("describeSet empty = %q", got)
	}
}

func TestSeedThenLogEndToEnd(t *testing.T) {
	dbPath := setupTestCLI(t)

	if err := execute(t, "seed"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := execute(t, "log", "Bench Press", "-w", "100", "-r", "5"); err != nil {
		t.Fatalf("log: %v", err)
	}

	// The lifecycle hooks closed the store; reopen and verify the set landed.
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer db.Close()

	best, err := db.PersonalBestForExercise("Bench Press", nil)
	if err != nil {
		t.Fatalf("personal best: %v", err)
	}
	if best == nil || best.Weight == nil || *best.Weight != 100 {
		t.Errorf("logged set not found, best = %+v", best)
	}
}

func TestLogUnknownExercise(t *testing.T) {
	setupTestCLI(t)

	err := execute(t, "log", "Nonexistent", "-w", "50")
	if err == nil {
		t.Fatal("logging an unknown exercise succeeded")
	}
}

func TestRestoreRunsWithoutOpeningStore(t *testing.T) {
	dbPath := setupTestCLI(t)

	// Restore must not open (and thereby create) the store: root.go skips
	// the store lifecycle for it so the file can be replaced safely.
	err := execute(t, "backup", "restore", filepath.Join(t.TempDir(), "missing.db"))
	if !errors.Is(err, backup.ErrSourceMissing) {
		t.Errorf("error = %v, want ErrSourceMissing", err)
	}
	if _, statErr := os.Stat(dbPath); !os.IsNotExist(statErr) {
		t.Errorf("restore created a store file at %s", dbPath)
	}
}

func TestRestoreEndToEnd(t *testing.T) {
	dbPath := setupTestCLI(t)

	if err := execute(t, "seed"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := execute(t, "backup", "create"); err != nil {
		t.Fatalf("backup create: %v", err)
	}

	backupDir := filepath.Join(filepath.Dir(dbPath), "backups")
	entries, err := os.ReadDir(backupDir)
	if err != nil || len(entries) == 0 {
		t.Fatalf("no backup written: %v", err)
	}
	backupFile := filepath.Join(backupDir, entries[0].Name())

	if err := execute(t, "exercise", "add", "Sled Push", "Legs", "weight_distance", "m"); err != nil {
		t.Fatalf("exercise add: %v", err)
	}
	if err := execute(t, "backup", "restore", backupFile); err != nil {
		t.Fatalf("restore: %v", err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer db.Close()

	if _, err := db.GetExerciseByName("Bench Press"); err != nil {
		t.Errorf("seeded catalog missing after restore: %v", err)
	}
	if _, err := db.GetExerciseByName("Sled Push"); err == nil {
		t.Error("post-backup exercise survived restore")
	}
}
