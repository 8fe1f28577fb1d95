// ABOUTME: Shared test fixtures for the storage package.
// ABOUTME: Every test runs against a real SQLite file in a temp dir.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/liftlog/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func mustCreateExercise(t *testing.T, db *DB, name, category string, typ models.ExerciseType, unit string) *models.ExerciseDefinition {
	t.Helper()
	e := models.NewExerciseDefinition(name, category, typ, unit)
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("failed to create exercise %s: %v", name, err)
	}
	return e
}

func mustCreateEntry(t *testing.T, db *DB, def *models.ExerciseDefinition, date string) *models.WorkoutEntry {
	t.Helper()
	day, err := time.Parse(models.DateFormat, date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	e := models.NewWorkoutEntry(def.ID, day)
	if err := db.CreateEntry(e); err != nil {
		t.Fatalf("failed to create entry for %s on %s: %v", def.Name, date, err)
	}
	return e
}

// loggedAtSeq hands out strictly increasing timestamps so set ordering is
// deterministic even when a test inserts faster than the clock ticks.
var loggedAtSeq = time.Now().UnixMilli()

func mustAddSet(t *testing.T, db *DB, entry *models.WorkoutEntry, build func(*models.Set)) *models.Set {
	t.Helper()
	s := models.NewSet(entry.ID)
	loggedAtSeq++
	s.LoggedAt = loggedAtSeq
	build(s)
	if err := db.AddSet(s); err != nil {
		t.Fatalf("failed to add set: %v", err)
	}
	return s
}
