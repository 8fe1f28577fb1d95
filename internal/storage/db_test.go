// ABOUTME: Tests for store lifecycle and the single-writer contract.
// ABOUTME: A mutation arriving during another mutation fails with ErrStoreBusy.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/liftlog/internal/models"
)

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "liftlog.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file missing: %v", err)
	}
	if db.Path() != path {
		t.Errorf("path = %s, want %s", db.Path(), path)
	}
}

func TestConcurrentWriteRejected(t *testing.T) {
	db := setupTestDB(t)

	// Hold the write lock as an in-flight mutation would.
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	e := models.NewExerciseDefinition("Squat", "Legs", "weight_reps", "kg")
	if err := db.CreateExercise(e); !errors.Is(err, ErrStoreBusy) {
		t.Errorf("overlapping write error = %v, want ErrStoreBusy", err)
	}
}

func TestCascadeAcrossPooledConnections(t *testing.T) {
	db := setupTestDB(t)

	// Force every statement onto a fresh pool connection. foreign_keys is a
	// per-connection setting; the cascades must hold on all of them.
	db.db.SetMaxIdleConns(0)

	def := mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")
	entry := mustCreateEntry(t, db, def, "2026-08-30")
	mustAddSet(t, db, entry, func(s *models.Set) { s.WithWeight(100).WithReps(5) })

	if err := db.DeleteExercise(def.ID.String()); err != nil {
		t.Fatalf("delete exercise: %v", err)
	}

	var entries, sets int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM workout_entries`).Scan(&entries); err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM sets`).Scan(&sets); err != nil {
		t.Fatalf("count sets: %v", err)
	}
	if entries != 0 || sets != 0 {
		t.Errorf("orphans after cascade: %d entries, %d sets", entries, sets)
	}
}

func TestReadsUnaffectedByWriteLock(t *testing.T) {
	db := setupTestDB(t)
	mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")

	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	// Reads don't take the write lock.
	if _, err := db.GetExerciseByName("Squat"); err != nil {
		t.Errorf("read failed under write lock: %v", err)
	}
	if _, err := db.ListExercises(nil); err != nil {
		t.Errorf("list failed under write lock: %v", err)
	}
}
