// ABOUTME: Tests for exercise definition CRUD, ID-prefix resolution, and
// ABOUTME: the cascade that removes entries and sets with their definition.
package storage

import (
	"errors"
	"testing"

	"github.com/harperreed/liftlog/internal/models"
)

func TestCreateAndGetExercise(t *testing.T) {
	db := setupTestDB(t)

	def := mustCreateExercise(t, db, "Bench Press", "Chest", "weight_reps", "kg")

	got, err := db.GetExercise(def.ID.String())
	if err != nil {
		t.Fatalf("get by full ID: %v", err)
	}
	if got.Name != "Bench Press" || got.Category != "Chest" || got.Unit != "kg" {
		t.Errorf("got %+v", got)
	}
	if got.Type != "weight_reps" {
		t.Errorf("type = %s, want weight_reps", got.Type)
	}
	if got.Description != nil {
		t.Errorf("description = %v, want nil", got.Description)
	}
}

func TestCreateExerciseRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)

	e := mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")
	e.Type = "cardio"
	if err := db.UpdateExercise(e); err == nil {
		t.Error("expected error updating to invalid type")
	}

	bad := *e
	bad.Name = ""
	bad.Type = "weight_reps"
	if err := db.CreateExercise(&bad); err == nil {
		t.Error("expected error creating nameless exercise")
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	db := setupTestDB(t)

	mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")
	dup := mustCreateExercise(t, db, "Front Squat", "Legs", "weight_reps", "kg")
	dup.Name = "Squat"
	if err := db.UpdateExercise(dup); err == nil {
		t.Error("expected unique-name violation on update")
	}
}

func TestGetExerciseByPrefix(t *testing.T) {
	db := setupTestDB(t)

	def := mustCreateExercise(t, db, "Deadlift", "Back", "weight_reps", "kg")

	got, err := db.GetExercise(def.ID.String()[:8])
	if err != nil {
		t.Fatalf("get by prefix: %v", err)
	}
	if got.ID != def.ID {
		t.Errorf("resolved %s, want %s", got.ID, def.ID)
	}

	if _, err := db.GetExercise("zzzzzzzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown prefix error = %v, want ErrNotFound", err)
	}
}

func TestFindExerciseFold(t *testing.T) {
	db := setupTestDB(t)

	def := mustCreateExercise(t, db, "Squats", "Legs", "weight_reps", "kg")

	got, err := db.FindExerciseFold("sQuAtS")
	if err != nil {
		t.Fatalf("fold lookup: %v", err)
	}
	if got.ID != def.ID {
		t.Errorf("resolved %s, want %s", got.ID, def.ID)
	}

	if _, err := db.FindExerciseFold("Lunges"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown name error = %v, want ErrNotFound", err)
	}
}

func TestListExercisesOrderedAndFiltered(t *testing.T) {
	db := setupTestDB(t)

	mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")
	mustCreateExercise(t, db, "Bench Press", "Chest", "weight_reps", "kg")
	mustCreateExercise(t, db, "Lunge", "Legs", "reps_only", "reps")

	all, err := db.ListExercises(nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].Name != "Bench Press" || all[1].Name != "Lunge" || all[2].Name != "Squat" {
		t.Errorf("order = %s, %s, %s", all[0].Name, all[1].Name, all[2].Name)
	}

	legs := "Legs"
	filtered, err := db.ListExercises(&legs)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered len = %d, want 2", len(filtered))
	}
}

func TestCategories(t *testing.T) {
	db := setupTestDB(t)

	mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")
	mustCreateExercise(t, db, "Lunge", "Legs", "reps_only", "reps")
	mustCreateExercise(t, db, "Bench Press", "Chest", "weight_reps", "kg")

	cats, err := db.Categories()
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != 2 || cats[0] != "Chest" || cats[1] != "Legs" {
		t.Errorf("categories = %v, want [Chest Legs]", cats)
	}
}

func TestDeleteExerciseCascades(t *testing.T) {
	db := setupTestDB(t)

	def := mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")
	other := mustCreateExercise(t, db, "Bench Press", "Chest", "weight_reps", "kg")

	e1 := mustCreateEntry(t, db, def, "2026-08-29")
	e2 := mustCreateEntry(t, db, def, "2026-08-30")
	keep := mustCreateEntry(t, db, other, "2026-08-30")

	mustAddSet(t, db, e1, func(s *models.Set) { s.WithWeight(100).WithReps(5) })
	mustAddSet(t, db, e2, func(s *models.Set) { s.WithWeight(105).WithReps(3) })
	kept := mustAddSet(t, db, keep, func(s *models.Set) { s.WithWeight(80).WithReps(8) })

	if err := db.DeleteExercise(def.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := db.GetExercise(def.ID.String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("definition survived delete: %v", err)
	}

	var entries, sets int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM workout_entries`).Scan(&entries); err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM sets`).Scan(&sets); err != nil {
		t.Fatalf("count sets: %v", err)
	}
	if entries != 1 || sets != 1 {
		t.Errorf("after cascade: %d entries, %d sets, want 1 and 1", entries, sets)
	}

	remaining, err := db.SetsForEntry(keep.ID)
	if err != nil {
		t.Fatalf("sets for surviving entry: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Errorf("surviving entry lost its set")
	}
}

func TestDeleteExerciseNotFound(t *testing.T) {
	db := setupTestDB(t)

	if err := db.DeleteExercise("ffffffff"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
