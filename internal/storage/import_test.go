// ABOUTME: Tests for bulk catalog import in merge and replace modes.
// ABOUTME: Merge tolerates bad records; replace is validated and transactional.
package storage

import (
	"testing"

	"github.com/harperreed/liftlog/internal/models"
)

func TestImportMergeSkipsExistingCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	mustCreateExercise(t, db, "Squats", "Legs", "weight_reps", "kg")

	records := []DefinitionRecord{
		{Name: "squats", Category: "Legs", Type: "weight_reps", Unit: "kg"},
		{Name: "Lunges", Category: "Legs", Type: "reps_only", Unit: "reps"},
	}
	summary, err := db.ImportDefinitions(records, ImportMerge)
	if err != nil {
		t.Fatalf("merge import: %v", err)
	}

	if summary.Added != 1 || summary.Skipped != 1 || summary.Failed != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.Existing) != 1 || summary.Existing[0] != "squats" {
		t.Errorf("existing = %v, want [squats]", summary.Existing)
	}

	// The original casing survives.
	got, err := db.GetExerciseByName("Squats")
	if err != nil {
		t.Fatalf("original definition lost: %v", err)
	}
	if got.Name != "Squats" {
		t.Errorf("name = %s, want Squats", got.Name)
	}
}

func TestImportMergeToleratesBadRecords(t *testing.T) {
	db := setupTestDB(t)

	records := []DefinitionRecord{
		{Name: "Lunges", Category: "Legs", Type: "reps_only", Unit: "reps"},
		{Name: "Broken", Category: "Legs", Type: "cardio", Unit: "reps"},
		{Name: "", Category: "Legs", Type: "reps_only", Unit: "reps"},
		{Name: "Plank", Category: "Core", Type: "time_duration", Unit: "s"},
	}
	summary, err := db.ImportDefinitions(records, ImportMerge)
	if err != nil {
		t.Fatalf("merge import: %v", err)
	}

	if summary.Added != 2 || summary.Failed != 2 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.Errors) != 2 {
		t.Errorf("errors = %v", summary.Errors)
	}

	// Good records landed despite the failures.
	if _, err := db.GetExerciseByName("Plank"); err != nil {
		t.Errorf("valid record not imported: %v", err)
	}
}

func TestImportBatchDedupe(t *testing.T) {
	db := setupTestDB(t)

	records := []DefinitionRecord{
		{Name: "Lunges", Category: "Legs", Type: "reps_only", Unit: "reps"},
		{Name: "LUNGES", Category: "Legs", Type: "weight_reps", Unit: "kg"},
	}
	summary, err := db.ImportDefinitions(records, ImportMerge)
	if err != nil {
		t.Fatalf("merge import: %v", err)
	}
	if summary.Added != 1 || summary.Skipped != 1 {
		t.Errorf("summary = %+v", summary)
	}

	// First occurrence wins.
	got, err := db.GetExerciseByName("Lunges")
	if err != nil {
		t.Fatalf("deduped record missing: %v", err)
	}
	if got.Type != "reps_only" {
		t.Errorf("type = %s, want first occurrence reps_only", got.Type)
	}
}

func TestImportReplaceWipesAndReinserts(t *testing.T) {
	db := setupTestDB(t)
	old := mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")
	entry := mustCreateEntry(t, db, old, "2026-08-30")
	mustAddSet(t, db, entry, func(s *models.Set) { s.WithWeight(100).WithReps(5) })

	records := []DefinitionRecord{
		{Name: "Deadlift", Category: "Back", Type: "weight_reps", Unit: "kg"},
	}
	summary, err := db.ImportDefinitions(records, ImportReplace)
	if err != nil {
		t.Fatalf("replace import: %v", err)
	}
	if summary.Added != 1 {
		t.Errorf("summary = %+v", summary)
	}

	exercises, err := db.ListExercises(nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(exercises) != 1 || exercises[0].Name != "Deadlift" {
		t.Errorf("catalog after replace = %v", exercises)
	}

	// Logged data went with the old catalog (cascade).
	var sets int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM sets`).Scan(&sets); err != nil {
		t.Fatalf("count sets: %v", err)
	}
	if sets != 0 {
		t.Errorf("%d sets survived replace", sets)
	}
}

func TestImportReplaceRejectsBadBatchUpFront(t *testing.T) {
	db := setupTestDB(t)
	mustCreateExercise(t, db, "Squat", "Legs", "weight_reps", "kg")

	records := []DefinitionRecord{
		{Name: "Deadlift", Category: "Back", Type: "weight_reps", Unit: "kg"},
		{Name: "Broken", Category: "Back", Type: "cardio", Unit: "kg"},
	}
	if _, err := db.ImportDefinitions(records, ImportReplace); err == nil {
		t.Fatal("expected replace to reject invalid batch")
	}

	// Nothing was wiped.
	if _, err := db.GetExerciseByName("Squat"); err != nil {
		t.Errorf("existing catalog lost on rejected replace: %v", err)
	}
}

func TestParseDefinitionRecords(t *testing.T) {
	raw := []byte(`[
		{"name": "Lunges", "category": "Legs", "type": "reps_only", "unit": "reps"},
		{"name": "Plank", "category": "Core", "type": "time_duration", "unit": "s", "description": "Forearm"}
	]`)
	records, err := ParseDefinitionRecords(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 2 || records[1].Description != "Forearm" {
		t.Errorf("records = %+v", records)
	}

	if _, err := ParseDefinitionRecords([]byte(`{"not": "an array"}`)); err == nil {
		t.Error("expected parse error for non-array payload")
	}
}

func TestSeedStarterCatalogIdempotent(t *testing.T) {
	db := setupTestDB(t)

	first, err := db.SeedStarterCatalog()
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if first.Added == 0 || first.Failed != 0 {
		t.Fatalf("first seed summary = %+v", first)
	}

	second, err := db.SeedStarterCatalog()
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second.Added != 0 || second.Skipped != first.Added {
		t.Errorf("second seed summary = %+v, want all skipped", second)
	}

	// The catalog covers every exercise type.
	seen := make(map[models.ExerciseType]bool)
	exercises, err := db.ListExercises(nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, e := range exercises {
		seen[e.Type] = true
	}
	for _, typ := range models.AllExerciseTypes {
		if !seen[typ] {
			t.Errorf("starter catalog missing type %s", typ)
		}
	}
}

func TestWipeAndReseed(t *testing.T) {
	db := setupTestDB(t)
	custom := mustCreateExercise(t, db, "My Custom Lift", "Misc", "weight_only", "kg")
	entry := mustCreateEntry(t, db, custom, "2026-08-30")
	mustAddSet(t, db, entry, func(s *models.Set) { s.WithWeight(120) })

	if err := db.WipeAndReseed(); err != nil {
		t.Fatalf("wipe and reseed: %v", err)
	}

	if _, err := db.GetExerciseByName("My Custom Lift"); err == nil {
		t.Error("custom definition survived reseed")
	}
	if _, err := db.GetExerciseByName("Bench Press"); err != nil {
		t.Errorf("starter catalog missing after reseed: %v", err)
	}

	var sets int
	if err := db.db.QueryRow(`SELECT COUNT(*) FROM sets`).Scan(&sets); err != nil {
		t.Fatalf("count sets: %v", err)
	}
	if sets != 0 {
		t.Errorf("%d sets survived reseed", sets)
	}
}
