// ABOUTME: Built-in starter exercise catalog and idempotent seeding.
// ABOUTME: Seeding runs through merge-mode import, so re-running adds nothing.
package storage

// starterCatalog covers every exercise type so a fresh store is usable
// immediately.
var starterCatalog = []DefinitionRecord{
	{Name: "Bench Press", Category: "Chest", Type: "weight_reps", Unit: "kg"},
	{Name: "Squat", Category: "Legs", Type: "weight_reps", Unit: "kg"},
	{Name: "Deadlift", Category: "Back", Type: "weight_reps", Unit: "kg"},
	{Name: "Overhead Press", Category: "Shoulders", Type: "weight_reps", Unit: "kg"},
	{Name: "Barbell Row", Category: "Back", Type: "weight_reps", Unit: "kg"},
	{Name: "Deadlift Single", Category: "Back", Type: "weight_only", Unit: "kg", Description: "One-rep max attempts"},
	{Name: "Pull Up", Category: "Back", Type: "reps_only", Unit: "reps"},
	{Name: "Push Up", Category: "Chest", Type: "reps_only", Unit: "reps"},
	{Name: "Farmer's Carry", Category: "Full Body", Type: "weight_distance", Unit: "m"},
	{Name: "Weighted Plank", Category: "Core", Type: "weight_time", Unit: "s"},
	{Name: "Plank", Category: "Core", Type: "time_duration", Unit: "s"},
	{Name: "Dead Hang", Category: "Grip", Type: "time_duration", Unit: "s"},
	{Name: "100m Sprint", Category: "Cardio", Type: "time_speed", Unit: "s"},
	{Name: "Running", Category: "Cardio", Type: "distance_time", Unit: "km"},
	{Name: "Rowing", Category: "Cardio", Type: "distance_time", Unit: "m"},
	{Name: "Walking", Category: "Cardio", Type: "distance_only", Unit: "km"},
	{Name: "Burpees in 5 min", Category: "Conditioning", Type: "reps_time", Unit: "reps"},
	{Name: "Walking Lunges", Category: "Legs", Type: "reps_distance", Unit: "m"},
}

// SeedStarterCatalog loads the built-in catalog in merge mode. Names that
// already exist (case-insensitive) are left untouched, so the seed is safe
// to run on every startup.
func (d *DB) SeedStarterCatalog() (*ImportSummary, error) {
	return d.ImportDefinitions(starterCatalog, ImportMerge)
}
