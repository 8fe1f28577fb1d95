// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for exercises, workout_entries, sets, and schema_version.
package storage

// initSchema creates the baseline (version 1) schema. The DDL is idempotent;
// later shape changes live in migrate.go and run exactly once. Cascades are
// declared at the schema level so the engine enforces delete ordering.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		exercise_type TEXT NOT NULL,
		unit TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workout_entries (
		id TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
		entry_date TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sets (
		id TEXT PRIMARY KEY,
		entry_id TEXT NOT NULL REFERENCES workout_entries(id) ON DELETE CASCADE,
		weight REAL,
		reps INTEGER,
		distance REAL,
		time_seconds REAL,
		notes TEXT,
		logged_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schema_version (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		version INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_date ON workout_entries(entry_date);
	CREATE INDEX IF NOT EXISTS idx_entries_exercise ON workout_entries(exercise_id);
	CREATE INDEX IF NOT EXISTS idx_sets_entry ON sets(entry_id);
	`

	_, err := d.db.Exec(schema)
	return err
}

// expectedTables is checked by Validate.
var expectedTables = []string{"exercises", "workout_entries", "sets", "schema_version"}
