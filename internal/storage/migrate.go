// ABOUTME: Versioned schema migrations with a single-row version counter.
// ABOUTME: Each migration runs in its own transaction and advances the version.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// TargetSchemaVersion is the version the store must reach before use.
const TargetSchemaVersion = 3

type migration struct {
	version int
	apply   func(*sql.Tx) error
}

// migrations upgrade stores created by older releases. The baseline DDL in
// schema.go creates the version-1 shape; everything after is listed here in
// ascending order.
var migrations = []migration{
	{
		version: 2,
		apply: func(tx *sql.Tx) error {
			_, err := tx.Exec(`ALTER TABLE exercises ADD COLUMN description TEXT`)
			return err
		},
	},
	{
		version: 3,
		apply: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_sets_entry_logged ON sets(entry_id, logged_at)`)
			return err
		},
	},
}

// Migrate ensures the version row exists and applies every pending migration
// in ascending order. Each step commits its schema change together with the
// version bump; a failure rolls the step back and is fatal to store init.
// Running Migrate on an already-current store is a no-op.
func (d *DB) Migrate() error {
	if _, err := d.db.Exec(
		`INSERT OR IGNORE INTO schema_version (id, version) VALUES (1, 1)`,
	); err != nil {
		return fmt.Errorf("ensure version record: %w", err)
	}

	current, err := d.schemaVersion()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current || m.version > TargetSchemaVersion {
			continue
		}

		tx, err := d.db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		if err := m.apply(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(`UPDATE schema_version SET version = ? WHERE id = 1`, m.version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("advance version to %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}

		log.Debug("applied schema migration", "version", m.version)
		current = m.version
	}

	return nil
}

// schemaVersion reads the stored version counter.
func (d *DB) schemaVersion() (int, error) {
	var v int
	err := d.db.QueryRow(`SELECT version FROM schema_version WHERE id = 1`).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// ValidationReport describes the outcome of an advisory schema check.
type ValidationReport struct {
	MissingTables []string
	Version       int
	TargetVersion int
}

// OK reports whether the schema looks complete and current.
func (r *ValidationReport) OK() bool {
	return len(r.MissingTables) == 0 && r.Version == r.TargetVersion
}

// Validate checks that all expected tables exist and that the stored version
// matches the target. It is advisory: a mismatch is logged and reported, not
// fatal, since it may simply mean migrations have not yet run.
func (d *DB) Validate() (*ValidationReport, error) {
	report := &ValidationReport{TargetVersion: TargetSchemaVersion}

	for _, table := range expectedTables {
		var name string
		err := d.db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			report.MissingTables = append(report.MissingTables, table)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("check table %s: %w", table, err)
		}
	}

	if len(report.MissingTables) == 0 {
		v, err := d.schemaVersion()
		if err != nil {
			return nil, err
		}
		report.Version = v
	}

	if !report.OK() {
		log.Warn("schema validation mismatch",
			"missing", report.MissingTables,
			"version", report.Version,
			"target", report.TargetVersion)
	}

	return report, nil
}
