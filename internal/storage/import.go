// ABOUTME: Bulk exercise-catalog import with merge and replace modes.
// ABOUTME: Merge tolerates per-record failure; replace is all-or-nothing.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/liftlog/internal/models"
)

// ImportMode selects how a bulk import treats existing data.
type ImportMode string

const (
	// ImportMerge keeps existing definitions and skips incoming records
	// whose name already exists (compared case-insensitively).
	ImportMerge ImportMode = "merge"
	// ImportReplace wipes all definitions (and, via cascade, all logged
	// data) and reinserts the batch inside a single transaction.
	ImportReplace ImportMode = "replace"
)

// DefinitionRecord is one record of a bulk-import payload.
type DefinitionRecord struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Unit        string `json:"unit"`
	Description string `json:"description,omitempty"`
}

func (r DefinitionRecord) validate() error {
	if r.Name == "" {
		return fmt.Errorf("record missing name")
	}
	if r.Category == "" {
		return fmt.Errorf("record %q missing category", r.Name)
	}
	if !models.IsValidExerciseType(r.Type) {
		return fmt.Errorf("record %q has unknown type %q", r.Name, r.Type)
	}
	if r.Unit == "" {
		return fmt.Errorf("record %q missing unit", r.Name)
	}
	return nil
}

func (r DefinitionRecord) toDefinition() *models.ExerciseDefinition {
	def := models.NewExerciseDefinition(r.Name, r.Category, models.ExerciseType(r.Type), r.Unit)
	if r.Description != "" {
		def.WithDescription(r.Description)
	}
	return def
}

// ImportSummary reports the per-record outcome of a bulk import.
type ImportSummary struct {
	Added    int
	Skipped  int
	Failed   int
	Existing []string // names skipped because they already existed
	Errors   []string
}

// ImportDefinitions loads a batch of definition records. Records are
// validated before any write and deduplicated case-insensitively within the
// batch. In merge mode individual failures are tolerated and summarized; in
// replace mode the wipe-and-reinsert runs in one transaction so a failure
// never leaves the store emptied.
func (d *DB) ImportDefinitions(records []DefinitionRecord, mode ImportMode) (*ImportSummary, error) {
	summary := &ImportSummary{}

	// Dedupe within the batch, first occurrence wins.
	seen := make(map[string]bool)
	var batch []DefinitionRecord
	for _, r := range records {
		key := strings.ToLower(r.Name)
		if key != "" && seen[key] {
			summary.Skipped++
			continue
		}
		seen[key] = true
		batch = append(batch, r)
	}

	switch mode {
	case ImportMerge:
		return summary, d.importMerge(batch, summary)
	case ImportReplace:
		return summary, d.importReplace(batch, summary)
	}
	return nil, fmt.Errorf("unknown import mode: %s", mode)
}

func (d *DB) importMerge(batch []DefinitionRecord, summary *ImportSummary) error {
	for _, r := range batch {
		if err := r.validate(); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}

		existing, err := d.FindExerciseFold(r.Name)
		if err != nil && err != ErrNotFound {
			return fmt.Errorf("import lookup %q: %w", r.Name, err)
		}
		if existing != nil {
			summary.Skipped++
			summary.Existing = append(summary.Existing, r.Name)
			continue
		}

		if err := d.CreateExercise(r.toDefinition()); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}
		summary.Added++
	}
	return nil
}

func (d *DB) importReplace(batch []DefinitionRecord, summary *ImportSummary) error {
	// Replace refuses invalid records up front: the destructive path must
	// only run when the whole batch can be reinserted.
	for _, r := range batch {
		if err := r.validate(); err != nil {
			return fmt.Errorf("replace import rejected: %w", err)
		}
	}

	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace import: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM exercises`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear exercises: %w", err)
	}

	for _, r := range batch {
		def := r.toDefinition()
		_, err := tx.Exec(`
			INSERT INTO exercises (id, name, category, exercise_type, unit, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, def.ID.String(), def.Name, def.Category, string(def.Type),
			def.Unit, def.Description, def.CreatedAt.Format(time.RFC3339))
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("reinsert %q: %w", def.Name, err)
		}
		summary.Added++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace import: %w", err)
	}
	return nil
}

// ParseDefinitionRecords decodes a bulk-import JSON payload: a flat array of
// {name, category, type, unit, description?} objects.
func ParseDefinitionRecords(raw []byte) ([]DefinitionRecord, error) {
	var records []DefinitionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse import payload: %w", err)
	}
	return records, nil
}

// WipeAndReseed clears all logged data and reloads the starter catalog in a
// single transaction.
func (d *DB) WipeAndReseed() error {
	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin reseed: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM exercises`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear exercises: %w", err)
	}
	for _, r := range starterCatalog {
		def := r.toDefinition()
		if _, err := tx.Exec(`
			INSERT INTO exercises (id, name, category, exercise_type, unit, description, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, def.ID.String(), def.Name, def.Category, string(def.Type),
			def.Unit, def.Description, def.CreatedAt.Format(time.RFC3339)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("reseed %q: %w", def.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reseed: %w", err)
	}
	return nil
}
