// ABOUTME: Set CRUD operations for SQLite storage.
// ABOUTME: Sets are validated against their exercise's type before any write.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/liftlog/internal/models"
)

// AddSet stores a new set after validating its fields against the owning
// exercise's type. A validation failure writes nothing.
func (d *DB) AddSet(s *models.Set) error {
	exerciseType, err := d.entryExerciseType(s.EntryID)
	if err != nil {
		return fmt.Errorf("add set: %w", err)
	}
	if err := s.ValidateForType(exerciseType); err != nil {
		return fmt.Errorf("add set: %w", err)
	}

	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	query := `
		INSERT INTO sets (id, entry_id, weight, reps, distance, time_seconds, notes, logged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		s.ID.String(),
		s.EntryID.String(),
		s.Weight,
		s.Reps,
		s.Distance,
		s.TimeSeconds,
		s.Notes,
		s.LoggedAt,
	)
	if err != nil {
		return fmt.Errorf("add set: %w", err)
	}
	return nil
}

// UpdateSet rewrites a set's measurements and notes.
func (d *DB) UpdateSet(s *models.Set) error {
	exerciseType, err := d.entryExerciseType(s.EntryID)
	if err != nil {
		return fmt.Errorf("update set: %w", err)
	}
	if err := s.ValidateForType(exerciseType); err != nil {
		return fmt.Errorf("update set: %w", err)
	}

	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	query := `
		UPDATE sets
		SET weight = ?, reps = ?, distance = ?, time_seconds = ?, notes = ?
		WHERE id = ?
	`
	result, err := d.db.Exec(query,
		s.Weight, s.Reps, s.Distance, s.TimeSeconds, s.Notes, s.ID.String())
	if err != nil {
		return fmt.Errorf("update set: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update set: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update set: %w: %s", ErrNotFound, s.ID)
	}
	return nil
}

// DeleteSet removes a set by ID or prefix.
func (d *DB) DeleteSet(idOrPrefix string) error {
	id, err := d.resolveID("sets", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	result, err := d.db.Exec("DELETE FROM sets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete set: %w: %s", ErrNotFound, idOrPrefix)
	}
	return nil
}

// SetsForEntry retrieves an entry's sets ordered by insertion time ascending.
func (d *DB) SetsForEntry(entryID uuid.UUID) ([]*models.Set, error) {
	query := `
		SELECT id, entry_id, weight, reps, distance, time_seconds, notes, logged_at
		FROM sets
		WHERE entry_id = ?
		ORDER BY logged_at ASC
	`
	rows, err := d.db.Query(query, entryID.String())
	if err != nil {
		return nil, fmt.Errorf("sets for entry: %w", err)
	}
	defer rows.Close()

	var sets []*models.Set
	for rows.Next() {
		s, err := scanSetRow(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// entryExerciseType looks up the exercise type owning an entry.
func (d *DB) entryExerciseType(entryID uuid.UUID) (models.ExerciseType, error) {
	var typeStr string
	err := d.db.QueryRow(`
		SELECT x.exercise_type
		FROM workout_entries e
		JOIN exercises x ON x.id = e.exercise_id
		WHERE e.id = ?
	`, entryID.String()).Scan(&typeStr)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("entry %s: %w", entryID, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return models.ExerciseType(typeStr), nil
}

// scanSetRow scans the eight set columns.
func scanSetRow(row rowScanner) (*models.Set, error) {
	var s models.Set
	var idStr, entryIDStr string
	var weight, distance, timeSeconds sql.NullFloat64
	var reps sql.NullInt64
	var notes sql.NullString

	err := row.Scan(&idStr, &entryIDStr, &weight, &reps, &distance, &timeSeconds, &notes, &s.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("scan set: %w", err)
	}

	s.ID = mustParseUUID(idStr)
	s.EntryID = mustParseUUID(entryIDStr)
	if weight.Valid {
		s.Weight = &weight.Float64
	}
	if reps.Valid {
		r := int(reps.Int64)
		s.Reps = &r
	}
	if distance.Valid {
		s.Distance = &distance.Float64
	}
	if timeSeconds.Valid {
		s.TimeSeconds = &timeSeconds.Float64
	}
	if notes.Valid {
		s.Notes = &notes.String
	}
	return &s, nil
}
