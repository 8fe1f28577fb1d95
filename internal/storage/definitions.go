// ABOUTME: ExerciseDefinition CRUD operations for SQLite storage.
// ABOUTME: Deleting a definition cascades through entries to sets via FK.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/liftlog/internal/models"
)

// CreateExercise stores a new exercise definition.
func (d *DB) CreateExercise(e *models.ExerciseDefinition) error {
	if err := e.Validate(); err != nil {
		return err
	}
	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	query := `
		INSERT INTO exercises (id, name, category, exercise_type, unit, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		e.ID.String(),
		e.Name,
		e.Category,
		string(e.Type),
		e.Unit,
		e.Description,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves a definition by ID or ID prefix.
func (d *DB) GetExercise(idOrPrefix string) (*models.ExerciseDefinition, error) {
	id, err := d.resolveID("exercises", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, category, exercise_type, unit, description, created_at
		FROM exercises
		WHERE id = ?
	`
	return scanExercise(d.db.QueryRow(query, id))
}

// GetExerciseByName retrieves a definition by exact name.
func (d *DB) GetExerciseByName(name string) (*models.ExerciseDefinition, error) {
	query := `
		SELECT id, name, category, exercise_type, unit, description, created_at
		FROM exercises
		WHERE name = ?
	`
	return scanExercise(d.db.QueryRow(query, name))
}

// FindExerciseFold retrieves a definition by case-insensitive name match.
// Used by bulk import, where "squats" must find an existing "Squats".
func (d *DB) FindExerciseFold(name string) (*models.ExerciseDefinition, error) {
	query := `
		SELECT id, name, category, exercise_type, unit, description, created_at
		FROM exercises
		WHERE LOWER(name) = LOWER(?)
	`
	return scanExercise(d.db.QueryRow(query, name))
}

// ListExercises retrieves definitions ordered by name, optionally filtered
// by category.
func (d *DB) ListExercises(category *string) ([]*models.ExerciseDefinition, error) {
	query := `
		SELECT id, name, category, exercise_type, unit, description, created_at
		FROM exercises
	`
	var args []interface{}
	if category != nil {
		query += " WHERE category = ?"
		args = append(args, *category)
	}
	query += " ORDER BY name ASC"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.ExerciseDefinition
	for rows.Next() {
		e, err := scanExerciseRow(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// UpdateExercise rewrites a definition's mutable fields.
func (d *DB) UpdateExercise(e *models.ExerciseDefinition) error {
	if err := e.Validate(); err != nil {
		return err
	}
	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	query := `
		UPDATE exercises
		SET name = ?, category = ?, exercise_type = ?, unit = ?, description = ?
		WHERE id = ?
	`
	result, err := d.db.Exec(query,
		e.Name, e.Category, string(e.Type), e.Unit, e.Description, e.ID.String())
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update exercise: %w: %s", ErrNotFound, e.ID)
	}
	return nil
}

// DeleteExercise removes a definition, its workout entries, and their sets.
// Cascades are enforced by the schema.
func (d *DB) DeleteExercise(idOrPrefix string) error {
	id, err := d.resolveID("exercises", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	result, err := d.db.Exec("DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete exercise: %w: %s", ErrNotFound, idOrPrefix)
	}
	return nil
}

// Categories returns distinct category values, ascending.
func (d *DB) Categories() ([]string, error) {
	rows, err := d.db.Query(`SELECT DISTINCT category FROM exercises ORDER BY category ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// resolveID finds the full ID from a prefix in the given table.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	query := fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? || '%%'`, table)
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return matches[0], nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExercise(row *sql.Row) (*models.ExerciseDefinition, error) {
	e, err := scanExerciseRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return e, err
}

func mustParseUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}

func scanExerciseRow(row rowScanner) (*models.ExerciseDefinition, error) {
	var e models.ExerciseDefinition
	var idStr, typeStr, createdAt string
	var description sql.NullString

	err := row.Scan(&idStr, &e.Name, &e.Category, &typeStr, &e.Unit, &description, &createdAt)
	if err != nil {
		return nil, err
	}

	e.ID = mustParseUUID(idStr)
	e.Type = models.ExerciseType(typeStr)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if description.Valid {
		e.Description = &description.String
	}
	return &e, nil
}
