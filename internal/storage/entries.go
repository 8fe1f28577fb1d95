// ABOUTME: WorkoutEntry CRUD and date-oriented queries for SQLite storage.
// ABOUTME: EntriesForDate is the one left-join query the day view is built on.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/liftlog/internal/models"
)

// CreateEntry stores a new workout entry.
func (d *DB) CreateEntry(e *models.WorkoutEntry) error {
	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	query := `
		INSERT INTO workout_entries (id, exercise_id, entry_date, created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		e.ID.String(),
		e.ExerciseID.String(),
		e.Date.Format(models.DateFormat),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

// FindEntry looks up the entry for a definition on a date. Callers use this
// before CreateEntry so a (definition, date) pair gets a single entry; the
// schema does not hard-enforce the uniqueness.
func (d *DB) FindEntry(exerciseID uuid.UUID, date time.Time) (*models.WorkoutEntry, error) {
	query := `
		SELECT e.id, e.exercise_id, e.entry_date, e.created_at,
		       x.name, x.category, x.exercise_type, x.unit
		FROM workout_entries e
		JOIN exercises x ON x.id = e.exercise_id
		WHERE e.exercise_id = ? AND e.entry_date = ?
		ORDER BY e.created_at ASC
		LIMIT 1
	`
	row := d.db.QueryRow(query, exerciseID.String(), date.Format(models.DateFormat))
	e, err := scanEntryRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return e, nil
}

// DeleteEntry removes an entry and its sets (cascade).
func (d *DB) DeleteEntry(idOrPrefix string) error {
	id, err := d.resolveID("workout_entries", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	done, err := d.beginWrite()
	if err != nil {
		return err
	}
	defer done()

	result, err := d.db.Exec("DELETE FROM workout_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete entry: %w: %s", ErrNotFound, idOrPrefix)
	}
	return nil
}

// EntriesForDate returns every entry logged on a date, each carrying its sets
// ordered by insertion time ascending. Entries with zero sets still appear
// with an empty set list (left join). Each set's personal-best flag is
// computed against the exercise's full history at read time.
func (d *DB) EntriesForDate(date time.Time) ([]*models.WorkoutEntry, error) {
	query := `
		SELECT e.id, e.exercise_id, e.entry_date, e.created_at,
		       x.name, x.category, x.exercise_type, x.unit,
		       s.id, s.weight, s.reps, s.distance, s.time_seconds, s.notes, s.logged_at
		FROM workout_entries e
		JOIN exercises x ON x.id = e.exercise_id
		LEFT JOIN sets s ON s.entry_id = e.id
		WHERE e.entry_date = ?
		ORDER BY e.created_at ASC, s.logged_at ASC
	`
	rows, err := d.db.Query(query, date.Format(models.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("entries for date: %w", err)
	}
	defer rows.Close()

	var entries []*models.WorkoutEntry
	byID := make(map[uuid.UUID]*models.WorkoutEntry)

	for rows.Next() {
		var idStr, exIDStr, entryDate, createdAt string
		var name, category, typeStr, unit string
		var setID, setNotes sql.NullString
		var weight, distance, timeSeconds sql.NullFloat64
		var reps, loggedAt sql.NullInt64
		err := rows.Scan(&idStr, &exIDStr, &entryDate, &createdAt,
			&name, &category, &typeStr, &unit,
			&setID, &weight, &reps, &distance, &timeSeconds, &setNotes, &loggedAt)
		if err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}

		entryID := mustParseUUID(idStr)
		entry, ok := byID[entryID]
		if !ok {
			entry = &models.WorkoutEntry{
				ID:           entryID,
				ExerciseID:   mustParseUUID(exIDStr),
				ExerciseName: name,
				Category:     category,
				Type:         models.ExerciseType(typeStr),
				Unit:         unit,
				Sets:         []models.Set{},
			}
			entry.Date, _ = time.Parse(models.DateFormat, entryDate)
			entry.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
			byID[entryID] = entry
			entries = append(entries, entry)
		}

		if !setID.Valid {
			continue // left join: entry without sets
		}
		set := models.Set{
			ID:       mustParseUUID(setID.String),
			EntryID:  entryID,
			LoggedAt: loggedAt.Int64,
		}
		if weight.Valid {
			set.Weight = &weight.Float64
		}
		if reps.Valid {
			r := int(reps.Int64)
			set.Reps = &r
		}
		if distance.Valid {
			set.Distance = &distance.Float64
		}
		if timeSeconds.Valid {
			set.TimeSeconds = &timeSeconds.Float64
		}
		if setNotes.Valid {
			set.Notes = &setNotes.String
		}
		entry.Sets = append(entry.Sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if err := d.markPersonalBests(entry); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// markPersonalBests flags the set that holds the exercise's all-time best.
func (d *DB) markPersonalBests(entry *models.WorkoutEntry) error {
	if len(entry.Sets) == 0 {
		return nil
	}
	best, err := d.PersonalBestForExercise(entry.ExerciseName, nil)
	if err != nil {
		return err
	}
	if best == nil {
		return nil
	}
	for i := range entry.Sets {
		entry.Sets[i].IsPersonalBest = entry.Sets[i].ID == best.ID
	}
	return nil
}

// DatesWithEntries returns the distinct dates in [start, end] that have at
// least one entry, ascending. Used for calendar marking.
func (d *DB) DatesWithEntries(start, end time.Time) ([]time.Time, error) {
	query := `
		SELECT DISTINCT entry_date
		FROM workout_entries
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date ASC
	`
	rows, err := d.db.Query(query,
		start.Format(models.DateFormat), end.Format(models.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("dates with entries: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		t, err := time.Parse(models.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", s, err)
		}
		dates = append(dates, t)
	}
	return dates, rows.Err()
}

// LastEntryByName returns the most recent entry for a definition name,
// optionally excluding one date, ordered by date then creation time
// descending. Used to pre-populate inputs from history.
func (d *DB) LastEntryByName(name string, excludeDate *time.Time) (*models.WorkoutEntry, error) {
	query := `
		SELECT e.id, e.exercise_id, e.entry_date, e.created_at,
		       x.name, x.category, x.exercise_type, x.unit
		FROM workout_entries e
		JOIN exercises x ON x.id = e.exercise_id
		WHERE x.name = ?
	`
	args := []interface{}{name}
	if excludeDate != nil {
		query += " AND e.entry_date != ?"
		args = append(args, excludeDate.Format(models.DateFormat))
	}
	query += " ORDER BY e.entry_date DESC, e.created_at DESC LIMIT 1"

	e, err := scanEntryRow(d.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("last entry by name: %w", err)
	}

	sets, err := d.SetsForEntry(e.ID)
	if err != nil {
		return nil, err
	}
	for _, s := range sets {
		e.Sets = append(e.Sets, *s)
	}
	return e, nil
}

// scanEntryRow scans an entry joined with its definition columns.
func scanEntryRow(row rowScanner) (*models.WorkoutEntry, error) {
	var e models.WorkoutEntry
	var idStr, exIDStr, entryDate, createdAt, typeStr string

	err := row.Scan(&idStr, &exIDStr, &entryDate, &createdAt,
		&e.ExerciseName, &e.Category, &typeStr, &e.Unit)
	if err != nil {
		return nil, err
	}

	e.ID = mustParseUUID(idStr)
	e.ExerciseID = mustParseUUID(exIDStr)
	e.Type = models.ExerciseType(typeStr)
	e.Date, _ = time.Parse(models.DateFormat, entryDate)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &e, nil
}
