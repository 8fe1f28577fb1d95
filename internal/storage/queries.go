// ABOUTME: Composite queries over the full join: personal bests and set history.
// ABOUTME: Unknown exercise names yield empty results, never errors.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/liftlog/internal/models"
)

// historicalSet is one set joined with its entry date, in scan order.
type historicalSet struct {
	set  *models.Set
	date time.Time
}

// historicalSets returns every set ever recorded for the named exercise,
// optionally excluding one date, ordered by date then insertion time
// ascending. The exercise type rides along for ranking.
func (d *DB) historicalSets(name string, excludeDate *time.Time) ([]historicalSet, models.ExerciseType, error) {
	query := `
		SELECT s.id, s.entry_id, s.weight, s.reps, s.distance, s.time_seconds, s.notes, s.logged_at,
		       e.entry_date, x.exercise_type
		FROM sets s
		JOIN workout_entries e ON e.id = s.entry_id
		JOIN exercises x ON x.id = e.exercise_id
		WHERE x.name = ?
	`
	args := []interface{}{name}
	if excludeDate != nil {
		query += " AND e.entry_date != ?"
		args = append(args, excludeDate.Format(models.DateFormat))
	}
	query += " ORDER BY e.entry_date ASC, s.logged_at ASC"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("historical sets: %w", err)
	}
	defer rows.Close()

	var result []historicalSet
	var exerciseType models.ExerciseType
	for rows.Next() {
		var s models.Set
		var idStr, entryIDStr, dateStr, typeStr string
		var weight, distance, timeSeconds sql.NullFloat64
		var reps sql.NullInt64
		var notes sql.NullString

		err := rows.Scan(&idStr, &entryIDStr, &weight, &reps, &distance,
			&timeSeconds, &notes, &s.LoggedAt, &dateStr, &typeStr)
		if err != nil {
			return nil, "", fmt.Errorf("scan historical set: %w", err)
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

		date, _ := time.Parse(models.DateFormat, dateStr)
		exerciseType = models.ExerciseType(typeStr)
		result = append(result, historicalSet{set: &s, date: date})
	}
	return result, exerciseType, rows.Err()
}

// PersonalBestForExercise reduces all historical sets for the named exercise
// to the single best one under the type's ranking rule. A tie keeps the
// earlier set. Returns nil when no sets exist.
func (d *DB) PersonalBestForExercise(name string, excludeDate *time.Time) (*models.Set, error) {
	history, exerciseType, err := d.historicalSets(name, excludeDate)
	if err != nil {
		return nil, err
	}

	var best *models.Set
	for _, h := range history {
		if models.IsNewPersonalBest(h.set, best, exerciseType) {
			best = h.set
		}
	}
	return best, nil
}
