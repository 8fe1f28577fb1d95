// ABOUTME: Export and import functionality for logged training data.
// ABOUTME: Supports CSV (one row per set), JSON, and YAML formats.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/harperreed/liftlog/internal/models"
	"gopkg.in/yaml.v3"
)

// CSVHeader is the fixed header row of the flat set export.
var CSVHeader = []string{
	"Date", "Exercise", "Category", "Type", "Set #",
	"Weight", "Reps", "Distance", "Time (seconds)", "Time (formatted)",
}

// ExportCSV produces the flat one-row-per-set export: date descending, name
// ascending, insertion time ascending, with a 1-based set number that resets
// whenever the (date, name) pair changes. Entries with zero sets contribute
// no rows. Output is deterministic for a given store state.
func (d *DB) ExportCSV() ([]byte, error) {
	query := `
		SELECT e.entry_date, x.name, x.category, x.exercise_type,
		       s.weight, s.reps, s.distance, s.time_seconds
		FROM sets s
		JOIN workout_entries e ON e.id = s.entry_id
		JOIN exercises x ON x.id = e.exercise_id
		ORDER BY e.entry_date DESC, x.name ASC, s.logged_at ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	defer rows.Close()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	var prevDate, prevName string
	setNum := 0
	for rows.Next() {
		var date, name, category, typeStr string
		var weight, distance, timeSeconds *float64
		var reps *int

		if err := rows.Scan(&date, &name, &category, &typeStr,
			&weight, &reps, &distance, &timeSeconds); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}

		if date != prevDate || name != prevName {
			setNum = 0
			prevDate, prevName = date, name
		}
		setNum++

		record := []string{
			date,
			name,
			category,
			models.ExerciseType(typeStr).Label(),
			strconv.Itoa(setNum),
			formatOptFloat(weight),
			formatOptInt(reps),
			formatOptFloat(distance),
			formatOptFloat(timeSeconds),
			formatOptDuration(timeSeconds),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatOptInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func formatOptDuration(seconds *float64) string {
	if seconds == nil {
		return ""
	}
	return models.FormatSeconds(*seconds)
}

// ExportData represents the full export format for logged training data.
type ExportData struct {
	Version    string                       `json:"version" yaml:"version"`
	ExportedAt time.Time                    `json:"exported_at" yaml:"exported_at"`
	Tool       string                       `json:"tool" yaml:"tool"`
	Exercises  []*models.ExerciseDefinition `json:"exercises" yaml:"exercises"`
	Entries    []*models.WorkoutEntry       `json:"entries" yaml:"entries"`
}

// GetAllData retrieves all data for export. Entries carry their full set
// lists.
func (d *DB) GetAllData() (*ExportData, error) {
	exercises, err := d.ListExercises(nil)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	query := `
		SELECT e.id, e.exercise_id, e.entry_date, e.created_at,
		       x.name, x.category, x.exercise_type, x.unit
		FROM workout_entries e
		JOIN exercises x ON x.id = e.exercise_id
		ORDER BY e.entry_date ASC, e.created_at ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.WorkoutEntry
	for rows.Next() {
		e, err := scanEntryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range entries {
		sets, err := d.SetsForEntry(e.ID)
		if err != nil {
			return nil, fmt.Errorf("list sets: %w", err)
		}
		for _, s := range sets {
			e.Sets = append(e.Sets, *s)
		}
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "liftlog",
		Exercises:  exercises,
		Entries:    entries,
	}, nil
}

// ImportData imports data from an export file. Exercises are created first
// so entry foreign keys resolve.
func (d *DB) ImportData(data *ExportData) error {
	for _, e := range data.Exercises {
		if err := d.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}

	for _, entry := range data.Entries {
		sets := entry.Sets
		entry.Sets = nil
		if err := d.CreateEntry(entry); err != nil {
			return fmt.Errorf("import entry: %w", err)
		}
		for i := range sets {
			sets[i].EntryID = entry.ID
			if err := d.AddSet(&sets[i]); err != nil {
				return fmt.Errorf("import set: %w", err)
			}
		}
		entry.Sets = sets
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&data)
}

// ExportYAML exports all data as YAML, grouped by date for readability.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string         `yaml:"version"`
		ExportedAt string         `yaml:"exported_at"`
		Tool       string         `yaml:"tool"`
		Exercises  []yamlExercise `yaml:"exercises"`
		Entries    []yamlEntry    `yaml:"entries"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
	}

	for _, e := range data.Exercises {
		ye := yamlExercise{
			ID:       e.ID.String()[:8],
			Name:     e.Name,
			Category: e.Category,
			Type:     string(e.Type),
			Unit:     e.Unit,
		}
		if e.Description != nil {
			ye.Description = *e.Description
		}
		yamlData.Exercises = append(yamlData.Exercises, ye)
	}

	for _, entry := range data.Entries {
		ye := yamlEntry{
			ID:       entry.ID.String()[:8],
			Date:     entry.Date.Format(models.DateFormat),
			Exercise: entry.ExerciseName,
		}
		for _, s := range entry.Sets {
			ys := yamlSet{}
			if s.Weight != nil {
				ys.Weight = *s.Weight
			}
			if s.Reps != nil {
				ys.Reps = *s.Reps
			}
			if s.Distance != nil {
				ys.Distance = *s.Distance
			}
			if s.TimeSeconds != nil {
				ys.TimeSeconds = *s.TimeSeconds
			}
			if s.Notes != nil {
				ys.Notes = *s.Notes
			}
			ye.Sets = append(ye.Sets, ys)
		}
		yamlData.Entries = append(yamlData.Entries, ye)
	}

	return yaml.Marshal(yamlData)
}

type yamlExercise struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Type        string `yaml:"type"`
	Unit        string `yaml:"unit"`
	Description string `yaml:"description,omitempty"`
}

type yamlEntry struct {
	ID       string    `yaml:"id"`
	Date     string    `yaml:"date"`
	Exercise string    `yaml:"exercise"`
	Sets     []yamlSet `yaml:"sets,omitempty"`
}

type yamlSet struct {
	Weight      float64 `yaml:"weight,omitempty"`
	Reps        int     `yaml:"reps,omitempty"`
	Distance    float64 `yaml:"distance,omitempty"`
	TimeSeconds float64 `yaml:"time_seconds,omitempty"`
	Notes       string  `yaml:"notes,omitempty"`
}
