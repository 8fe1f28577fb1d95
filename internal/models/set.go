// ABOUTME: WorkoutEntry and Set models for logged training data.
// ABOUTME: An entry is one exercise on one calendar date; sets record attempts.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the ISO date-only format used for entry dates.
const DateFormat = "2006-01-02"

// WorkoutEntry records that an exercise was performed on a calendar date.
// The join fields are populated when the entry is read with its definition.
type WorkoutEntry struct {
	ID         uuid.UUID
	ExerciseID uuid.UUID
	Date       time.Time // date-only, no time component
	CreatedAt  time.Time

	// Populated by join queries
	ExerciseName string
	Category     string
	Type         ExerciseType
	Unit         string
	Sets         []Set
}

// NewWorkoutEntry creates an entry for the given definition and date.
// The date is truncated to its calendar day.
func NewWorkoutEntry(exerciseID uuid.UUID, date time.Time) *WorkoutEntry {
	return &WorkoutEntry{
		ID:         uuid.New(),
		ExerciseID: exerciseID,
		Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Now(),
	}
}

// Set is one recorded attempt within a workout entry. Which numeric fields
// are populated is determined by the exercise's type. IsPersonalBest is
// computed at read time and never persisted.
type Set struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	Weight      *float64
	Reps        *int
	Distance    *float64
	TimeSeconds *float64
	Notes       *string
	LoggedAt    int64 // unix milliseconds, insertion order

	IsPersonalBest bool
}

// NewSet creates a set stamped with the current millisecond timestamp.
func NewSet(entryID uuid.UUID) *Set {
	return &Set{
		ID:       uuid.New(),
		EntryID:  entryID,
		LoggedAt: time.Now().UnixMilli(),
	}
}

// WithWeight sets the weight measurement.
func (s *Set) WithWeight(w float64) *Set {
	s.Weight = &w
	return s
}

// WithReps sets the repetition count.
func (s *Set) WithReps(r int) *Set {
	s.Reps = &r
	return s
}

// WithDistance sets the distance measurement.
func (s *Set) WithDistance(d float64) *Set {
	s.Distance = &d
	return s
}

// WithTime sets the elapsed or held time in seconds.
func (s *Set) WithTime(seconds float64) *Set {
	s.TimeSeconds = &seconds
	return s
}

// WithNotes sets a free-text note.
func (s *Set) WithNotes(notes string) *Set {
	s.Notes = &notes
	return s
}

// ValidateForType checks that every measurement the exercise type requires
// is present and non-negative. Extra populated fields are rejected so a set
// always matches its type's shape.
func (s *Set) ValidateForType(t ExerciseType) error {
	if !IsValidExerciseType(string(t)) {
		return fmt.Errorf("unknown exercise type: %s", t)
	}
	m := t.Measures()

	if m.Weight && s.Weight == nil {
		return fmt.Errorf("%s set requires weight", t)
	}
	if m.Reps && s.Reps == nil {
		return fmt.Errorf("%s set requires reps", t)
	}
	if m.Distance && s.Distance == nil {
		return fmt.Errorf("%s set requires distance", t)
	}
	if m.Time && s.TimeSeconds == nil {
		return fmt.Errorf("%s set requires time", t)
	}

	if !m.Weight && s.Weight != nil {
		return fmt.Errorf("%s set does not record weight", t)
	}
	if !m.Reps && s.Reps != nil {
		return fmt.Errorf("%s set does not record reps", t)
	}
	if !m.Distance && s.Distance != nil {
		return fmt.Errorf("%s set does not record distance", t)
	}
	if !m.Time && s.TimeSeconds != nil {
		return fmt.Errorf("%s set does not record time", t)
	}

	if s.Weight != nil && *s.Weight < 0 {
		return fmt.Errorf("weight must not be negative")
	}
	if s.Reps != nil && *s.Reps < 0 {
		return fmt.Errorf("reps must not be negative")
	}
	if s.Distance != nil && *s.Distance < 0 {
		return fmt.Errorf("distance must not be negative")
	}
	if s.TimeSeconds != nil && *s.TimeSeconds < 0 {
		return fmt.Errorf("time must not be negative")
	}
	return nil
}

// FormatSeconds renders a second count as m:ss or h:mm:ss.
func FormatSeconds(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
