// ABOUTME: ExerciseType enum and ExerciseDefinition model for the exercise catalog.
// ABOUTME: Eleven measurement shapes over weight, reps, distance, and time.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExerciseType describes which measurements an exercise records.
// The set is closed: the four measurements taken singly (time splits into
// holds and speed trials) or in pairs.
type ExerciseType string

const (
	TypeWeightReps     ExerciseType = "weight_reps"
	TypeWeightDistance ExerciseType = "weight_distance"
	TypeWeightTime     ExerciseType = "weight_time"
	TypeWeightOnly     ExerciseType = "weight_only"
	TypeRepsOnly       ExerciseType = "reps_only"
	TypeRepsDistance   ExerciseType = "reps_distance"
	TypeRepsTime       ExerciseType = "reps_time"
	TypeDistanceOnly   ExerciseType = "distance_only"
	TypeDistanceTime   ExerciseType = "distance_time"

	// TypeTimeDuration is a hold: a longer time is a better set.
	TypeTimeDuration ExerciseType = "time_duration"
	// TypeTimeSpeed is a timed trial: a shorter time is a better set.
	TypeTimeSpeed ExerciseType = "time_speed"
)

// Measures flags which of the four numeric set fields a type records.
type Measures struct {
	Weight   bool
	Reps     bool
	Distance bool
	Time     bool
}

var typeMeasures = map[ExerciseType]Measures{
	TypeWeightReps:     {Weight: true, Reps: true},
	TypeWeightDistance: {Weight: true, Distance: true},
	TypeWeightTime:     {Weight: true, Time: true},
	TypeWeightOnly:     {Weight: true},
	TypeRepsOnly:       {Reps: true},
	TypeRepsDistance:   {Reps: true, Distance: true},
	TypeRepsTime:       {Reps: true, Time: true},
	TypeDistanceOnly:   {Distance: true},
	TypeDistanceTime:   {Distance: true, Time: true},
	TypeTimeDuration:   {Time: true},
	TypeTimeSpeed:      {Time: true},
}

var typeLabels = map[ExerciseType]string{
	TypeWeightReps:     "Weight × Reps",
	TypeWeightDistance: "Weight × Distance",
	TypeWeightTime:     "Weight × Time",
	TypeWeightOnly:     "Weight",
	TypeRepsOnly:       "Reps",
	TypeRepsDistance:   "Reps × Distance",
	TypeRepsTime:       "Reps × Time",
	TypeDistanceOnly:   "Distance",
	TypeDistanceTime:   "Distance × Time",
	TypeTimeDuration:   "Time (hold)",
	TypeTimeSpeed:      "Time (speed)",
}

// AllExerciseTypes returns all valid exercise types.
var AllExerciseTypes = []ExerciseType{
	TypeWeightReps, TypeWeightDistance, TypeWeightTime, TypeWeightOnly,
	TypeRepsOnly, TypeRepsDistance, TypeRepsTime,
	TypeDistanceOnly, TypeDistanceTime,
	TypeTimeDuration, TypeTimeSpeed,
}

// IsValidExerciseType checks if a string is a valid exercise type.
func IsValidExerciseType(s string) bool {
	_, ok := typeMeasures[ExerciseType(s)]
	return ok
}

// Measures returns the field mask for the type. Unknown types measure nothing.
func (t ExerciseType) Measures() Measures {
	return typeMeasures[t]
}

// Label returns the human-readable label used in exports and listings.
func (t ExerciseType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// ExerciseDefinition is a catalog entry describing one exercise.
// Names are unique; lookups during import compare case-insensitively.
type ExerciseDefinition struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Type        ExerciseType
	Unit        string
	Description *string
	CreatedAt   time.Time
}

// NewExerciseDefinition creates a definition with generated UUID and current timestamp.
func NewExerciseDefinition(name, category string, t ExerciseType, unit string) *ExerciseDefinition {
	return &ExerciseDefinition{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Type:      t,
		Unit:      unit,
		CreatedAt: time.Now(),
	}
}

// WithDescription sets an optional description.
func (e *ExerciseDefinition) WithDescription(desc string) *ExerciseDefinition {
	e.Description = &desc
	return e
}

// Validate checks the fields required before the definition may be stored.
func (e *ExerciseDefinition) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("exercise name is required")
	}
	if e.Category == "" {
		return fmt.Errorf("exercise category is required")
	}
	if !IsValidExerciseType(string(e.Type)) {
		return fmt.Errorf("unknown exercise type: %s", e.Type)
	}
	if e.Unit == "" {
		return fmt.Errorf("exercise unit is required")
	}
	return nil
}
