// ABOUTME: History aggregation for charts and per-day set listings.
// ABOUTME: Read-only projections over the same join as the day queries.
package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/liftlog/internal/models"
)

// DayStats summarizes one day of an exercise's history for charting.
// Each best is computed independently, not as a composite. BestTime follows
// the type's direction: minimum for speed trials, maximum otherwise.
// TotalVolume sums weight×reps over sets where both are present.
type DayStats struct {
	Date         time.Time
	BestWeight   *float64
	BestReps     *int
	BestDistance *float64
	BestTime     *float64
	TotalVolume  float64
	SetCount     int
}

// ExerciseHistoryForChart groups all historical sets for the named exercise
// in [start, end] by date, ascending. An unknown name returns empty results.
func (d *DB) ExerciseHistoryForChart(name string, start, end time.Time) ([]DayStats, error) {
	history, exerciseType, err := d.historicalSets(name, nil)
	if err != nil {
		return nil, err
	}

	var days []DayStats
	byDate := make(map[time.Time]int)

	for _, h := range history {
		if h.date.Before(start) || h.date.After(end) {
			continue
		}
		idx, ok := byDate[h.date]
		if !ok {
			days = append(days, DayStats{Date: h.date})
			idx = len(days) - 1
			byDate[h.date] = idx
		}
		day := &days[idx]
		s := h.set

		if s.Weight != nil && (day.BestWeight == nil || *s.Weight > *day.BestWeight) {
			day.BestWeight = s.Weight
		}
		if s.Reps != nil && (day.BestReps == nil || *s.Reps > *day.BestReps) {
			day.BestReps = s.Reps
		}
		if s.Distance != nil && (day.BestDistance == nil || *s.Distance > *day.BestDistance) {
			day.BestDistance = s.Distance
		}
		if s.TimeSeconds != nil {
			if day.BestTime == nil {
				day.BestTime = s.TimeSeconds
			} else if exerciseType == models.TypeTimeSpeed {
				if *s.TimeSeconds < *day.BestTime {
					day.BestTime = s.TimeSeconds
				}
			} else if *s.TimeSeconds > *day.BestTime {
				day.BestTime = s.TimeSeconds
			}
		}
		if s.Weight != nil && s.Reps != nil {
			day.TotalVolume += *s.Weight * float64(*s.Reps)
		}
		day.SetCount++
	}

	// historicalSets scans date-ascending, so days is already ordered.
	return days, nil
}

// DayDetail is one day of history with full per-set detail.
type DayDetail struct {
	Date    time.Time
	EntryID uuid.UUID
	Sets    []models.Set
}

// ExerciseHistoryWithSets returns the named exercise's history grouped by
// date, newest first, truncated to the most recent limit days when limit > 0.
func (d *DB) ExerciseHistoryWithSets(name string, limit int) ([]DayDetail, error) {
	history, _, err := d.historicalSets(name, nil)
	if err != nil {
		return nil, err
	}

	var days []DayDetail
	byDate := make(map[time.Time]int)

	// Scan order is date-ascending; build then reverse for newest-first.
	for _, h := range history {
		idx, ok := byDate[h.date]
		if !ok {
			days = append(days, DayDetail{Date: h.date, EntryID: h.set.EntryID})
			idx = len(days) - 1
			byDate[h.date] = idx
		}
		days[idx].Sets = append(days[idx].Sets, *h.set)
	}

	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}

	if limit > 0 && len(days) > limit {
		days = days[:limit]
	}
	return days, nil
}
