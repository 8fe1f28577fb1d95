// ABOUTME: Pure set-ranking functions: CompareSets and IsNewPersonalBest.
// ABOUTME: Pair types rank by the product of their two metrics; ties never dethrone.
package models

// Ordering is the result of comparing two sets.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// rankScore reduces a set to a single ranking value for the given type.
// Pair types score as the product of their two metrics (total work).
// The second return is false when the set is missing a metric the type
// requires: such a set is unrankable, never scored as zero.
func rankScore(s *Set, t ExerciseType) (float64, bool) {
	if s == nil {
		return 0, false
	}
	switch t {
	case TypeWeightReps:
		if s.Weight == nil || s.Reps == nil {
			return 0, false
		}
		return *s.Weight * float64(*s.Reps), true
	case TypeWeightDistance:
		if s.Weight == nil || s.Distance == nil {
			return 0, false
		}
		return *s.Weight * *s.Distance, true
	case TypeWeightTime:
		if s.Weight == nil || s.TimeSeconds == nil {
			return 0, false
		}
		return *s.Weight * *s.TimeSeconds, true
	case TypeWeightOnly:
		if s.Weight == nil {
			return 0, false
		}
		return *s.Weight, true
	case TypeRepsOnly:
		if s.Reps == nil {
			return 0, false
		}
		return float64(*s.Reps), true
	case TypeRepsDistance:
		if s.Reps == nil || s.Distance == nil {
			return 0, false
		}
		return float64(*s.Reps) * *s.Distance, true
	case TypeRepsTime:
		if s.Reps == nil || s.TimeSeconds == nil {
			return 0, false
		}
		return float64(*s.Reps) * *s.TimeSeconds, true
	case TypeDistanceOnly:
		if s.Distance == nil {
			return 0, false
		}
		return *s.Distance, true
	case TypeDistanceTime:
		if s.Distance == nil || s.TimeSeconds == nil {
			return 0, false
		}
		return *s.Distance * *s.TimeSeconds, true
	case TypeTimeDuration, TypeTimeSpeed:
		if s.TimeSeconds == nil {
			return 0, false
		}
		return *s.TimeSeconds, true
	}
	return 0, false
}

// CompareSets reports whether set a ranks Greater, Equal, or Less than set b
// under the exercise type's rule. An unrankable set (missing a required
// metric) ranks below any rankable set and Equal to another unrankable one.
func CompareSets(a, b *Set, t ExerciseType) Ordering {
	sa, oka := rankScore(a, t)
	sb, okb := rankScore(b, t)

	switch {
	case !oka && !okb:
		return Equal
	case !oka:
		return Less
	case !okb:
		return Greater
	}

	if t == TypeTimeSpeed {
		// Timed trial: less elapsed time wins.
		sa, sb = -sa, -sb
	}

	switch {
	case sa > sb:
		return Greater
	case sa < sb:
		return Less
	}
	return Equal
}

// IsNewPersonalBest reports whether candidate beats the current best.
// A nil current best means candidate is the first set ever recorded, which
// always counts. A tie keeps the incumbent.
func IsNewPersonalBest(candidate, current *Set, t ExerciseType) bool {
	if current == nil {
		_, ok := rankScore(candidate, t)
		return ok
	}
	return CompareSets(candidate, current, t) == Greater
}
