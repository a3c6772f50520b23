package domain

import (
	"sort"
	"time"
)

// TimeRange is a half-open interval [Start, End). The end instant is
// excluded, so adjacent ranges abut without overlapping: back-to-back
// consultations do not conflict.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the range has positive length
func (r TimeRange) IsValid() bool {
	return r.End.After(r.Start)
}

// Overlaps reports whether two half-open ranges share any instant.
// Границы встык пересечением не считаются: [10:00, 10:30) и [10:30, 11:00)
// не конфликтуют.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains reports whether other lies fully inside r
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// Subtract removes the exclusion from r, returning the surviving
// sub-ranges: zero, one (partial overlap) or two (exclusion strictly
// inside r). Zero-length leftovers are dropped.
func (r TimeRange) Subtract(exclusion TimeRange) []TimeRange {
	if !r.Overlaps(exclusion) {
		return []TimeRange{r}
	}

	result := make([]TimeRange, 0, 2)
	if exclusion.Start.After(r.Start) {
		left := TimeRange{Start: r.Start, End: exclusion.Start}
		if left.IsValid() {
			result = append(result, left)
		}
	}
	if exclusion.End.Before(r.End) {
		right := TimeRange{Start: exclusion.End, End: r.End}
		if right.IsValid() {
			result = append(result, right)
		}
	}
	return result
}

// SubtractAll subtracts every exclusion from every base range and returns
// the surviving free ranges sorted by start time ascending.
func SubtractAll(base []TimeRange, exclusions []TimeRange) []TimeRange {
	free := make([]TimeRange, 0, len(base))
	for _, b := range base {
		if b.IsValid() {
			free = append(free, b)
		}
	}

	for _, excl := range exclusions {
		if !excl.IsValid() {
			continue
		}
		next := make([]TimeRange, 0, len(free)+1)
		for _, f := range free {
			next = append(next, f.Subtract(excl)...)
		}
		free = next
	}

	sort.Slice(free, func(i, j int) bool {
		return free[i].Start.Before(free[j].Start)
	})
	return free
}

// ContainedInAny reports whether candidate lies fully inside at least one
// of the given ranges.
func ContainedInAny(ranges []TimeRange, candidate TimeRange) bool {
	for _, r := range ranges {
		if r.Contains(candidate) {
			return true
		}
	}
	return false
}

// OverlapsAny reports whether candidate overlaps at least one of the
// given exclusion ranges.
func OverlapsAny(ranges []TimeRange, candidate TimeRange) bool {
	for _, r := range ranges {
		if r.Overlaps(candidate) {
			return true
		}
	}
	return false
}
