// Package timerange provides immutable date interval value types used to build
// salary charts: plain time ranges, calendar-month ranges and fiscal quarters.
package timerange

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const day = 24 * time.Hour

var (
	// ErrInvalidRange is returned when a range starts after it ends
	ErrInvalidRange = errors.New("invalid range: from must be <= to")
	// ErrNilRanges is returned when RemoveRanges receives a nil slice
	ErrNilRanges = errors.New("ranges to remove must not be nil")
	// ErrEmptyRanges is returned when RemoveRanges receives an empty slice
	ErrEmptyRanges = errors.New("ranges to remove must not be empty")
	// ErrNoOverlap is returned when a range to remove does not touch the main range
	ErrNoOverlap = errors.New("range to remove does not overlap the main range")
)

// TimeRange is a closed interval [From, To]
type TimeRange struct {
	From time.Time `json:"from" msgpack:"from"`
	To   time.Time `json:"to" msgpack:"to"`
}

// NewTimeRange creates a range, failing when from is after to
func NewTimeRange(from, to time.Time) (TimeRange, error) {
	if from.After(to) {
		return TimeRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return TimeRange{From: from, To: to}, nil
}

// Duration returns the length of the range
func (r TimeRange) Duration() time.Duration {
	return r.To.Sub(r.From)
}

// Contains reports whether t lies inside the range (inclusive on both ends)
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Overlaps reports whether both ranges share at least one instant
func (r TimeRange) Overlaps(other TimeRange) bool {
	return !other.To.Before(r.From) && !other.From.After(r.To)
}

func (r TimeRange) String() string {
	return r.From.Format(time.RFC3339) + " - " + r.To.Format(time.RFC3339)
}

// RemoveRanges subtracts the given ranges from r and returns what survives.
//
// Arithmetic is done with day granularity: a fragment that ends right before a
// removed range ends at EndOfDay(removed.From - 1 day), and a fragment that
// starts right after one starts at StartOfDay(removed.To + 1 day).
// Every range in toRemove must overlap r. Several ranges are sorted and merged
// first, then subtracted one after another.
func (r TimeRange) RemoveRanges(toRemove []TimeRange) ([]TimeRange, error) {
	if toRemove == nil {
		return nil, ErrNilRanges
	}
	if len(toRemove) == 0 {
		return nil, ErrEmptyRanges
	}

	for _, removed := range toRemove {
		if !r.Overlaps(removed) {
			return nil, fmt.Errorf("%w: %s not within %s", ErrNoOverlap, removed, r)
		}
	}

	fragments := []TimeRange{r}
	for _, removed := range mergeRanges(toRemove) {
		next := make([]TimeRange, 0, len(fragments)+1)
		for _, fragment := range fragments {
			next = append(next, fragment.subtract(removed)...)
		}
		fragments = next
	}

	return fragments, nil
}

// subtract removes a single range from r. Non-overlapping input leaves r as is.
func (r TimeRange) subtract(removed TimeRange) []TimeRange {
	if !r.Overlaps(removed) {
		return []TimeRange{r}
	}

	coversStart := !removed.From.After(r.From)
	coversEnd := !removed.To.Before(r.To)

	var result []TimeRange
	switch {
	case coversStart && coversEnd:
		return nil
	case coversStart:
		result = appendIfValid(result, StartOfDay(removed.To.Add(day)), r.To)
	case coversEnd:
		result = appendIfValid(result, r.From, EndOfDay(removed.From.Add(-day)))
	default:
		result = appendIfValid(result, r.From, EndOfDay(removed.From.Add(-day)))
		result = appendIfValid(result, StartOfDay(removed.To.Add(day)), r.To)
	}
	return result
}

// appendIfValid drops fragments collapsed by day rounding
func appendIfValid(ranges []TimeRange, from, to time.Time) []TimeRange {
	if from.After(to) {
		return ranges
	}
	return append(ranges, TimeRange{From: from, To: to})
}

// mergeRanges sorts ranges by start and coalesces overlapping or day-adjacent ones
func mergeRanges(ranges []TimeRange) []TimeRange {
	sorted := make([]TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].From.Before(sorted[j].From)
	})

	merged := []TimeRange{sorted[0]}
	for _, current := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !current.From.After(StartOfDay(last.To.Add(day))) {
			if current.To.After(last.To) {
				last.To = current.To
			}
			continue
		}
		merged = append(merged, current)
	}
	return merged
}

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's calendar day in t's location
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
