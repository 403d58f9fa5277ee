// Package splitters carves date ranges and numeric axes into contiguous
// buckets for charting.
package splitters

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/Techinterview-space/web-api-sub003/internal/modules/timerange"
)

const (
	minutesPerDay = 24 * 60
	// WeekIntervalMinutes is the bucket width used by WeekSplitter
	WeekIntervalMinutes = 7 * minutesPerDay
)

var (
	// ErrInvalidInterval is returned for non-positive bucket widths
	ErrInvalidInterval = errors.New("interval must be positive")
)

// Bucket is a [Start, End] slice of a split range.
// Consecutive buckets share their boundary: b[i].End == b[i+1].Start.
type Bucket struct {
	Start time.Time `json:"start" msgpack:"start"`
	End   time.Time `json:"end" msgpack:"end"`
}

// Contains reports whether t falls into the bucket (inclusive)
func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}

// RangeSplitter produces an ordered, contiguous bucket sequence
type RangeSplitter interface {
	// All returns a finite sequence that can be ranged over any number of times
	All() iter.Seq[Bucket]
	// ToList collects All into a slice
	ToList() []Bucket
}

// DateTimeRangeSplitter splits [start, end] into buckets of a fixed width.
// The last bucket is shorter when the span is not a multiple of the width.
type DateTimeRangeSplitter struct {
	start    time.Time
	end      time.Time
	interval time.Duration
	// days > 0 steps in calendar days instead of interval
	days int
}

// NewDateTimeRangeSplitter validates the range and interval
func NewDateTimeRangeSplitter(start, end time.Time, intervalMinutes int) (*DateTimeRangeSplitter, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidInterval, intervalMinutes)
	}
	if _, err := timerange.NewTimeRange(start, end); err != nil {
		return nil, err
	}

	return &DateTimeRangeSplitter{
		start:    start,
		end:      end,
		interval: time.Duration(intervalMinutes) * time.Minute,
	}, nil
}

// NewWeekSplitter splits [start, end] into 7-day buckets anchored at start.
// Boundaries advance by calendar week, so they keep their wall-clock time
// across DST changes and a span of N*7 calendar days gives N buckets.
func NewWeekSplitter(start, end time.Time) (*DateTimeRangeSplitter, error) {
	s, err := NewDateTimeRangeSplitter(start, end, WeekIntervalMinutes)
	if err != nil {
		return nil, err
	}
	s.days = 7
	return s, nil
}

// Count returns the number of buckets All yields
func (s *DateTimeRangeSplitter) Count() int {
	if s.days > 0 {
		return dayBucketCount(s.start, s.end, s.days)
	}
	return bucketCount(s.start, s.end, s.interval)
}

func (s *DateTimeRangeSplitter) All() iter.Seq[Bucket] {
	if s.days > 0 {
		return splitDaysSeq(s.start, s.end, s.days)
	}
	return splitSeq(s.start, s.end, s.interval)
}

func (s *DateTimeRangeSplitter) ToList() []Bucket {
	return collect(s.All(), s.Count())
}

// DateTimeRoundedRangeSplitter is a DateTimeRangeSplitter whose boundaries are
// aligned to the clock. Intervals of a day or more start at midnight and
// advance in whole days; shorter intervals start at the closest multiple of
// the interval counted from midnight.
type DateTimeRoundedRangeSplitter struct {
	start    time.Time
	end      time.Time
	interval time.Duration
}

// NewDateTimeRoundedRangeSplitter validates the input and aligns the start
func NewDateTimeRoundedRangeSplitter(start, end time.Time, intervalMinutes int) (*DateTimeRoundedRangeSplitter, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidInterval, intervalMinutes)
	}
	if _, err := timerange.NewTimeRange(start, end); err != nil {
		return nil, err
	}

	midnight := timerange.StartOfDay(start)
	var (
		alignedStart time.Time
		interval     time.Duration
	)
	if intervalMinutes >= minutesPerDay {
		days := intervalMinutes / minutesPerDay
		interval = time.Duration(days) * 24 * time.Hour
		alignedStart = midnight
	} else {
		interval = time.Duration(intervalMinutes) * time.Minute
		steps := start.Sub(midnight) / interval
		alignedStart = midnight.Add(steps * interval)
	}

	return &DateTimeRoundedRangeSplitter{
		start:    alignedStart,
		end:      end,
		interval: interval,
	}, nil
}

// Start returns the aligned start of the first bucket
func (s *DateTimeRoundedRangeSplitter) Start() time.Time {
	return s.start
}

// Count returns the number of buckets between the aligned start and end
func (s *DateTimeRoundedRangeSplitter) Count() int {
	if s.interval >= 24*time.Hour {
		return dayBucketCount(s.start, s.end, int(s.interval/(24*time.Hour)))
	}
	return bucketCount(s.start, s.end, s.interval)
}

func (s *DateTimeRoundedRangeSplitter) All() iter.Seq[Bucket] {
	if s.interval >= 24*time.Hour {
		return splitDaysSeq(s.start, s.end, int(s.interval/(24*time.Hour)))
	}
	return splitSeq(s.start, s.end, s.interval)
}

func (s *DateTimeRoundedRangeSplitter) ToList() []Bucket {
	return collect(s.All(), s.Count())
}

func bucketCount(start, end time.Time, interval time.Duration) int {
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	count := span / interval
	if span%interval != 0 {
		count++
	}
	return int(count)
}

// dayBucketCount counts the buckets splitDaysSeq yields
func dayBucketCount(start, end time.Time, days int) int {
	count := 0
	for from := start; from.Before(end); from = from.AddDate(0, 0, days) {
		count++
	}
	return count
}

func splitSeq(start, end time.Time, interval time.Duration) iter.Seq[Bucket] {
	return func(yield func(Bucket) bool) {
		for from := start; from.Before(end); from = from.Add(interval) {
			to := from.Add(interval)
			if to.After(end) {
				to = end
			}
			if !yield(Bucket{Start: from, End: to}) {
				return
			}
		}
	}
}

// splitDaysSeq steps with AddDate so boundaries stay on midnight across DST shifts
func splitDaysSeq(start, end time.Time, days int) iter.Seq[Bucket] {
	return func(yield func(Bucket) bool) {
		for from := start; from.Before(end); from = from.AddDate(0, 0, days) {
			to := from.AddDate(0, 0, days)
			if to.After(end) {
				to = end
			}
			if !yield(Bucket{Start: from, End: to}) {
				return
			}
		}
	}
}

func collect(seq iter.Seq[Bucket], capacity int) []Bucket {
	buckets := make([]Bucket, 0, capacity)
	for b := range seq {
		buckets = append(buckets, b)
	}
	return buckets
}
