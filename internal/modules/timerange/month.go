package timerange

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrCrossMonth is returned when a month range would span two months
	ErrCrossMonth = errors.New("month range must start and end in the same month")
	// ErrCrossYear is returned when a month range would span two years
	ErrCrossYear = errors.New("month range must start and end in the same year")
)

// MonthRange is a TimeRange constrained to a single calendar month
type MonthRange struct {
	TimeRange
	Year      int        `json:"year" msgpack:"year"`
	Month     time.Month `json:"month" msgpack:"month"`
	DaysCount int        `json:"days_count" msgpack:"days_count"`
}

// NewMonthRange returns the whole month in UTC:
// [day 1 00:00:00, last day 23:59:59]
func NewMonthRange(year int, month time.Month) MonthRange {
	return NewMonthRangeIn(year, month, time.UTC)
}

// NewMonthRangeIn is NewMonthRange for an explicit location
func NewMonthRangeIn(year int, month time.Month, loc *time.Location) MonthRange {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := EndOfDay(first.AddDate(0, 1, -1))

	return MonthRange{
		TimeRange: TimeRange{From: first, To: last},
		Year:      first.Year(),
		Month:     first.Month(),
		DaysCount: last.Day(),
	}
}

// NewMonthRangeFromDates builds a month range from two instants of the same month
func NewMonthRangeFromDates(from, to time.Time) (MonthRange, error) {
	if from.Month() != to.Month() {
		return MonthRange{}, fmt.Errorf("%w: %s and %s", ErrCrossMonth, from.Month(), to.Month())
	}
	if from.Year() != to.Year() {
		return MonthRange{}, fmt.Errorf("%w: %d and %d", ErrCrossYear, from.Year(), to.Year())
	}

	r, err := NewTimeRange(from, to)
	if err != nil {
		return MonthRange{}, err
	}

	return MonthRange{
		TimeRange: r,
		Year:      from.Year(),
		Month:     from.Month(),
		DaysCount: to.Day() - from.Day() + 1,
	}, nil
}

// WorkDaysCount returns the number of Monday-Friday days in the calendar month
func (m MonthRange) WorkDaysCount() int {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for d := first; d.Month() == m.Month; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// Next returns the following whole month in the same location
func (m MonthRange) Next() MonthRange {
	next := time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, m.From.Location())
	return NewMonthRangeIn(next.Year(), next.Month(), next.Location())
}

// Previous returns the preceding whole month in the same location
func (m MonthRange) Previous() MonthRange {
	prev := time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, m.From.Location())
	return NewMonthRangeIn(prev.Year(), prev.Month(), prev.Location())
}
