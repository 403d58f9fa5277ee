package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthRange(t *testing.T) {
	m := NewMonthRange(2024, time.February)

	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, time.February, m.Month)
	assert.Equal(t, date(2024, 2, 1), m.From)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), m.To)
	assert.Equal(t, 29, m.DaysCount)
}

func TestNewMonthRangeFromDates(t *testing.T) {
	tests := []struct {
		name    string
		from    time.Time
		to      time.Time
		wantErr error
		days    int
	}{
		{"same month", date(2020, 6, 1), endOf(2020, 6, 30), nil, 30},
		{"single day", date(2020, 6, 5), endOf(2020, 6, 5), nil, 1},
		{"different months", date(2020, 6, 1), date(2020, 7, 1), ErrCrossMonth, 0},
		{"december to january", date(2020, 12, 1), date(2021, 1, 1), ErrCrossMonth, 0},
		{"same month different years", date(2020, 6, 1), date(2021, 6, 1), ErrCrossYear, 0},
		{"reversed", date(2020, 6, 10), date(2020, 6, 1), ErrInvalidRange, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMonthRangeFromDates(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.from.Year(), m.Year)
			assert.Equal(t, tt.from.Month(), m.Month)
			assert.Equal(t, tt.days, m.DaysCount)
		})
	}
}

func TestMonthRange_WorkDaysCount(t *testing.T) {
	tests := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.January, 23},
		{2024, time.February, 21},
		{2023, time.February, 20},
		{2020, time.June, 22},
		{2021, time.August, 22},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, NewMonthRange(tt.year, tt.month).WorkDaysCount())
		})
	}
}

func TestMonthRange_WorkDaysCountIgnoresPartialRange(t *testing.T) {
	m, err := NewMonthRangeFromDates(date(2024, 1, 10), endOf(2024, 1, 12))
	require.NoError(t, err)
	assert.Equal(t, 23, m.WorkDaysCount())
}

func TestMonthRange_NextAndPrevious(t *testing.T) {
	m := NewMonthRange(2020, time.December)

	next := m.Next()
	assert.Equal(t, 2021, next.Year)
	assert.Equal(t, time.January, next.Month)

	prev := NewMonthRange(2021, time.January).Previous()
	assert.Equal(t, 2020, prev.Year)
	assert.Equal(t, time.December, prev.Month)
	assert.Equal(t, 31, prev.DaysCount)
}
