package timerange

import (
	"fmt"
	"time"
)

// DateQuarter is the calendar quarter a timestamp belongs to
type DateQuarter struct {
	Year    int `json:"year" msgpack:"year"`
	Quarter int `json:"quarter" msgpack:"quarter"` // 1..4
}

// NewDateQuarter derives the quarter of t
func NewDateQuarter(t time.Time) DateQuarter {
	return DateQuarter{
		Year:    t.Year(),
		Quarter: (int(t.Month()) + 2) / 3,
	}
}

// CurrentQuarter returns the quarter of now
func CurrentQuarter() DateQuarter {
	return NewDateQuarter(time.Now())
}

// Range returns the quarter as a TimeRange in loc
func (q DateQuarter) Range(loc *time.Location) TimeRange {
	first := time.Date(q.Year, time.Month((q.Quarter-1)*3+1), 1, 0, 0, 0, 0, loc)
	last := EndOfDay(first.AddDate(0, 3, -1))
	return TimeRange{From: first, To: last}
}

// Next returns the following quarter
func (q DateQuarter) Next() DateQuarter {
	if q.Quarter == 4 {
		return DateQuarter{Year: q.Year + 1, Quarter: 1}
	}
	return DateQuarter{Year: q.Year, Quarter: q.Quarter + 1}
}

// Previous returns the preceding quarter
func (q DateQuarter) Previous() DateQuarter {
	if q.Quarter == 1 {
		return DateQuarter{Year: q.Year - 1, Quarter: 4}
	}
	return DateQuarter{Year: q.Year, Quarter: q.Quarter - 1}
}

func (q DateQuarter) String() string {
	return fmt.Sprintf("%d-Q%d", q.Year, q.Quarter)
}
