package export

import (
	"strconv"
	"time"

	"github.com/Techinterview-space/web-api-sub003/internal/modules/charts"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/grades"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/splitters"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/timerange"
)

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Buckets renders date buckets
func Buckets(buckets []splitters.Bucket) Result {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{formatTime(b.Start), formatTime(b.End)})
	}
	return Result{
		Value: buckets,
		Table: Table{Header: []string{"start", "end"}, Rows: rows},
	}
}

// ValueBuckets renders numeric axis buckets
func ValueBuckets(buckets []splitters.ValueBucket) Result {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{formatFloat(b.From), formatFloat(b.To)})
	}
	return Result{
		Value: buckets,
		Table: Table{Header: []string{"from", "to"}, Rows: rows},
	}
}

// Ranges renders the fragments left after subtracting ranges
func Ranges(ranges []timerange.TimeRange) Result {
	rows := make([][]string, 0, len(ranges))
	for _, r := range ranges {
		rows = append(rows, []string{formatTime(r.From), formatTime(r.To)})
	}
	return Result{
		Value: ranges,
		Table: Table{Header: []string{"from", "to"}, Rows: rows},
	}
}

// MonthSummary is a month range with its working day count
type MonthSummary struct {
	timerange.MonthRange
	WorkDaysCount int `json:"work_days_count" msgpack:"work_days_count"`
}

// Month renders a month range
func Month(m timerange.MonthRange) Result {
	summary := MonthSummary{MonthRange: m, WorkDaysCount: m.WorkDaysCount()}
	return Result{
		Value: summary,
		Table: Table{
			Header: []string{"year", "month", "from", "to", "days_count", "work_days_count"},
			Rows: [][]string{{
				strconv.Itoa(m.Year),
				strconv.Itoa(int(m.Month)),
				formatTime(m.From),
				formatTime(m.To),
				strconv.Itoa(m.DaysCount),
				strconv.Itoa(summary.WorkDaysCount),
			}},
		},
	}
}

// QuarterSummary is a quarter with its date range
type QuarterSummary struct {
	timerange.DateQuarter
	Label  string              `json:"label" msgpack:"label"`
	Period timerange.TimeRange `json:"range" msgpack:"range"`
}

// Quarter renders a quarter and its range in loc
func Quarter(q timerange.DateQuarter, loc *time.Location) Result {
	summary := QuarterSummary{DateQuarter: q, Label: q.String(), Period: q.Range(loc)}
	return Result{
		Value: summary,
		Table: Table{
			Header: []string{"year", "quarter", "label", "from", "to"},
			Rows: [][]string{{
				strconv.Itoa(q.Year),
				strconv.Itoa(q.Quarter),
				summary.Label,
				formatTime(summary.Period.From),
				formatTime(summary.Period.To),
			}},
		},
	}
}

// GradeReport is the banding of a salary or salary range
type GradeReport struct {
	Bands   []grades.SalaryGradeBand `json:"bands" msgpack:"bands"`
	Matches []grades.Grade           `json:"matches" msgpack:"matches"`
}

// Grades renders grade bands and the grades a query falls into
func Grades(bands []grades.SalaryGradeBand, matches []grades.Grade) Result {
	matched := make(map[grades.Grade]bool, len(matches))
	for _, g := range matches {
		matched[g] = true
	}

	rows := make([][]string, 0, len(bands))
	for _, b := range bands {
		rows = append(rows, []string{
			b.Grade.String(),
			formatFloat(b.Min),
			formatFloat(b.Max),
			strconv.FormatBool(matched[b.Grade]),
		})
	}
	if matches == nil {
		matches = []grades.Grade{}
	}
	return Result{
		Value: GradeReport{Bands: bands, Matches: matches},
		Table: Table{Header: []string{"grade", "min", "max", "matched"}, Rows: rows},
	}
}

// Chart renders a week-by-week chart; grade rows follow the overall rows
func Chart(chart *charts.SalariesCountWeekByWeekChart) Result {
	rows := make([][]string, 0, 2*(len(chart.Items)+len(chart.GradeItems)))
	for _, item := range chart.Items {
		rows = appendChartRows(rows, "", item)
	}
	for _, grade := range grades.Canonical {
		for _, item := range chart.GradeItemsFor(grade) {
			rows = appendChartRows(rows, grade.String(), item.ChartItem)
		}
	}
	return Result{
		Value: chart,
		Table: Table{
			Header: []string{"grade", "bucket_start", "bucket_end", "location", "count", "median", "average"},
			Rows:   rows,
		},
	}
}

func appendChartRows(rows [][]string, grade string, item charts.ChartItem) [][]string {
	for _, stat := range []struct {
		location charts.CompanyLocation
		value    charts.WeekBucketStat
	}{
		{charts.Local, item.Local},
		{charts.Foreign, item.Remote},
	} {
		rows = append(rows, []string{
			grade,
			formatTime(item.BucketStart),
			formatTime(item.BucketEnd),
			stat.location.String(),
			strconv.Itoa(stat.value.Count),
			formatFloat(stat.value.Median),
			formatFloat(stat.value.Average),
		})
	}
	return rows
}

// LocationReport is the summary of one company location
type LocationReport struct {
	Location charts.CompanyLocation `json:"location" msgpack:"location"`
	charts.LocationSummary
}

// Summary renders per-location statistics, local first
func Summary(summary map[charts.CompanyLocation]charts.LocationSummary) Result {
	reports := make([]LocationReport, 0, 2)
	rows := make([][]string, 0, 2)
	for _, location := range []charts.CompanyLocation{charts.Local, charts.Foreign} {
		s, ok := summary[location]
		if !ok {
			continue
		}
		reports = append(reports, LocationReport{Location: location, LocationSummary: s})
		rows = append(rows, []string{
			location.String(),
			strconv.Itoa(s.Count),
			formatFloat(s.Median),
			formatFloat(s.Average),
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.P25),
			formatFloat(s.P75),
		})
	}
	return Result{
		Value: reports,
		Table: Table{
			Header: []string{"location", "count", "median", "average", "min", "max", "p25", "p75"},
			Rows:   rows,
		},
	}
}
