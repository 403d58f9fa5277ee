// Package charts provides services for generating salary chart data.
package charts

import (
	"fmt"
	"time"

	"github.com/Techinterview-space/web-api-sub003/internal/modules/grades"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/splitters"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/timerange"
	"github.com/Techinterview-space/web-api-sub003/internal/utils"
	"github.com/Techinterview-space/web-api-sub003/pkg/formulas"
	"github.com/rs/zerolog"
)

// HistoryLookbackDays is the widest window of the historical chart (20 weeks)
const HistoryLookbackDays = 140

// Service builds chart data from caller-supplied salary samples
type Service struct {
	log zerolog.Logger
}

// NewService creates a new charts service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "charts").Logger(),
	}
}

// SplitByLocation separates samples into local and foreign (remote) ones
func SplitByLocation(samples []SalarySample) (local, remote []SalarySample) {
	local = make([]SalarySample, 0, len(samples))
	remote = make([]SalarySample, 0, len(samples))
	for _, s := range samples {
		if s.CompanyLocation == Foreign {
			remote = append(remote, s)
			continue
		}
		local = append(local, s)
	}
	return local, remote
}

// BuildChart builds a week-by-week chart over pre-built buckets
func (s *Service) BuildChart(samples []SalarySample, buckets []splitters.Bucket, includeGrades bool) *SalariesCountWeekByWeekChart {
	defer utils.OperationTimer("build_salaries_chart", s.log)()

	local, remote := SplitByLocation(samples)
	chart := NewSalariesCountWeekByWeekChart(local, remote, buckets, includeGrades)

	s.log.Debug().
		Int("local_samples", len(local)).
		Int("remote_samples", len(remote)).
		Int("buckets", len(buckets)).
		Bool("grades", includeGrades).
		Msg("Built salaries chart")

	return chart
}

// HistoricalWindow returns the window of the historical chart: [from, to]
// clamped to the last HistoryLookbackDays days before to.
func HistoricalWindow(from, to time.Time) (timerange.TimeRange, error) {
	window, err := timerange.NewTimeRange(from, to)
	if err != nil {
		return timerange.TimeRange{}, err
	}

	earliest := to.AddDate(0, 0, -HistoryLookbackDays)
	if window.From.Before(earliest) {
		window.From = earliest
	}
	return window, nil
}

// BuildHistoricalChart builds a chart over weekly buckets of the historical window
func (s *Service) BuildHistoricalChart(samples []SalarySample, from, to time.Time, includeGrades bool) (*SalariesCountWeekByWeekChart, error) {
	window, err := HistoricalWindow(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build historical window: %w", err)
	}
	if !window.From.Equal(from) {
		s.log.Debug().
			Time("requested_from", from).
			Time("clamped_from", window.From).
			Msg("Historical window clamped")
	}

	splitter, err := splitters.NewWeekSplitter(window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("failed to split historical window: %w", err)
	}

	return s.BuildChart(samples, splitter.ToList(), includeGrades), nil
}

// GradeRanges derives grade bands from the samples
func (s *Service) GradeRanges(samples []SalarySample) *grades.SalaryGradeRanges {
	values := make([]grades.GradeValue, 0, len(samples))
	for _, sample := range samples {
		values = append(values, grades.GradeValue{Grade: sample.Grade, Value: sample.Value})
	}

	ranges := grades.NewSalaryGradeRanges(values)
	s.log.Debug().Int("bands", len(ranges.Bands())).Msg("Built salary grade ranges")

	return ranges
}

// Summarize returns overall statistics per location, quartiles included
func (s *Service) Summarize(samples []SalarySample) map[CompanyLocation]LocationSummary {
	local, remote := SplitByLocation(samples)
	return map[CompanyLocation]LocationSummary{
		Local:   summarize(local),
		Foreign: summarize(remote),
	}
}

func summarize(samples []SalarySample) LocationSummary {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		values = append(values, s.Value)
	}

	lo, hi := formulas.MinMax(values)
	return LocationSummary{
		Count:   len(values),
		Median:  formulas.Median(values),
		Average: formulas.Mean(values),
		Min:     lo,
		Max:     hi,
		P25:     formulas.Percentile(values, 0.25),
		P75:     formulas.Percentile(values, 0.75),
	}
}
