package charts_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/Techinterview-space/web-api-sub003/internal/modules/charts"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/grades"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/timerange"
	testingpkg "github.com/Techinterview-space/web-api-sub003/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *charts.Service {
	return charts.NewService(zerolog.New(nil).Level(zerolog.Disabled))
}

func TestSplitByLocation(t *testing.T) {
	local, remote := charts.SplitByLocation(testingpkg.NewSalarySampleFixtures())

	assert.Len(t, local, 7)
	assert.Len(t, remote, 5)
	for _, s := range local {
		assert.Equal(t, charts.Local, s.CompanyLocation)
	}
	for _, s := range remote {
		assert.Equal(t, charts.Foreign, s.CompanyLocation)
	}
}

func TestService_BuildChart(t *testing.T) {
	service := newTestService()
	buckets := fixtureBuckets(t)

	chart := service.BuildChart(testingpkg.NewSalarySampleFixtures(), buckets, true)

	require.Len(t, chart.Items, 3)
	assert.Equal(t, 12, chart.Items[2].Local.Count)
	assert.True(t, chart.HasGradeItems)
	assert.Len(t, chart.GradeItems, 12)
}

func TestHistoricalWindow(t *testing.T) {
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		from         time.Time
		expectedFrom time.Time
	}{
		{
			name:         "short window kept",
			from:         to.AddDate(0, 0, -30),
			expectedFrom: to.AddDate(0, 0, -30),
		},
		{
			name:         "long window clamped",
			from:         to.AddDate(-1, 0, 0),
			expectedFrom: to.AddDate(0, 0, -charts.HistoryLookbackDays),
		},
		{
			name:         "exact lookback kept",
			from:         to.AddDate(0, 0, -charts.HistoryLookbackDays),
			expectedFrom: to.AddDate(0, 0, -charts.HistoryLookbackDays),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := charts.HistoricalWindow(tt.from, to)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFrom, window.From)
			assert.Equal(t, to, window.To)
		})
	}
}

func TestHistoricalWindow_InvalidRange(t *testing.T) {
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := charts.HistoricalWindow(to.Add(time.Hour), to)
	assert.ErrorIs(t, err, timerange.ErrInvalidRange)
}

func TestService_BuildHistoricalChart(t *testing.T) {
	service := newTestService()
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	chart, err := service.BuildHistoricalChart(nil, to.AddDate(-2, 0, 0), to, false)
	require.NoError(t, err)

	require.Len(t, chart.Buckets, 20)
	assert.Equal(t, to.AddDate(0, 0, -charts.HistoryLookbackDays), chart.Buckets[0].Start)
	assert.Equal(t, to, chart.Buckets[19].End)
	assert.Len(t, chart.Items, 20)
	assert.False(t, chart.HasGradeItems)
}

func TestService_BuildHistoricalChart_AcrossDSTChange(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	service := newTestService()
	to := time.Date(2024, 12, 1, 0, 0, 0, 0, berlin)

	chart, err := service.BuildHistoricalChart(nil, to.AddDate(-1, 0, 0), to, false)
	require.NoError(t, err)

	require.Len(t, chart.Buckets, 20)
	assert.Equal(t, to.AddDate(0, 0, -charts.HistoryLookbackDays), chart.Buckets[0].Start)
	assert.Equal(t, to, chart.Buckets[19].End)
	for _, b := range chart.Buckets {
		assert.Equal(t, 0, b.Start.Hour())
		assert.Equal(t, time.Sunday, b.Start.Weekday())
	}
}

func TestService_BuildHistoricalChart_InvalidRange(t *testing.T) {
	service := newTestService()
	to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	chart, err := service.BuildHistoricalChart(nil, to.AddDate(0, 0, 1), to, false)
	assert.Nil(t, chart)
	assert.ErrorIs(t, err, timerange.ErrInvalidRange)
}

func TestService_GradeRanges(t *testing.T) {
	service := newTestService()

	ranges := service.GradeRanges(testingpkg.NewSalarySampleFixtures())

	expected := []grades.SalaryGradeBand{
		{Grade: grades.Junior, Min: 100000, Max: 150000},
		{Grade: grades.Middle, Min: 200000, Max: 300000},
		{Grade: grades.Senior, Min: 400000, Max: 550000},
		{Grade: grades.Lead, Min: 700000, Max: 850000},
	}
	assert.Equal(t, expected, ranges.Bands())
	assert.Equal(t, []grades.Grade{grades.Junior}, ranges.InWhatRangeValueIs(50000, nil))
}

func TestService_Summarize(t *testing.T) {
	service := newTestService()

	summary := service.Summarize(testingpkg.NewSalarySampleFixtures())

	local := summary[charts.Local]
	assert.Equal(t, 7, local.Count)
	assert.Equal(t, 200000.0, local.Median)
	assert.InDelta(t, 270000.0, local.Average, 1e-6)
	assert.Equal(t, 90000.0, local.Min)
	assert.Equal(t, 700000.0, local.Max)
	assert.Equal(t, 100000.0, local.P25)
	assert.Equal(t, 400000.0, local.P75)

	remote := summary[charts.Foreign]
	assert.Equal(t, 5, remote.Count)
	assert.Equal(t, 500000.0, remote.Median)
	assert.Equal(t, 120000.0, remote.Min)
	assert.Equal(t, 850000.0, remote.Max)
	assert.Equal(t, 300000.0, remote.P25)
	assert.Equal(t, 550000.0, remote.P75)
}

func TestService_SummarizeEmpty(t *testing.T) {
	summary := newTestService().Summarize(nil)

	assert.Equal(t, charts.LocationSummary{}, summary[charts.Local])
	assert.Equal(t, charts.LocationSummary{}, summary[charts.Foreign])
}

func TestParseCompanyLocation(t *testing.T) {
	tests := []struct {
		input    string
		expected charts.CompanyLocation
		wantErr  bool
	}{
		{"local", charts.Local, false},
		{" LOCAL ", charts.Local, false},
		{"foreign", charts.Foreign, false},
		{"Remote", charts.Foreign, false},
		{"mars", charts.Local, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := charts.ParseCompanyLocation(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
