package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Techinterview-space/web-api-sub003/internal/modules/charts"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/grades"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/splitters"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/timerange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func encode(t *testing.T, format string, r Result) string {
	t.Helper()
	var buf bytes.Buffer
	enc, err := NewEncoder(format, &buf)
	require.NoError(t, err)
	require.NoError(t, enc.Encode(r))
	return buf.String()
}

func testBuckets() []splitters.Bucket {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []splitters.Bucket{
		{Start: start, End: start.AddDate(0, 0, 7)},
		{Start: start.AddDate(0, 0, 7), End: start.AddDate(0, 0, 10)},
	}
}

func TestNewEncoder_UnknownFormat(t *testing.T) {
	enc, err := NewEncoder("xml", &bytes.Buffer{})
	assert.Nil(t, enc)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewEncoder_FormatIsCaseInsensitive(t *testing.T) {
	_, err := NewEncoder(" JSON ", &bytes.Buffer{})
	assert.NoError(t, err)
}

func TestBuckets_CSV(t *testing.T) {
	out := encode(t, FormatCSV, Buckets(testBuckets()))

	expected := "start,end\n" +
		"2024-01-01T00:00:00Z,2024-01-08T00:00:00Z\n" +
		"2024-01-08T00:00:00Z,2024-01-11T00:00:00Z\n"
	assert.Equal(t, expected, out)
}

func TestBuckets_JSON(t *testing.T) {
	out := encode(t, FormatJSON, Buckets(testBuckets()))

	var decoded []splitters.Bucket
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, testBuckets(), decoded)
	assert.Contains(t, out, `"start": "2024-01-01T00:00:00Z"`)
}

func TestValueBuckets_MsgpackRoundTrip(t *testing.T) {
	buckets := []splitters.ValueBucket{{From: 0, To: 500}, {From: 500, To: 1000}}

	out := encode(t, FormatMsgpack, ValueBuckets(buckets))

	var decoded []splitters.ValueBucket
	require.NoError(t, msgpack.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, buckets, decoded)
}

func TestRanges_CSV(t *testing.T) {
	ranges := []timerange.TimeRange{{
		From: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 9, 23, 59, 59, 0, time.UTC),
	}}

	out := encode(t, FormatCSV, Ranges(ranges))

	assert.Equal(t, "from,to\n2024-06-01T00:00:00Z,2024-06-09T23:59:59Z\n", out)
}

func TestMonth_JSON(t *testing.T) {
	out := encode(t, FormatJSON, Month(timerange.NewMonthRange(2024, time.February)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 2024.0, decoded["year"])
	assert.Equal(t, 2.0, decoded["month"])
	assert.Equal(t, 29.0, decoded["days_count"])
	assert.Equal(t, 21.0, decoded["work_days_count"])
	assert.Equal(t, "2024-02-01T00:00:00Z", decoded["from"])
}

func TestQuarter_CSV(t *testing.T) {
	q := timerange.DateQuarter{Year: 2024, Quarter: 2}

	out := encode(t, FormatCSV, Quarter(q, time.UTC))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "year,quarter,label,from,to", lines[0])
	assert.Equal(t, "2024,2,2024-Q2,2024-04-01T00:00:00Z,2024-06-30T23:59:59Z", lines[1])
}

func TestGrades_CSVMarksMatches(t *testing.T) {
	bands := []grades.SalaryGradeBand{
		{Grade: grades.Junior, Min: 100, Max: 200},
		{Grade: grades.Lead, Min: 500, Max: 850.5},
	}

	out := encode(t, FormatCSV, Grades(bands, []grades.Grade{grades.Lead}))

	expected := "grade,min,max,matched\n" +
		"Junior,100,200,false\n" +
		"Lead,500,850.5,true\n"
	assert.Equal(t, expected, out)
}

func TestGrades_JSONEmptyMatches(t *testing.T) {
	out := encode(t, FormatJSON, Grades(nil, nil))

	assert.Contains(t, out, `"matches": []`)
}

func TestChart_CSV(t *testing.T) {
	buckets := testBuckets()[:1]
	local := []charts.SalarySample{
		{Value: 100, Grade: grades.Junior, CompanyLocation: charts.Local, Timestamp: buckets[0].Start},
	}
	chart := charts.NewSalariesCountWeekByWeekChart(local, nil, buckets, true)

	out := encode(t, FormatCSV, Chart(chart))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header + 2 overall rows + 2 rows per canonical grade
	require.Len(t, lines, 1+2+2*4)
	assert.Equal(t, "grade,bucket_start,bucket_end,location,count,median,average", lines[0])
	assert.Equal(t, ",2024-01-01T00:00:00Z,2024-01-08T00:00:00Z,Local,1,100,100", lines[1])
	assert.Equal(t, ",2024-01-01T00:00:00Z,2024-01-08T00:00:00Z,Foreign,1,0,0", lines[2])
	assert.Equal(t, "Junior,2024-01-01T00:00:00Z,2024-01-08T00:00:00Z,Local,1,100,100", lines[3])
	assert.Equal(t, "Middle,2024-01-01T00:00:00Z,2024-01-08T00:00:00Z,Local,0,0,0", lines[5])
}

func TestChart_JSON(t *testing.T) {
	chart := charts.NewSalariesCountWeekByWeekChart(nil, nil, testBuckets(), false)

	out := encode(t, FormatJSON, Chart(chart))

	var decoded struct {
		Items         []json.RawMessage `json:"items"`
		GradeItems    []json.RawMessage `json:"grade_items"`
		HasGradeItems bool              `json:"has_grade_items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Items, 2)
	assert.NotNil(t, decoded.GradeItems)
	assert.Empty(t, decoded.GradeItems)
	assert.False(t, decoded.HasGradeItems)
}

func TestSummary_CSV(t *testing.T) {
	summary := map[charts.CompanyLocation]charts.LocationSummary{
		charts.Foreign: {Count: 2, Median: 300, Average: 300, Min: 200, Max: 400, P25: 200, P75: 400},
		charts.Local:   {Count: 1, Median: 100, Average: 100, Min: 100, Max: 100, P25: 100, P75: 100},
	}

	out := encode(t, FormatCSV, Summary(summary))

	expected := "location,count,median,average,min,max,p25,p75\n" +
		"Local,1,100,100,100,100,100,100\n" +
		"Foreign,2,300,300,200,400,200,400\n"
	assert.Equal(t, expected, out)
}

func TestSummary_JSON(t *testing.T) {
	summary := map[charts.CompanyLocation]charts.LocationSummary{
		charts.Local: {Count: 1, Median: 100, P75: 100},
	}

	out := encode(t, FormatJSON, Summary(summary))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Local", decoded[0]["location"])
	assert.Equal(t, 100.0, decoded[0]["p75"])
}
