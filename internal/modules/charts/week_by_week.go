package charts

import (
	"github.com/Techinterview-space/web-api-sub003/internal/modules/grades"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/splitters"
	"github.com/Techinterview-space/web-api-sub003/pkg/formulas"
)

// SalariesCountWeekByWeekChart shows how salary statistics evolve over a
// sequence of buckets.
//
// Statistics are cumulative: a bucket accounts for every sample with
// Timestamp <= bucket End, not only the samples that fall inside the bucket.
// Count is the number of such samples over both locations, Median and Average
// are computed per location.
type SalariesCountWeekByWeekChart struct {
	Buckets       []splitters.Bucket `json:"buckets" msgpack:"buckets"`
	Items         []ChartItem        `json:"items" msgpack:"items"`
	GradeItems    []GradeChartItem   `json:"grade_items" msgpack:"grade_items"`
	HasGradeItems bool               `json:"has_grade_items" msgpack:"has_grade_items"`
}

// NewSalariesCountWeekByWeekChart builds the chart. Items has one entry per
// bucket. With includeGradeBreakdown, GradeItems has one entry per bucket and
// canonical grade, grouped by grade in rank order.
func NewSalariesCountWeekByWeekChart(
	local []SalarySample,
	remote []SalarySample,
	buckets []splitters.Bucket,
	includeGradeBreakdown bool,
) *SalariesCountWeekByWeekChart {
	chart := &SalariesCountWeekByWeekChart{
		Buckets:    append([]splitters.Bucket(nil), buckets...),
		Items:      buildItems(local, remote, buckets),
		GradeItems: []GradeChartItem{},
	}

	if !includeGradeBreakdown {
		return chart
	}

	chart.GradeItems = make([]GradeChartItem, 0, len(buckets)*len(grades.Canonical))
	for _, grade := range grades.Canonical {
		gradeLocal := filterByGrade(local, grade)
		gradeRemote := filterByGrade(remote, grade)
		for _, item := range buildItems(gradeLocal, gradeRemote, buckets) {
			chart.GradeItems = append(chart.GradeItems, GradeChartItem{
				Grade:     grade,
				ChartItem: item,
			})
		}
	}
	chart.HasGradeItems = true

	return chart
}

// GradeItemsFor returns the grade items of a single grade in bucket order
func (c *SalariesCountWeekByWeekChart) GradeItemsFor(grade grades.Grade) []GradeChartItem {
	result := make([]GradeChartItem, 0, len(c.Buckets))
	for _, item := range c.GradeItems {
		if item.Grade == grade {
			result = append(result, item)
		}
	}
	return result
}

func buildItems(local, remote []SalarySample, buckets []splitters.Bucket) []ChartItem {
	items := make([]ChartItem, 0, len(buckets))
	for _, bucket := range buckets {
		localValues := valuesUpTo(local, bucket)
		remoteValues := valuesUpTo(remote, bucket)
		count := len(localValues) + len(remoteValues)

		items = append(items, ChartItem{
			BucketStart: bucket.Start,
			BucketEnd:   bucket.End,
			Local:       newWeekBucketStat(bucket, count, localValues),
			Remote:      newWeekBucketStat(bucket, count, remoteValues),
		})
	}
	return items
}

func newWeekBucketStat(bucket splitters.Bucket, count int, values []float64) WeekBucketStat {
	return WeekBucketStat{
		BucketStart: bucket.Start,
		BucketEnd:   bucket.End,
		Count:       count,
		Median:      formulas.Median(values),
		Average:     formulas.Mean(values),
	}
}

// valuesUpTo returns the values of samples stamped at or before the bucket end
func valuesUpTo(samples []SalarySample, bucket splitters.Bucket) []float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if !s.Timestamp.After(bucket.End) {
			values = append(values, s.Value)
		}
	}
	return values
}

func filterByGrade(samples []SalarySample, grade grades.Grade) []SalarySample {
	result := make([]SalarySample, 0, len(samples))
	for _, s := range samples {
		if s.Grade == grade {
			result = append(result, s)
		}
	}
	return result
}
