// Package testing provides fixtures shared by the salary chart tests.
package testing

import (
	"time"

	"github.com/Techinterview-space/web-api-sub003/internal/modules/charts"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/grades"
)

// FixtureStart is the timestamp of the earliest fixture sample
var FixtureStart = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// NewSalarySampleFixtures returns twelve samples spread over three weeks.
//
//	week 1: local Junior 100000, local Middle 200000, remote Senior 500000, remote Lead 850000
//	week 2: local Junior 150000, local Senior 400000, remote Middle 300000, remote Junior 120000
//	week 3: local Lead 700000, local Middle 250000, remote Senior 550000, local Unknown 90000
func NewSalarySampleFixtures() []charts.SalarySample {
	week := 7 * 24 * time.Hour
	at := func(w int, hours int) time.Time {
		return FixtureStart.Add(time.Duration(w)*week + time.Duration(hours)*time.Hour)
	}

	return []charts.SalarySample{
		{Value: 100000, Grade: grades.Junior, CompanyLocation: charts.Local, Timestamp: at(0, 1)},
		{Value: 200000, Grade: grades.Middle, CompanyLocation: charts.Local, Timestamp: at(0, 2)},
		{Value: 500000, Grade: grades.Senior, CompanyLocation: charts.Foreign, Timestamp: at(0, 3)},
		{Value: 850000, Grade: grades.Lead, CompanyLocation: charts.Foreign, Timestamp: at(0, 4)},

		{Value: 150000, Grade: grades.Junior, CompanyLocation: charts.Local, Timestamp: at(1, 1)},
		{Value: 400000, Grade: grades.Senior, CompanyLocation: charts.Local, Timestamp: at(1, 2)},
		{Value: 300000, Grade: grades.Middle, CompanyLocation: charts.Foreign, Timestamp: at(1, 3)},
		{Value: 120000, Grade: grades.Junior, CompanyLocation: charts.Foreign, Timestamp: at(1, 4)},

		{Value: 700000, Grade: grades.Lead, CompanyLocation: charts.Local, Timestamp: at(2, 1)},
		{Value: 250000, Grade: grades.Middle, CompanyLocation: charts.Local, Timestamp: at(2, 2)},
		{Value: 550000, Grade: grades.Senior, CompanyLocation: charts.Foreign, Timestamp: at(2, 3)},
		{Value: 90000, Grade: grades.Unknown, CompanyLocation: charts.Local, Timestamp: at(2, 4)},
	}
}

// FixtureWindow returns the three fixture weeks: midnight of FixtureStart
// plus 21 days
func FixtureWindow() (time.Time, time.Time) {
	start := time.Date(FixtureStart.Year(), FixtureStart.Month(), FixtureStart.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 21)
}
