package charts

import (
	"fmt"
	"strings"
	"time"

	"github.com/Techinterview-space/web-api-sub003/internal/modules/grades"
)

// CompanyLocation tells whether the employer is local or foreign (remote)
type CompanyLocation int

const (
	Local CompanyLocation = iota
	Foreign
)

func (l CompanyLocation) String() string {
	switch l {
	case Local:
		return "Local"
	case Foreign:
		return "Foreign"
	}
	return fmt.Sprintf("CompanyLocation(%d)", int(l))
}

// ParseCompanyLocation accepts "local", "foreign" and "remote" in any case
func ParseCompanyLocation(s string) (CompanyLocation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return Local, nil
	case "foreign", "remote":
		return Foreign, nil
	}
	return Local, fmt.Errorf("unknown company location %q", s)
}

func (l CompanyLocation) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *CompanyLocation) UnmarshalText(text []byte) error {
	parsed, err := ParseCompanyLocation(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// SalarySample is a single salary record supplied by the caller
type SalarySample struct {
	Value           float64         `json:"value" msgpack:"value"`
	Grade           grades.Grade    `json:"grade" msgpack:"grade"`
	CompanyLocation CompanyLocation `json:"company_location" msgpack:"company_location"`
	Timestamp       time.Time       `json:"timestamp" msgpack:"timestamp"`
}

// WeekBucketStat holds the statistics of one bucket for one location
type WeekBucketStat struct {
	BucketStart time.Time `json:"bucket_start" msgpack:"bucket_start"`
	BucketEnd   time.Time `json:"bucket_end" msgpack:"bucket_end"`
	Count       int       `json:"count" msgpack:"count"`
	Median      float64   `json:"median" msgpack:"median"`
	Average     float64   `json:"average" msgpack:"average"`
}

// ChartItem is the pair of location stats for a single bucket
type ChartItem struct {
	BucketStart time.Time      `json:"bucket_start" msgpack:"bucket_start"`
	BucketEnd   time.Time      `json:"bucket_end" msgpack:"bucket_end"`
	Local       WeekBucketStat `json:"local" msgpack:"local"`
	Remote      WeekBucketStat `json:"remote" msgpack:"remote"`
}

// GradeChartItem is a ChartItem restricted to one grade
type GradeChartItem struct {
	Grade grades.Grade `json:"grade" msgpack:"grade"`
	ChartItem
}

// LocationSummary describes all samples of one location
type LocationSummary struct {
	Count   int     `json:"count" msgpack:"count"`
	Median  float64 `json:"median" msgpack:"median"`
	Average float64 `json:"average" msgpack:"average"`
	Min     float64 `json:"min" msgpack:"min"`
	Max     float64 `json:"max" msgpack:"max"`
	P25     float64 `json:"p25" msgpack:"p25"`
	P75     float64 `json:"p75" msgpack:"p75"`
}
