// Package samples reads salary samples from CSV files.
package samples

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Techinterview-space/web-api-sub003/internal/modules/charts"
	"github.com/Techinterview-space/web-api-sub003/internal/modules/grades"
	"github.com/Techinterview-space/web-api-sub003/internal/utils"
	"github.com/rs/zerolog"
)

// Columns is the expected CSV layout; a header row with these names is optional
var Columns = []string{"value", "grade", "location", "timestamp"}

var (
	// ErrInvalidRow is returned for a row that cannot be turned into a sample
	ErrInvalidRow = errors.New("invalid sample row")
)

// Reader parses CSV rows into salary samples
type Reader struct {
	loc *time.Location
	log zerolog.Logger
}

// NewReader creates a reader that interprets timestamps without an offset in loc
func NewReader(loc *time.Location, log zerolog.Logger) *Reader {
	if loc == nil {
		loc = time.UTC
	}
	return &Reader{
		loc: loc,
		log: log.With().Str("service", "samples").Logger(),
	}
}

// ReadFile reads samples from a CSV file
func (r *Reader) ReadFile(path string) ([]charts.SalarySample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open samples file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			r.log.Warn().Err(closeErr).Str("path", path).Msg("Failed to close samples file")
		}
	}()

	return r.Read(f)
}

// Read parses every row of src. Rows are 1-based in error messages.
func (r *Reader) Read(src io.Reader) ([]charts.SalarySample, error) {
	defer utils.OperationTimer("read_samples", r.log)()

	csvData := csv.NewReader(src)
	csvData.FieldsPerRecord = len(Columns)
	csvData.TrimLeadingSpace = true
	csvData.Comment = '#'

	var out []charts.SalarySample
	for row := 1; ; row++ {
		record, err := csvData.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidRow, err)
		}

		if row == 1 && isHeader(record) {
			continue
		}

		sample, err := r.parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidRow, row, err)
		}
		out = append(out, sample)
	}

	r.log.Debug().Int("samples", len(out)).Msg("Read salary samples")
	return out, nil
}

func (r *Reader) parseRecord(record []string) (charts.SalarySample, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return charts.SalarySample{}, fmt.Errorf("value %q: %w", record[0], err)
	}
	if value < 0 {
		return charts.SalarySample{}, fmt.Errorf("value %q must not be negative", record[0])
	}

	grade, err := grades.ParseGrade(record[1])
	if err != nil {
		return charts.SalarySample{}, err
	}

	location, err := charts.ParseCompanyLocation(record[2])
	if err != nil {
		return charts.SalarySample{}, err
	}

	timestamp, err := utils.ParseTime(record[3], r.loc)
	if err != nil {
		return charts.SalarySample{}, err
	}

	return charts.SalarySample{
		Value:           value,
		Grade:           grade,
		CompanyLocation: location,
		Timestamp:       timestamp,
	}, nil
}

func isHeader(record []string) bool {
	for i, name := range Columns {
		if !strings.EqualFold(strings.TrimSpace(record[i]), name) {
			return false
		}
	}
	return true
}
