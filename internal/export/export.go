// Package export writes salary chart results as JSON, CSV or MessagePack.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Supported formats
const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatMsgpack = "msgpack"
)

var (
	// ErrUnknownFormat is returned by NewEncoder for an unsupported format
	ErrUnknownFormat = errors.New("unknown export format")
)

// Table is the flat view of a result used by the CSV encoder
type Table struct {
	Header []string
	Rows   [][]string
}

// Result pairs a structured value with its tabular form
type Result struct {
	Value any
	Table Table
}

// Encoder writes results in one format
type Encoder interface {
	Encode(r Result) error
}

// NewEncoder returns the encoder for format, writing to w
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return &jsonEncoder{w: w}, nil
	case FormatCSV:
		return &csvEncoder{w: w}, nil
	case FormatMsgpack:
		return &msgpackEncoder{w: w}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

type jsonEncoder struct {
	w io.Writer
}

func (e *jsonEncoder) Encode(r Result) error {
	enc := json.NewEncoder(e.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Value); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

type csvEncoder struct {
	w io.Writer
}

func (e *csvEncoder) Encode(r Result) error {
	writer := csv.NewWriter(e.w)
	if err := writer.Write(r.Table.Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := writer.WriteAll(r.Table.Rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

type msgpackEncoder struct {
	w io.Writer
}

func (e *msgpackEncoder) Encode(r Result) error {
	enc := msgpack.NewEncoder(e.w)
	enc.UseCompactInts(true)
	if err := enc.Encode(r.Value); err != nil {
		return fmt.Errorf("failed to encode msgpack: %w", err)
	}
	return nil
}
