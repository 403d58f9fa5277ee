package splitters

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidStep is returned for non-positive axis steps
	ErrInvalidStep = errors.New("step must be positive")
	// ErrInvalidValueRange is returned when min is greater than max
	ErrInvalidValueRange = errors.New("invalid value range: min must be <= max")
)

// ValueBucket is a [From, To] slice of a numeric axis
type ValueBucket struct {
	From float64 `json:"from" msgpack:"from"`
	To   float64 `json:"to" msgpack:"to"`
}

// RoundedValuesByRangesSplitter splits [min, max] into buckets whose
// boundaries are multiples of step. min is floored and max is ceiled to the
// step, so the axis always covers the input.
type RoundedValuesByRangesSplitter struct {
	min  decimal.Decimal
	max  decimal.Decimal
	step decimal.Decimal
}

// NewRoundedValuesByRangesSplitter validates the input and rounds the bounds
func NewRoundedValuesByRangesSplitter(minValue, maxValue, step float64) (*RoundedValuesByRangesSplitter, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	if minValue > maxValue {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidValueRange, minValue, maxValue)
	}

	s := decimal.NewFromFloat(step)
	return &RoundedValuesByRangesSplitter{
		min:  decimal.NewFromFloat(minValue).Div(s).Floor().Mul(s),
		max:  decimal.NewFromFloat(maxValue).Div(s).Ceil().Mul(s),
		step: s,
	}, nil
}

// RoundedMin returns the floored lower bound
func (s *RoundedValuesByRangesSplitter) RoundedMin() float64 {
	return s.min.InexactFloat64()
}

// RoundedMax returns the ceiled upper bound
func (s *RoundedValuesByRangesSplitter) RoundedMax() float64 {
	return s.max.InexactFloat64()
}

// Count returns ceil((roundedMax - roundedMin) / step), at least one
func (s *RoundedValuesByRangesSplitter) Count() int {
	count := int(s.max.Sub(s.min).Div(s.step).Ceil().IntPart())
	if count == 0 {
		return 1
	}
	return count
}

// ToList returns the axis buckets in ascending order
func (s *RoundedValuesByRangesSplitter) ToList() []ValueBucket {
	count := s.Count()
	buckets := make([]ValueBucket, 0, count)
	from := s.min
	for i := 0; i < count; i++ {
		to := from.Add(s.step)
		buckets = append(buckets, ValueBucket{
			From: from.InexactFloat64(),
			To:   to.InexactFloat64(),
		})
		from = to
	}
	return buckets
}
