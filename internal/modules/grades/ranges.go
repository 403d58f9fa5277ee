package grades

// GradeValue is a single observed salary for a grade
type GradeValue struct {
	Grade Grade
	Value float64
}

// SalaryGradeBand is the [Min, Max] salary range observed for a grade
type SalaryGradeBand struct {
	Grade Grade   `json:"grade" msgpack:"grade"`
	Min   float64 `json:"min" msgpack:"min"`
	Max   float64 `json:"max" msgpack:"max"`
}

// Contains reports whether value lies within the band (inclusive)
func (b SalaryGradeBand) Contains(value float64) bool {
	return value >= b.Min && value <= b.Max
}

// Intersects reports whether the band shares any value with [from, to]
func (b SalaryGradeBand) Intersects(from, to float64) bool {
	return b.Min <= to && b.Max >= from
}

// SalaryGradeRanges holds one band per canonical grade that had samples
type SalaryGradeRanges struct {
	bands [len(Canonical)]*SalaryGradeBand
}

// NewSalaryGradeRanges derives the bands from the given samples.
// Samples of non-canonical grades are ignored.
func NewSalaryGradeRanges(samples []GradeValue) *SalaryGradeRanges {
	r := &SalaryGradeRanges{}
	for _, s := range samples {
		idx, ok := canonicalIndex(s.Grade)
		if !ok {
			continue
		}

		band := r.bands[idx]
		if band == nil {
			r.bands[idx] = &SalaryGradeBand{Grade: s.Grade, Min: s.Value, Max: s.Value}
			continue
		}
		if s.Value < band.Min {
			band.Min = s.Value
		}
		if s.Value > band.Max {
			band.Max = s.Value
		}
	}
	return r
}

// HasBands reports whether at least one grade has a band
func (r *SalaryGradeRanges) HasBands() bool {
	for _, band := range r.bands {
		if band != nil {
			return true
		}
	}
	return false
}

// Band returns the band of a grade, if that grade had samples
func (r *SalaryGradeRanges) Band(g Grade) (SalaryGradeBand, bool) {
	idx, ok := canonicalIndex(g)
	if !ok || r.bands[idx] == nil {
		return SalaryGradeBand{}, false
	}
	return *r.bands[idx], true
}

// Bands returns the existing bands ordered by grade rank
func (r *SalaryGradeRanges) Bands() []SalaryGradeBand {
	result := make([]SalaryGradeBand, 0, len(r.bands))
	for _, band := range r.bands {
		if band != nil {
			result = append(result, *band)
		}
	}
	return result
}

// InWhatRangeValueIs returns the grades whose bands match the query, ordered
// by rank.
//
// With maxValue == nil the query is a point: grades whose band contains
// minValue. A point below every band resolves to the grade holding the lowest
// salary, a point above every band to the grade holding the highest one.
//
// With maxValue set the query is the range [minValue, *maxValue]: grades whose
// band intersects it. Ranges are never clamped.
func (r *SalaryGradeRanges) InWhatRangeValueIs(minValue float64, maxValue *float64) []Grade {
	bands := r.Bands()
	if len(bands) == 0 {
		return []Grade{}
	}

	if maxValue != nil {
		result := make([]Grade, 0, len(bands))
		for _, band := range bands {
			if band.Intersects(minValue, *maxValue) {
				result = append(result, band.Grade)
			}
		}
		return result
	}

	lowest, highest := bands[0], bands[0]
	for _, band := range bands[1:] {
		if band.Min < lowest.Min {
			lowest = band
		}
		if band.Max >= highest.Max {
			highest = band
		}
	}

	if minValue < lowest.Min {
		return []Grade{lowest.Grade}
	}
	if minValue > highest.Max {
		return []Grade{highest.Grade}
	}

	result := make([]Grade, 0, len(bands))
	for _, band := range bands {
		if band.Contains(minValue) {
			result = append(result, band.Grade)
		}
	}
	return result
}

// canonicalIndex maps a canonical grade to its slot in Canonical
func canonicalIndex(g Grade) (int, bool) {
	if !g.IsCanonical() {
		return 0, false
	}
	return int(g - Junior), true
}
