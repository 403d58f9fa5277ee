// Package grades classifies salary values into seniority grade bands.
package grades

import (
	"fmt"
	"strings"
)

// Grade is a developer seniority level
type Grade int

const (
	Unknown Grade = iota
	Junior
	Middle
	Senior
	Lead
)

// Canonical lists the grades that take part in banding and chart breakdowns,
// in ascending rank. Iteration over grades always goes through this array.
var Canonical = [...]Grade{Junior, Middle, Senior, Lead}

var gradeNames = map[Grade]string{
	Unknown: "Unknown",
	Junior:  "Junior",
	Middle:  "Middle",
	Senior:  "Senior",
	Lead:    "Lead",
}

func (g Grade) String() string {
	if name, ok := gradeNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// IsCanonical reports whether g is one of Junior, Middle, Senior, Lead
func (g Grade) IsCanonical() bool {
	return g >= Junior && g <= Lead
}

// ParseGrade parses a grade name case-insensitively.
// Numeric ranks ("1".."4") are accepted as well.
func ParseGrade(s string) (Grade, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	switch value {
	case "junior", "1":
		return Junior, nil
	case "middle", "2":
		return Middle, nil
	case "senior", "3":
		return Senior, nil
	case "lead", "4":
		return Lead, nil
	case "unknown", "", "0":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown grade %q", s)
}

func (g Grade) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Grade) UnmarshalText(text []byte) error {
	parsed, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
