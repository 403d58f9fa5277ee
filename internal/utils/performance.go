package utils

import (
	"time"

	"github.com/rs/zerolog"
)

// slowOperationThreshold marks chart builds worth a warning
const slowOperationThreshold = 2 * time.Second

// Timer measures a named operation and logs its duration
type Timer struct {
	start time.Time
	name  string
	log   zerolog.Logger
}

// NewTimer creates a new timer with the given name
func NewTimer(name string, log zerolog.Logger) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
		log:   log,
	}
}

// Stop logs the elapsed time and returns it
func (t *Timer) Stop() time.Duration {
	duration := time.Since(t.start)
	logDuration(t.log, t.name, duration)
	return duration
}

// OperationTimer provides a defer-friendly way to measure operation duration
//
// Usage:
//
//	func BuildChart() {
//	    defer utils.OperationTimer("build_chart", log)()
//	}
func OperationTimer(operation string, log zerolog.Logger) func() {
	start := time.Now()

	return func() {
		logDuration(log, operation, time.Since(start))
	}
}

func logDuration(log zerolog.Logger, operation string, duration time.Duration) {
	log.Debug().
		Str("operation", operation).
		Dur("duration_ms", duration).
		Msg("Operation completed")

	if duration > slowOperationThreshold {
		log.Warn().
			Str("operation", operation).
			Dur("duration", duration).
			Msg("Slow operation detected")
	}
}
