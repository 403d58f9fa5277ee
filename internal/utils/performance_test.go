package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOperationTimer_LogsOperation(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	OperationTimer("build_chart", log)()

	assert.Contains(t, buf.String(), `"operation":"build_chart"`)
	assert.Contains(t, buf.String(), "Operation completed")
	assert.NotContains(t, buf.String(), "Slow operation detected")
}

func TestTimer_Stop(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	timer := NewTimer("split_buckets", log)
	time.Sleep(time.Millisecond)
	duration := timer.Stop()

	assert.GreaterOrEqual(t, duration, time.Millisecond)
	assert.Contains(t, buf.String(), `"operation":"split_buckets"`)
}

func TestOperationTimer_DisabledLogger(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)

	assert.NotPanics(t, func() {
		OperationTimer("noop", log)()
	})
}
