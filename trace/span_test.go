package trace

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpan(t *testing.T) {
	span := NewSpan("run-1", "alpha", 3, "user: task")

	assert.Len(t, span.ID, 36) // UUID length
	assert.Equal(t, "run-1", span.RunID)
	assert.Equal(t, "alpha", span.Agent)
	assert.Equal(t, 3, span.Turn)
	assert.Equal(t, "user: task", span.Input)
	assert.Equal(t, StatusOK, span.Status)
	assert.False(t, span.StartTime.IsZero())
	assert.True(t, span.EndTime.IsZero())
}

func TestSpanFinishSuccess(t *testing.T) {
	span := NewSpan("run-1", "alpha", 0, "input")

	done := span.Finish("output", nil)

	assert.Equal(t, StatusOK, done.Status)
	assert.Equal(t, "output", done.Output)
	assert.Empty(t, done.Error)
	assert.False(t, done.EndTime.IsZero())
	assert.GreaterOrEqual(t, done.Duration(), time.Duration(0))
	assert.Equal(t, span.ID, done.ID)
}

func TestSpanFinishError(t *testing.T) {
	span := NewSpan("run-1", "alpha", 0, "input")

	done := span.Finish("", errors.New("model unavailable"))

	assert.Equal(t, StatusError, done.Status)
	assert.Equal(t, "model unavailable", done.Error)
	require.False(t, done.EndTime.IsZero())
}
