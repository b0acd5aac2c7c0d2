package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRecorder(t *testing.T) {
	r := NewInMemoryRecorder()
	ctx := context.Background()

	r.Record(ctx, NewSpan("run-1", "alpha", 0, "a"))
	r.Record(ctx, NewSpan("run-2", "beta", 0, "b"))
	r.Record(ctx, NewSpan("run-1", "alpha", 1, "c"))

	assert.Len(t, r.Spans(), 3)

	forRun := r.SpansForRun("run-1")
	require.Len(t, forRun, 2)
	assert.Equal(t, 0, forRun[0].Turn)
	assert.Equal(t, 1, forRun[1].Turn)

	r.Reset()
	assert.Empty(t, r.Spans())
}

func TestInMemoryRecorderSnapshotIsACopy(t *testing.T) {
	r := NewInMemoryRecorder()
	r.Record(context.Background(), NewSpan("run-1", "alpha", 0, "a"))

	snap := r.Spans()
	snap[0].Agent = "mutated"

	assert.Equal(t, "alpha", r.Spans()[0].Agent)
}

func TestMultiRecorderFansOut(t *testing.T) {
	first := NewInMemoryRecorder()
	second := NewInMemoryRecorder()
	multi := MultiRecorder{first, second}

	multi.Record(context.Background(), NewSpan("run-1", "alpha", 0, "a"))

	assert.Len(t, first.Spans(), 1)
	assert.Len(t, second.Spans(), 1)
}
