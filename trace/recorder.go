package trace

import (
	"context"
	"sync"
)

// Recorder receives span records of agent invocations. Recording is
// best-effort: implementations must never block a run on collector problems
// and must be safe for concurrent use by independent runs.
type Recorder interface {
	Record(ctx context.Context, span Span)
}

// NoOpRecorder discards all spans. Used when tracing is disabled.
type NoOpRecorder struct{}

// Record implements Recorder.
func (NoOpRecorder) Record(context.Context, Span) {}

// InMemoryRecorder retains spans in process memory in arrival order. Best
// suited for tests and offline inspection of small runs.
type InMemoryRecorder struct {
	mu    sync.RWMutex
	spans []Span
}

// NewInMemoryRecorder constructs an empty in-memory recorder.
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Record implements Recorder.
func (r *InMemoryRecorder) Record(_ context.Context, span Span) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spans = append(r.spans, span)
}

// Spans returns a snapshot of all recorded spans in arrival order.
func (r *InMemoryRecorder) Spans() []Span {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Span, len(r.spans))
	copy(out, r.spans)
	return out
}

// SpansForRun returns the recorded spans belonging to a single run.
func (r *InMemoryRecorder) SpansForRun(runID string) []Span {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Span
	for _, s := range r.spans {
		if s.RunID == runID {
			out = append(out, s)
		}
	}
	return out
}

// Reset discards all recorded spans.
func (r *InMemoryRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spans = nil
}

// MultiRecorder fans a span out to several recorders, e.g. an OTLP exporter
// plus an in-memory buffer feeding dataset persistence.
type MultiRecorder []Recorder

// Record implements Recorder.
func (m MultiRecorder) Record(ctx context.Context, span Span) {
	for _, r := range m {
		r.Record(ctx, span)
	}
}
