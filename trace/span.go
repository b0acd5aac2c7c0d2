package trace

import (
	"time"

	"github.com/hupe1980/roundtable/core"
)

// SpanStatus categorizes the outcome of one observed agent invocation.
type SpanStatus string

const (
	// StatusOK marks a turn that produced a message.
	StatusOK SpanStatus = "ok"
	// StatusError marks a turn whose model call failed.
	StatusError SpanStatus = "error"
)

// Span is an externally recorded observation of one agent invocation within a
// run. Span IDs are stable so external annotation tooling can attach label /
// score metadata to persisted spans after the fact.
type Span struct {
	ID        string     `json:"id"`
	RunID     string     `json:"run_id"`
	Agent     string     `json:"agent"`
	Turn      int        `json:"turn"` // 0-indexed dispatch position within the run
	Input     string     `json:"input"`
	Output    string     `json:"output,omitempty"`
	Status    SpanStatus `json:"status"`
	Error     string     `json:"error,omitempty"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
}

// NewSpan creates a span with a fresh stable identifier and the start time
// set to now. The caller fills Output/Status/EndTime via Finish.
func NewSpan(runID, agent string, turn int, input string) Span {
	return Span{
		ID:        core.NewID(),
		RunID:     runID,
		Agent:     agent,
		Turn:      turn,
		Input:     input,
		Status:    StatusOK,
		StartTime: time.Now().UTC(),
	}
}

// Finish stamps the end time and records the outcome. A non-nil err flips the
// status to StatusError and retains the error text.
func (s Span) Finish(output string, err error) Span {
	s.EndTime = time.Now().UTC()
	s.Output = output
	if err != nil {
		s.Status = StatusError
		s.Error = err.Error()
	}
	return s
}

// Duration returns the wall time spent in the observed invocation.
func (s Span) Duration() time.Duration { return s.EndTime.Sub(s.StartTime) }
