package testutil

import (
	"context"
	"sync"

	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/model"
)

// TextMessage builds a plain text message authored by author, unbound to a run.
func TextMessage(author, text string) core.Message {
	return core.NewTextMessage("", author, text)
}

// HistoryOf builds a history from alternating author, text pairs. Panics on
// an odd argument count; tests should fail loudly on misuse.
func HistoryOf(pairs ...string) *core.History {
	if len(pairs)%2 != 0 {
		panic("testutil.HistoryOf requires author/text pairs")
	}
	h := core.NewHistory()
	for i := 0; i < len(pairs); i += 2 {
		h.Append(TextMessage(pairs[i], pairs[i+1]))
	}
	return h
}

// StubModel is a deterministic model.Model for orchestration tests. Responses
// are served in order and repeat the last entry when exhausted. FailOn makes
// the Nth call (1-indexed) return Err instead.
type StubModel struct {
	Responses []string
	FailOn    int
	Err       error

	mu    sync.Mutex
	calls int
}

// Complete implements model.Model.
func (s *StubModel) Complete(_ context.Context, _ model.Request) (*model.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++

	if s.FailOn > 0 && s.calls == s.FailOn {
		return nil, s.Err
	}

	text := "ok"
	if n := len(s.Responses); n > 0 {
		idx := s.calls - 1
		if idx >= n {
			idx = n - 1
		}
		text = s.Responses[idx]
	}

	return &model.Response{
		Content:      core.TextContent("assistant", text),
		FinishReason: "stop",
	}, nil
}

// Info implements model.Model.
func (s *StubModel) Info() model.Info {
	return model.Info{Name: "stub", Provider: "test"}
}

// Calls returns the number of Complete invocations so far.
func (s *StubModel) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
