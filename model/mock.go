package model

import (
	"context"
	"sync"

	"github.com/hupe1980/roundtable/core"
)

// MockModel is a lightweight in-memory Model useful for tests & examples. It
// replies deterministically: canned responses can be keyed on the text of the
// last message in the request history, or queued in order via ScriptResponses.
// Safe for concurrent use by independent runs.
type MockModel struct {
	info      Info
	mu        sync.Mutex
	responses map[string]string
	script    []string
	err       error
	calls     int
}

// NewMockModel constructs a MockModel identified by name/provider.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// ScriptResponses queues responses returned in order regardless of input.
// Scripted responses take precedence over prompt-keyed ones.
func (m *MockModel) ScriptResponses(responses ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, responses...)
}

// FailWith makes every subsequent Complete call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns the number of Complete invocations so far.
func (m *MockModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, Unavailable(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++

	if m.err != nil {
		return nil, m.err
	}

	var full string
	switch {
	case len(m.script) > 0:
		full = m.script[0]
		m.script = m.script[1:]
	default:
		var input string
		if n := len(req.History); n > 0 {
			input = req.History[n-1].Text()
		}
		full = m.responses[input]
		if full == "" {
			full = "Mock response to: " + input
		}
	}

	return &Response{
		Content:      core.TextContent("assistant", full),
		FinishReason: "stop",
	}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
