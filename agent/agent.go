package agent

import (
	"context"
	"fmt"

	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/model"
)

// Options configures an Agent instance.
//
// Use functional options with New to override defaults.
type Options struct {
	Instruction     Instruction
	Description     string
	Temperature     float64
	MaxOutputTokens int64
}

// Agent wraps a fixed role description and an injected model.Model. Role
// specific behavior comes purely from the instruction text; there is one
// concrete Agent type rather than a subtype per role.
//
// Agents are immutable configuration: created once, reused across many runs.
// Produce never mutates the shared history; given a deterministic model and
// identical history its output is deterministic.
type Agent struct {
	name            string
	description     string
	instruction     Instruction
	llm             model.Model
	temperature     float64
	maxOutputTokens int64
}

// New creates an agent with sensible defaults. The default instruction
// introduces the agent by name; supply your own via Options for any real role.
func New(name string, llm model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Instruction: NewInstructionFromText(fmt.Sprintf("You are %s, a helpful AI assistant.", name)),
		Description: fmt.Sprintf("Agent %s", name),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Agent{
		name:            name,
		description:     opts.Description,
		instruction:     opts.Instruction,
		llm:             llm,
		temperature:     opts.Temperature,
		maxOutputTokens: opts.MaxOutputTokens,
	}
}

// Name returns the agent's identifier used as message author.
func (a *Agent) Name() string { return a.name }

// Description returns a human-readable description of the agent's role.
func (a *Agent) Description() string { return a.description }

// Model returns the injected language model.
func (a *Agent) Model() model.Model { return a.llm }

// ResolveInstructions produces the final instruction string (system prompt)
// by resolving static or dynamic instruction sources.
func (a *Agent) ResolveInstructions(h *core.History) (string, error) {
	return a.instruction.Resolve(h)
}

// Produce generates the agent's next message given the shared conversation so
// far. It constructs a model request from the resolved instructions plus the
// full ordered history and returns exactly one message authored by this
// agent. Model failures surface unwrapped so the orchestrator can classify
// them via errors.Is against model.ErrUnavailable / model.ErrRejected.
func (a *Agent) Produce(ctx context.Context, runID string, h *core.History) (core.Message, error) {
	instructions, err := a.ResolveInstructions(h)
	if err != nil {
		return core.Message{}, fmt.Errorf("resolve instructions for agent %s: %w", a.name, err)
	}

	resp, err := a.llm.Complete(ctx, model.Request{
		Instructions:    instructions,
		History:         h.Messages(),
		Temperature:     a.temperature,
		MaxOutputTokens: a.maxOutputTokens,
	})
	if err != nil {
		return core.Message{}, err
	}

	return core.NewMessage(runID, a.name, resp.Content), nil
}
