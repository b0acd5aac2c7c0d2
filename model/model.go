package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/roundtable/core"
)

// ErrUnavailable marks transient transport or timeout failures. Callers may
// retry the whole run; the orchestrator never retries a turn automatically.
var ErrUnavailable = errors.New("model unavailable")

// ErrRejected marks quota or policy refusals. The current turn cannot be
// retried with the same request.
var ErrRejected = errors.New("model rejected request")

// Unavailable wraps err so that errors.Is(err, ErrUnavailable) holds.
func Unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

// Rejected wraps err so that errors.Is(err, ErrRejected) holds.
func Rejected(err error) error {
	return fmt.Errorf("%w: %w", ErrRejected, err)
}

// Request captures the normalized model input produced by an agent turn: the
// agent's fixed role instructions plus the full ordered conversation so far.
type Request struct {
	Instructions    string         `json:"instructions"` // System prompt for the model
	History         []core.Message `json:"history"`      // Conversation converted to provider messages
	Temperature     float64        `json:"temperature,omitempty"`
	MaxOutputTokens int64          `json:"max_output_tokens,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the completed generation for one turn.
type Response struct {
	Content      core.Content `json:"content"`
	FinishReason string       `json:"finish_reason,omitempty"` // "stop", "length", etc.
	Usage        *TokenUsage  `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the boundary interface to an external text-generation service.
// Implementations adapt a vendor API behind Complete; the call is network
// bound, potentially slow and not idempotent (a retried call may yield a
// different response). Implementations must be safe for concurrent use by
// independent runs.
type Model interface {
	Complete(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}
