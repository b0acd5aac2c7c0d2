// Package openai provides an implementation of model.Model using the OpenAI
// Chat Completions API. It adapts Roundtable's normalized Request/Response
// structures into the SDK's message format and back, classifying API failures
// into the model package error taxonomy.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/model"
	"github.com/openai/openai-go"
)

// Options configure the OpenAI model adapter. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal; extend via functional
// options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Model wraps the OpenAI Chat Completions API behind the generic model.Model interface.
type Model struct {
	client *openai.Client
	opts   Options
}

// NewModel creates a new OpenAI model using the official client
func NewModel(optFns ...func(o *Options)) *Model {
	client := openai.NewClient()
	return NewModelFromClient(&client, optFns...)
}

// NewModelFromClient creates a new OpenAI model from an existing client
func NewModelFromClient(client *openai.Client, optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

// Complete implements model.Model using a non-streaming chat completion.
func (m *Model) Complete(ctx context.Context, req model.Request) (*model.Response, error) {
	params := m.buildParams(req)

	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, model.Unavailable(fmt.Errorf("openai api: no choices returned"))
	}

	ch0 := resp.Choices[0]
	out := &model.Response{
		Content:      core.TextContent("assistant", ch0.Message.Content),
		FinishReason: ch0.FinishReason,
	}
	if resp.Usage.TotalTokens > 0 {
		out.Usage = &model.TokenUsage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		}
	}
	return out, nil
}

// buildParams converts the normalized request into OpenAI chat parameters.
// Instructions map to a system message; history messages keep their roles,
// falling back to user for unknown roles.
func (m *Model) buildParams(req model.Request) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+1)
	if req.Instructions != "" {
		messages = append(messages, openai.SystemMessage(req.Instructions))
	}
	for _, msg := range req.History {
		text := msg.Text()
		switch msg.Content.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(text))
		case "system":
			messages = append(messages, openai.SystemMessage(text))
		default:
			messages = append(messages, openai.UserMessage(text))
		}
	}

	temperature := m.opts.Temperature
	if req.Temperature != 0 {
		temperature = req.Temperature
	}
	maxTokens := m.opts.MaxCompletionTokens
	if req.MaxOutputTokens != 0 {
		maxTokens = req.MaxOutputTokens
	}

	return openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               m.opts.Model,
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(maxTokens),
	}
}

// classify maps SDK errors onto the model package taxonomy. Quota and policy
// refusals (4xx) are non-retriable for the current turn; everything else is
// treated as a transient transport fault.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests,
			apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return model.Rejected(fmt.Errorf("openai api error: %w", err))
		}
	}
	return model.Unavailable(fmt.Errorf("openai api error: %w", err))
}

// Info returns metadata describing this OpenAI model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "openai"}
}
