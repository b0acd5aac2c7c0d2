package openai

import (
	"errors"
	"testing"

	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/model"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParams(t *testing.T) {
	m := NewModel(func(o *Options) {
		o.Model = openai.ChatModelGPT4oMini
		o.Temperature = 0.5
		o.MaxCompletionTokens = 1024
	})

	req := model.Request{
		Instructions: "You are a classifier.",
		History: []core.Message{
			core.NewTextMessage("run-1", "user", "my screen broke"),
			{Content: core.TextContent("assistant", "category: hardware")},
		},
	}

	params := m.buildParams(req)

	assert.Equal(t, openai.ChatModelGPT4oMini, params.Model)
	assert.Equal(t, openai.Float(0.5), params.Temperature)
	assert.Equal(t, openai.Int(1024), params.MaxCompletionTokens)

	require.Len(t, params.Messages, 3)
	assert.NotNil(t, params.Messages[0].OfSystem)
	assert.NotNil(t, params.Messages[1].OfUser)
	assert.NotNil(t, params.Messages[2].OfAssistant)
}

func TestBuildParamsRequestOverrides(t *testing.T) {
	m := NewModel()

	params := m.buildParams(model.Request{Temperature: 0.1, MaxOutputTokens: 64})

	assert.Equal(t, openai.Float(0.1), params.Temperature)
	assert.Equal(t, openai.Int(64), params.MaxCompletionTokens)
}

func TestBuildParamsNoInstructions(t *testing.T) {
	m := NewModel()

	params := m.buildParams(model.Request{
		History: []core.Message{core.NewTextMessage("run-1", "user", "hi")},
	})

	require.Len(t, params.Messages, 1)
	assert.NotNil(t, params.Messages[0].OfUser)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "rate limited", err: &openai.Error{StatusCode: 429}, target: model.ErrRejected},
		{name: "bad request", err: &openai.Error{StatusCode: 400}, target: model.ErrRejected},
		{name: "server error", err: &openai.Error{StatusCode: 503}, target: model.ErrUnavailable},
		{name: "transport error", err: errors.New("dial tcp: timeout"), target: model.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err), tt.target)
		})
	}
}
