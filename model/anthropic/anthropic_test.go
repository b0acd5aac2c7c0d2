package anthropic

import (
	"errors"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages(t *testing.T) {
	history := []core.Message{
		core.NewTextMessage("run-1", "user", "my screen broke"),
		{Content: core.TextContent("assistant", "category: hardware")},
		core.NewTextMessage("run-1", "user", "what now?"),
	}

	messages := buildMessages(history)

	require.Len(t, messages, 3)
	assert.Equal(t, anthropic.MessageParamRoleUser, messages[0].Role)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, messages[1].Role)
	assert.Equal(t, anthropic.MessageParamRoleUser, messages[2].Role)
}

func TestBuildMessagesSkipsEmptyText(t *testing.T) {
	history := []core.Message{
		core.NewTextMessage("run-1", "user", "hello"),
		{Content: core.Content{Role: "assistant"}},
	}

	assert.Len(t, buildMessages(history), 1)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "rate limited", err: &anthropic.Error{StatusCode: 429}, target: model.ErrRejected},
		{name: "invalid request", err: &anthropic.Error{StatusCode: 400}, target: model.ErrRejected},
		{name: "overloaded", err: &anthropic.Error{StatusCode: 529}, target: model.ErrUnavailable},
		{name: "transport error", err: errors.New("dial tcp: timeout"), target: model.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err), tt.target)
		})
	}
}

func TestInfo(t *testing.T) {
	m := NewModel(func(o *Options) {
		o.Model = anthropic.ModelClaude3_5Sonnet20241022
	})

	info := m.Info()
	assert.Equal(t, "anthropic", info.Provider)
	assert.NotEmpty(t, info.Name)
}
