package model

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/roundtable/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWith(texts ...string) Request {
	var history []core.Message
	for _, txt := range texts {
		history = append(history, core.NewTextMessage("run-1", "user", txt))
	}
	return Request{History: history}
}

func TestMockModelKeyedResponses(t *testing.T) {
	m := NewMockModel("test-model", "mock")
	m.AddResponse("hello", "hi there")

	resp, err := m.Complete(context.Background(), requestWith("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hi there", resp.Content.Text())

	resp, err = m.Complete(context.Background(), requestWith("unknown"))
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: unknown", resp.Content.Text())

	assert.Equal(t, 2, m.Calls())
}

func TestMockModelScriptedResponsesTakePrecedence(t *testing.T) {
	m := NewMockModel("test-model", "mock")
	m.AddResponse("hello", "keyed")
	m.ScriptResponses("first", "second")

	resp, err := m.Complete(context.Background(), requestWith("hello"))
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Content.Text())

	resp, err = m.Complete(context.Background(), requestWith("hello"))
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Content.Text())

	// Script exhausted, fall back to keyed responses.
	resp, err = m.Complete(context.Background(), requestWith("hello"))
	require.NoError(t, err)
	assert.Equal(t, "keyed", resp.Content.Text())
}

func TestMockModelFailWith(t *testing.T) {
	m := NewMockModel("test-model", "mock")
	m.FailWith(Unavailable(errors.New("down")))

	_, err := m.Complete(context.Background(), requestWith("hello"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMockModelHonoursCancelledContext(t *testing.T) {
	m := NewMockModel("test-model", "mock")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, requestWith("hello"))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockModelInfo(t *testing.T) {
	m := NewMockModel("test-model", "mock")

	info := m.Info()
	assert.Equal(t, "test-model", info.Name)
	assert.Equal(t, "mock", info.Provider)
}
