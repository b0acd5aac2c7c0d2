package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendAssignsIndexes(t *testing.T) {
	h := NewHistory()

	first := h.Append(NewTextMessage("run-1", "alpha", "hello"))
	second := h.Append(NewTextMessage("run-1", "beta", "world"))

	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, 2, h.Len())

	msgs := h.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "alpha", msgs[0].Author)
	assert.Equal(t, "beta", msgs[1].Author)
}

func TestHistoryMessagesReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Append(NewTextMessage("run-1", "alpha", "hello"))

	msgs := h.Messages()
	msgs[0].Author = "mutated"

	fresh := h.Messages()
	assert.Equal(t, "alpha", fresh[0].Author)
}

func TestHistoryLast(t *testing.T) {
	h := NewHistory()

	_, ok := h.Last()
	assert.False(t, ok)

	h.Append(NewTextMessage("run-1", "alpha", "hello"))
	h.Append(NewTextMessage("run-1", "beta", "world"))

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, "beta", last.Author)
	assert.Equal(t, "world", last.Text())
}

func TestNewSeededHistory(t *testing.T) {
	h := NewSeededHistory("run-1", "fix my screen")

	require.Equal(t, 1, h.Len())
	seed, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, UserAuthor, seed.Author)
	assert.Equal(t, "user", seed.Content.Role)
	assert.Equal(t, "fix my screen", seed.Text())
	assert.Equal(t, 0, seed.Index)
}

func TestHistoryPlainText(t *testing.T) {
	h := NewSeededHistory("run-1", "task")
	h.Append(NewTextMessage("run-1", "alpha", "reply"))

	assert.Equal(t, "user: task\nalpha: reply", h.PlainText())
}
