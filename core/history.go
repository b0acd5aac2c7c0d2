package core

import (
	"strings"
	"sync"
)

// History is the append-only, ordered conversation shared by all agents of a
// run. It is safe for concurrent reads; the orchestrator is the single writer
// within a run (turns are strictly sequential). Appended messages are never
// mutated or removed.
//
// Contract:
//   - Append assigns the message Index (insertion order == conversation order)
//   - Messages / Last return defensive copies so callers cannot mutate
//     internal state
//   - Seeding with the initiating task happens via NewSeededHistory
type History struct {
	mu       sync.RWMutex
	messages []Message
}

// NewHistory creates an empty history.
func NewHistory() *History { return &History{} }

// NewSeededHistory creates a history whose first message is the caller
// provided task, authored by UserAuthor.
func NewSeededHistory(runID, task string) *History {
	h := NewHistory()
	h.Append(NewUserMessage(runID, task))
	return h
}

// Append adds a message to the end of the conversation, assigning its Index.
// It returns the stored message with the index populated.
func (h *History) Append(m Message) Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	m.Index = len(h.messages)
	h.messages = append(h.messages, m)
	return m
}

// Len returns the number of messages appended so far.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messages)
}

// Messages returns a copy of the full ordered message slice.
func (h *History) Messages() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// Last returns the most recently appended message. The boolean is false for
// an empty history.
func (h *History) Last() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// PlainText renders the conversation as "author: text" lines, one message per
// line. Useful for logging and simple console consumers.
func (h *History) PlainText() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var b strings.Builder
	for i, m := range h.messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.Author)
		b.WriteString(": ")
		b.WriteString(m.Content.Text())
	}
	return b.String()
}
