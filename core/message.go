package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Part represents a polymorphic segment of message content. Concrete part
// types implement the unexported isPart marker enabling a closed set.
type Part interface{ isPart() }

// TextPart is a plain text content segment.
type TextPart struct {
	Text     string         // Plain UTF-8 text
	Metadata map[string]any // Optional producer-provided metadata
}

// isPart implements the Part interface for TextPart.
func (TextPart) isPart() {}

// DataPart is a structured data segment (e.g., JSON object map).
type DataPart struct {
	Data     map[string]any // Structured key/value payload
	Metadata map[string]any
}

// isPart implements the Part interface for DataPart.
func (DataPart) isPart() {}

// FilePart is a file attachment segment.
type FilePart struct {
	File     FilePartFile // File metadata / reference
	Metadata map[string]any
}

// isPart implements the Part interface for FilePart.
func (FilePart) isPart() {}

// FilePartFile carries either inlined (base64 encoded) bytes or an external
// retrieval URI plus optional MIME type / filename metadata.
type FilePartFile struct {
	Bytes    string  // Base64 encoded contents (if inlined)
	MimeType *string // Optional MIME type
	Name     *string // Original filename hint
	URI      string  // External retrieval URI (if not inlined)
}

// Content holds role + ordered parts.
type Content struct {
	Role  string `json:"role,omitempty"` // Conversation role (user, assistant, system,...)
	Parts []Part `json:"parts"`          // Ordered heterogeneous parts
}

// TextContent builds a single-part text Content with the given role.
func TextContent(role, text string) Content {
	return Content{Role: role, Parts: []Part{TextPart{Text: text}}}
}

// Text concatenates all text parts in order. Non-text parts are skipped.
func (c Content) Text() string {
	var b strings.Builder
	for _, p := range c.Parts {
		if tp, ok := p.(TextPart); ok {
			b.WriteString(tp.Text)
		}
	}
	return b.String()
}

// Message is the primary unit of conversation between agents. After being
// appended to a History it must be treated as immutable. It captures:
//   - Correlation (RunID, ID, Author)
//   - Conversational content (role-based Parts)
//   - Position within the conversation (Index, assigned on append)
//   - High precision UTC timestamp
type Message struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id,omitempty"`
	Author    string    `json:"author"`
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Content   Content   `json:"content"`
}

// NewMessage creates a message authored by 'author' bound to a run. The Index
// field is assigned by History.Append; until then it is zero.
func NewMessage(runID, author string, content Content) Message {
	return Message{
		ID:        NewID(),
		RunID:     runID,
		Author:    author,
		Timestamp: time.Now().UTC(),
		Content:   content,
	}
}

// NewTextMessage is a convenience wrapper for a single-part assistant-style
// text message.
func NewTextMessage(runID, author, text string) Message {
	return NewMessage(runID, author, TextContent("assistant", text))
}

// NewUserMessage creates the synthetic user-authored message that seeds a
// conversation with the caller-provided task.
func NewUserMessage(runID, text string) Message {
	return NewMessage(runID, UserAuthor, TextContent("user", text))
}

// Text returns the concatenated text parts of the message content.
func (m Message) Text() string { return m.Content.Text() }

// UserAuthor is the author assigned to caller-provided task messages.
const UserAuthor = "user"

// NewID generates a new unique identifier for messages, runs and spans.
func NewID() string { return uuid.NewString() }
