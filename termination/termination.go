// Package termination provides the stop conditions evaluated by a team after
// every appended message. Conditions are predicates over the shared
// conversation history; evaluating a condition twice on an unchanged history
// yields the same result (no hidden per-evaluation state).
//
// Built-in variants:
//   - TextMention: most recent message contains a marker substring
//   - MaxMessages: history reached a configured length
//   - And / Or: short-circuiting composites
package termination

import (
	"strings"

	"github.com/hupe1980/roundtable/core"
)

// Condition decides whether the conversation ends. ShouldStop is evaluated
// after each new message is appended, before the next turn is dispatched.
type Condition interface {
	ShouldStop(h *core.History) bool
}

// Func is a functional adapter to allow ordinary functions to be used as Conditions.
type Func func(h *core.History) bool

// ShouldStop implements Condition.
func (f Func) ShouldStop(h *core.History) bool { return f(h) }

// textMention stops once the most recently appended message contains the
// marker token. Matching is a case-sensitive unanchored substring test: a
// marker occurring inside a larger word still counts.
type textMention struct {
	marker string
}

// TextMention returns a condition that stops when the last message's text
// contains marker as a substring.
func TextMention(marker string) Condition {
	return textMention{marker: marker}
}

// ShouldStop implements Condition.
func (t textMention) ShouldStop(h *core.History) bool {
	last, ok := h.Last()
	if !ok {
		return false
	}
	return strings.Contains(last.Text(), t.marker)
}

// maxMessages stops once the history length reaches the configured bound.
type maxMessages struct {
	limit int
}

// MaxMessages returns a condition that stops once the history holds at least
// limit messages (the seed task message counts).
func MaxMessages(limit int) Condition {
	return maxMessages{limit: limit}
}

// ShouldStop implements Condition.
func (m maxMessages) ShouldStop(h *core.History) bool {
	return h.Len() >= m.limit
}

// And returns a composite that stops only when every sub-condition stops.
// Evaluation short-circuits: it returns false as soon as one sub-condition
// returns false.
func And(conditions ...Condition) Condition {
	return Func(func(h *core.History) bool {
		for _, c := range conditions {
			if !c.ShouldStop(h) {
				return false
			}
		}
		return len(conditions) > 0
	})
}

// Or returns a composite that stops as soon as any sub-condition stops.
func Or(conditions ...Condition) Condition {
	return Func(func(h *core.History) bool {
		for _, c := range conditions {
			if c.ShouldStop(h) {
				return true
			}
		}
		return false
	})
}
