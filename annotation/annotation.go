// Package annotation attaches label / score metadata to persisted trace
// spans. The core run loop has no dependency on this package beyond producing
// stable span identifiers; external actors (reviewers, eval jobs) do the
// annotating, typically against a loaded dataset.
package annotation

import (
	"fmt"
	"sync"
	"time"
)

// Annotation is one piece of reviewer or evaluator metadata bound to a span.
type Annotation struct {
	SpanID    string    `json:"span_id"`
	Label     string    `json:"label"`
	Score     float64   `json:"score"`
	Annotator string    `json:"annotator,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Store persists annotations keyed by span identifier.
type Store interface {
	Annotate(a Annotation) error
	Get(spanID string) ([]Annotation, error)
}

// InMemoryStore is a volatile Store suited for tests and local review sessions.
type InMemoryStore struct {
	mu          sync.RWMutex
	annotations map[string][]Annotation // spanID -> annotations
}

// NewInMemoryStore returns an empty in-memory annotation store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{annotations: make(map[string][]Annotation)}
}

// Annotate appends an annotation for its span, stamping the time if unset.
func (s *InMemoryStore) Annotate(a Annotation) error {
	if a.SpanID == "" {
		return fmt.Errorf("annotation requires a span id")
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.annotations[a.SpanID] = append(s.annotations[a.SpanID], a)
	return nil
}

// Get returns the annotations recorded for a span in insertion order.
func (s *InMemoryStore) Get(spanID string) ([]Annotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.annotations[spanID]
	out := make([]Annotation, len(stored))
	copy(out, stored)
	return out, nil
}
