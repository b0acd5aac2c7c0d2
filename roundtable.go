// Package roundtable provides a high-level façade over the team orchestrator
// and service abstractions (tracing, dataset persistence & logging) enabling
// rapid construction of round-robin multi-agent conversations. Most
// applications interact with this package by:
//  1. Creating a Roundtable via New() (optionally overriding default in-memory services)
//  2. Building one or more teams from agents (NewTeam)
//  3. Running tasks (team.Run / team.RunSync) and persisting traces (SaveRunDataset)
//
// The façade delegates orchestration to team.RoundRobin while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing; production deployments typically supply an OTLP recorder and a
// durable dataset store.
package roundtable

import (
	"context"

	"github.com/hupe1980/roundtable/agent"
	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/logging"
	"github.com/hupe1980/roundtable/team"
	"github.com/hupe1980/roundtable/trace"
)

// Options configures the Roundtable instance.
type Options struct {
	// Recorder receives spans for every agent invocation in addition to the
	// internal buffer, e.g. an OTLP exporter. Nil means buffer only.
	Recorder trace.Recorder

	// DatasetStore persists named span datasets (defaults to in-memory).
	DatasetStore trace.DatasetStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Roundtable is the high-level façade aggregating teams and trace services.
// The internal span buffer retains every invocation span so finished runs can
// be persisted as named datasets without re-running them.
type Roundtable struct {
	buffer   *trace.InMemoryRecorder
	recorder trace.Recorder
	datasets trace.DatasetStore
	logger   logging.Logger
}

// New creates a new Roundtable instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Roundtable {
	opts := Options{
		DatasetStore: trace.NewInMemoryDatasetStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	buffer := trace.NewInMemoryRecorder()

	var recorder trace.Recorder = buffer
	if opts.Recorder != nil {
		recorder = trace.MultiRecorder{buffer, opts.Recorder}
	}

	return &Roundtable{
		buffer:   buffer,
		recorder: recorder,
		datasets: opts.DatasetStore,
		logger:   opts.Logger,
	}
}

// NewTeam builds a round-robin team wired to the façade's recorder and
// logger. Explicit team options still apply on top.
func (r *Roundtable) NewTeam(name string, agents []*agent.Agent, optFns ...func(o *team.Options)) (*team.RoundRobin, error) {
	wired := append([]func(o *team.Options){func(o *team.Options) {
		o.Recorder = r.recorder
		o.Logger = r.logger
	}}, optFns...)

	return team.NewRoundRobin(name, agents, wired...)
}

// Spans returns all buffered invocation spans in arrival order.
func (r *Roundtable) Spans() []trace.Span { return r.buffer.Spans() }

// SaveRunDataset persists the buffered spans of one run under the given
// dataset name for offline review and annotation.
func (r *Roundtable) SaveRunDataset(name, runID string) error {
	return r.datasets.Save(name, r.buffer.SpansForRun(runID))
}

// LoadDataset loads a previously saved span dataset by name.
func (r *Roundtable) LoadDataset(name string) ([]trace.Span, error) {
	return r.datasets.Load(name)
}

// RunSync is a convenience helper that builds a single-use team and executes
// one task synchronously, returning the finished run record.
func (r *Roundtable) RunSync(ctx context.Context, name string, agents []*agent.Agent, task string, optFns ...func(o *team.Options)) (*core.Run, error) {
	t, err := r.NewTeam(name, agents, optFns...)
	if err != nil {
		return nil, err
	}
	return t.RunSync(ctx, task)
}
