package team

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/roundtable/agent"
	"github.com/hupe1980/roundtable/core"
	"github.com/hupe1980/roundtable/logging"
	"github.com/hupe1980/roundtable/termination"
	"github.com/hupe1980/roundtable/trace"
)

// ErrNoStopCondition is returned by NewRoundRobin when neither a termination
// condition nor a positive MaxTurns ceiling is configured. Such a team could
// loop forever, so it is rejected at construction time rather than at run time.
var ErrNoStopCondition = errors.New("team: no termination condition and no positive MaxTurns ceiling configured")

// Options holds dependency + configuration overrides passed to NewRoundRobin.
type Options struct {
	// Condition ends the run when it reports true. Optional if MaxTurns is positive.
	Condition termination.Condition
	// MaxTurns is the hard safety ceiling on dispatched turns. It bounds the
	// run even when Condition never fires. Zero disables the ceiling, which
	// is only valid together with a Condition.
	MaxTurns int
	// MessageBufferSize sets channel buffering for streamed messages.
	MessageBufferSize int
	// Recorder receives a span per agent invocation. Defaults to NoOp.
	Recorder trace.Recorder
	// Logger provides structured logging. Defaults to NoOp.
	Logger logging.Logger
}

// RoundRobin coordinates a fixed, ordered list of agents taking strictly
// cyclic turns over a shared conversation: turn T dispatches the agent at
// position T mod N for the lifetime of a run. Each produced message is
// appended to the history and streamed to the consumer before the
// termination condition is evaluated and the next turn dispatched.
//
// Exactly one agent is active at any instant within a run; turns never
// overlap because each agent's input is the history updated by its
// predecessor. Independent runs may execute concurrently - they share no
// mutable state beyond the injected model clients, which must be safe for
// concurrent use. Public methods are safe for concurrent use.
type RoundRobin struct {
	name      string
	agents    []*agent.Agent
	condition termination.Condition
	maxTurns  int
	bufSize   int
	recorder  trace.Recorder
	logger    logging.Logger

	activeRuns map[string]context.CancelFunc
	runs       map[string]*core.Run
	mu         sync.RWMutex
}

// NewRoundRobin constructs a team from an ordered agent list. The order given
// here is the dispatch order. It fails with ErrNoStopCondition when neither a
// condition nor a positive ceiling bounds the run, and rejects empty teams.
func NewRoundRobin(name string, agents []*agent.Agent, optFns ...func(o *Options)) (*RoundRobin, error) {
	opts := Options{
		MaxTurns:          20,
		MessageBufferSize: 16,
		Recorder:          trace.NoOpRecorder{},
		Logger:            logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if len(agents) == 0 {
		return nil, fmt.Errorf("team %s: at least one agent is required", name)
	}

	if opts.Condition == nil && opts.MaxTurns < 1 {
		return nil, ErrNoStopCondition
	}

	return &RoundRobin{
		name:       name,
		agents:     agents,
		condition:  opts.Condition,
		maxTurns:   opts.MaxTurns,
		bufSize:    opts.MessageBufferSize,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		activeRuns: make(map[string]context.CancelFunc),
		runs:       make(map[string]*core.Run),
	}, nil
}

// Name returns the team name.
func (t *RoundRobin) Name() string { return t.name }

// AgentNames returns the configured dispatch order.
func (t *RoundRobin) AgentNames() []string {
	names := make([]string, len(t.agents))
	for i, a := range t.agents {
		names[i] = a.Name()
	}
	return names
}

// Run starts an asynchronous run seeded with the caller-provided task. It
// returns the run ID, an ordered stream of messages as they are produced
// (seed message included), and a terminal error channel.
//
// Semantics & guarantees:
//   - Messages are emitted immediately after being appended, so consumers can
//     render progress incrementally; the sequence is lazy, finite and
//     non-restartable.
//   - The messages channel is closed when the run reaches a terminal state.
//   - The error channel carries at most one terminal error (for a failed
//     run), then closes. Termination by condition or ceiling and cooperative
//     cancellation close the channels without an error.
//   - Any failure preserves all messages produced up to the failure point.
//
// The terminal status and full history are available via GetRun afterwards.
func (t *RoundRobin) Run(ctx context.Context, task string) (string, <-chan core.Message, <-chan error, error) {
	runID := core.NewID()

	run := &core.Run{
		ID:      runID,
		Agents:  t.AgentNames(),
		Status:  core.StatusRunning,
		History: core.NewSeededHistory(runID, task),
	}

	messagesCh := make(chan core.Message, t.bufSize)
	errorsCh := make(chan error, 1)

	ctx, cancel := context.WithCancel(ctx)
	t.mu.Lock()
	t.activeRuns[runID] = cancel
	t.runs[runID] = run
	t.mu.Unlock()

	t.logger.Debug("team.run.start", "team", t.name, "run", runID, "agents", len(t.agents))

	go func() {
		defer func() {
			close(messagesCh)
			close(errorsCh)
			cancel()
			t.mu.Lock()
			delete(t.activeRuns, runID)
			t.mu.Unlock()
		}()

		t.execute(ctx, run, messagesCh, errorsCh)
	}()

	return runID, messagesCh, errorsCh, nil
}

// RunSync executes a run to completion, draining the stream, and returns the
// finished run record. The returned error is the agent failure for a failed
// run and the context error for a cancelled one; normal termination returns a
// nil error.
func (t *RoundRobin) RunSync(ctx context.Context, task string) (*core.Run, error) {
	runID, messagesCh, errorsCh, err := t.Run(ctx, task)
	if err != nil {
		return nil, err
	}

	for range messagesCh {
		// Drain; history already retains every message.
	}

	run, _ := t.GetRun(runID)

	if err := <-errorsCh; err != nil {
		return run, err
	}
	if run.Status == core.StatusCancelled {
		// Cancel(runID) leaves the caller's ctx intact; report the same
		// sentinel either way.
		if cause := ctx.Err(); cause != nil {
			return run, cause
		}
		return run, context.Canceled
	}
	return run, nil
}

// Cancel requests cooperative termination of an in-flight run. The signal
// propagates to the active model call's context; whether the provider aborts
// the call is up to the adapter. A message completed despite the signal is
// retained. Either way no further turn is dispatched and the run finishes
// with StatusCancelled, partial history preserved.
func (t *RoundRobin) Cancel(runID string) error {
	t.mu.Lock()
	cancel, exists := t.activeRuns[runID]
	t.mu.Unlock()

	if !exists {
		return fmt.Errorf("run %s not found", runID)
	}

	cancel()

	return nil
}

// GetRun returns a snapshot of the run record (live or finished) for runID.
// Status and Err are copied under the lock so callers can poll a running team
// without racing the executor; History is shared and safe for concurrent reads.
func (t *RoundRobin) GetRun(runID string) (*core.Run, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	run, ok := t.runs[runID]
	if !ok {
		return nil, false
	}
	snap := *run
	snap.Agents = append([]string(nil), run.Agents...)
	return &snap, true
}

// execute drives the turn loop until a terminal state is reached. It owns all
// writes to the run's history; status transitions happen exactly once.
func (t *RoundRobin) execute(ctx context.Context, run *core.Run, messagesCh chan<- core.Message, errorsCh chan<- error) {
	history := run.History

	// Stream the seed message first so consumers see the full conversation.
	if seed, ok := history.Last(); ok {
		if !t.emit(ctx, run, messagesCh, seed) {
			return
		}
	}

	for turn := 0; ; turn++ {
		// The ceiling bounds the run even when the condition never fires.
		if t.maxTurns > 0 && turn >= t.maxTurns {
			t.finish(run, core.StatusTerminated, nil)
			t.logger.Debug("team.run.ceiling", "team", t.name, "run", run.ID, "turns", turn)
			return
		}

		// Cooperative cancellation between turns: never dispatch once signaled.
		select {
		case <-ctx.Done():
			t.finish(run, core.StatusCancelled, nil)
			t.logger.Debug("team.run.cancelled", "team", t.name, "run", run.ID, "turns", turn)
			return
		default:
		}

		ag := t.agents[turn%len(t.agents)]

		span := trace.NewSpan(run.ID, ag.Name(), turn, history.PlainText())

		msg, err := ag.Produce(ctx, run.ID, history)
		if err != nil {
			t.recorder.Record(ctx, span.Finish("", err))

			// Cancellation surfacing through the in-flight adapter call is
			// not an agent failure; the run ends cancelled without an error.
			if ctx.Err() != nil {
				t.finish(run, core.StatusCancelled, nil)
				t.logger.Debug("team.run.cancelled", "team", t.name, "run", run.ID, "turns", turn)
				return
			}

			t.finish(run, core.StatusFailed, err)
			t.logger.Error("team.turn.failed", "team", t.name, "run", run.ID, "agent", ag.Name(), "turn", turn, "error", err)

			select {
			case errorsCh <- fmt.Errorf("agent %s failed at turn %d: %w", ag.Name(), turn, err):
			default:
			}
			return
		}

		msg = history.Append(msg)
		t.recorder.Record(ctx, span.Finish(msg.Text(), nil))

		t.logger.Debug("team.turn.complete", "team", t.name, "run", run.ID, "agent", ag.Name(), "turn", turn)

		if !t.emit(ctx, run, messagesCh, msg) {
			return
		}

		if t.condition != nil && t.condition.ShouldStop(history) {
			t.finish(run, core.StatusTerminated, nil)
			t.logger.Debug("team.run.terminated", "team", t.name, "run", run.ID, "turns", turn+1)
			return
		}
	}
}

// emit forwards a message to the consumer, honouring cancellation while the
// consumer is slow. Returns false when the run ended during the send.
func (t *RoundRobin) emit(ctx context.Context, run *core.Run, messagesCh chan<- core.Message, msg core.Message) bool {
	select {
	case messagesCh <- msg:
		return true
	case <-ctx.Done():
		t.finish(run, core.StatusCancelled, nil)
		return false
	}
}

// finish records the terminal state exactly once.
func (t *RoundRobin) finish(run *core.Run, status core.RunStatus, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if run.Status.Terminal() {
		return
	}
	run.Status = status
	run.Err = err
}
