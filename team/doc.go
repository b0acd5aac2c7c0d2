// Package team implements multi-agent turn-taking over a shared conversation.
//
// RoundRobin is the coordination pattern provided: a fixed, ordered agent
// list takes strictly cyclic turns, each turn appending one message to the
// append-only history and streaming it to the consumer. A run ends when the
// configured termination condition fires, the MaxTurns safety ceiling is
// reached, an agent invocation fails, or the caller cancels between turns.
//
// Execution model:
//   - One goroutine drives the loop per run; turns are strictly sequential
//   - Messages stream over a channel closed on terminal state; consumers
//     range over the channel to render progress incrementally
//   - The error channel carries at most one terminal error then closes
//   - Failed and cancelled runs preserve the partial history
//
// Tracing is injected via trace.Recorder and is best-effort; it never blocks
// or aborts a run.
package team
