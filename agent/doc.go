// Package agent contains the conversational agent implementation used by
// Roundtable teams. The package focuses on two concerns:
//
//  1. A single concrete Agent parameterized by role instructions and an
//     injected model.Model (no subtype per role)
//  2. Instruction resolution (static text or dynamic Provider)
//
// Design principles:
//   - Minimal hidden global state - explicit wiring via constructor options
//   - Immutability - an Agent is configuration, reused across many runs
//   - Purity - Produce reads the shared history but never mutates it
//
// Turn-taking, termination and streaming live in the team package; model
// specifics live in the model package and its provider subpackages.
package agent
