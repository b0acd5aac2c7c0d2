// Package core provides the foundational domain types used by Roundtable.
// It defines the shared vocabulary of a multi-agent conversation:
//
//   - Messages (immutable, ordered units of conversation with multimodal parts)
//   - History (the append-only conversation shared by all agents of a run)
//   - Run / RunStatus (lifecycle record of one orchestrated execution)
//
// The package intentionally keeps implementation concerns (model providers,
// orchestration, tracing) out of scope so higher layers can depend on a small,
// stable set of types without cyclic imports.
package core
