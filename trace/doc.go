// Package trace records span-equivalent observations of agent invocations and
// persists them as named datasets for offline review.
//
// Three concerns live here:
//
//  1. Span - the record of one agent turn: inputs, output, duration, status
//  2. Recorder - best-effort span delivery (in-memory buffer, OTLP gRPC
//     export to a collector, fan-out via MultiRecorder)
//  3. DatasetStore - named save/load of span sequences as opaque blobs
//
// Recording must never abort a run; collector failures are absorbed by the
// exporter's batch processor. The collector reference is passed explicitly
// into whichever component emits spans - there is no ambient global tracer.
package trace
