// Package testutil provides shared helpers for constructing conversation
// fixtures and deterministic model stubs in tests. Test-only; never import
// from production code paths.
package testutil
