// Package model defines the provider-agnostic boundary for interacting with
// external text-generation services inside Roundtable.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Classify provider failures into a stable taxonomy (ErrUnavailable for
//     transient transport faults, ErrRejected for quota / policy refusals)
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so higher layers (agents, teams) remain decoupled from vendor SDKs.
package model
