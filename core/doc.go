// Package core provides the foundational domain types and interfaces shared by
// every layer of the council. It defines:
//
//   - Agent (the single text-generation capability every backend exposes)
//   - Utterance, Round and Responses (the records a discussion produces)
//   - DiscussRequest / DiscussResponse (boundary objects of a discussion)
//   - DiscussionStore (pluggable holder for finished discussions)
//   - Sentinel errors matched with errors.Is across packages
//
// The package intentionally keeps implementation concerns (model adapters,
// orchestration, transport) out of scope, exposing small interfaces so that
// backends can be added or removed without touching orchestration logic.
package core
