// Package model defines the provider‑agnostic abstractions and concrete
// helpers for interacting with text-generation backends inside the council.
//
// Core goals:
//   - Unify streaming + non‑streaming generation behind a single interface
//   - Keep request/response shapes minimal and transport independent
//   - Aggregate streamed chunks into one completion (Collect)
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (OpenAI-compatible endpoints, Anthropic, Hugging Face) implement
// the Model interface from this package so higher layers (agents, discussion)
// remain decoupled from vendor SDKs.
package model
