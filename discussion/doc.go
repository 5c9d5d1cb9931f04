// Package discussion implements the council protocol: a topic-seeded,
// append-only transcript, the per-round executor (chairman turn followed by a
// concurrent fan-out to every member) and the orchestrator that runs N rounds
// plus a closing summary.
//
// Ordering guarantees:
//   - Every round records the chairman first, then members in roster order
//   - Member completion order never affects aggregation or transcript order
//   - The transcript is only written by the goroutine running the discussion
package discussion
