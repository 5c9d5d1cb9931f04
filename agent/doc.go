// Package agent contains the concrete council participants and the fan-out
// helper used to address them concurrently. The package focuses on three
// concerns:
//
//  1. Identity plumbing shared by all participants (BaseAgent)
//  2. The failure isolation boundary around a model backend (ModelAgent)
//  3. Order-preserving concurrent dispatch of one prompt (Gather)
//
// Design principles:
//   - Agents never return errors: failures become "Error from <name>: <cause>"
//   - Agents are immutable after construction and shared across discussions
//   - Each agent bounds its own calls; callers do not impose timeouts
//   - Orchestration depends only on core.Agent, never on concrete types
package agent
