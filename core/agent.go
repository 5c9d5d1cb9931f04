package core

import "context"

// Agent defines the capability every council participant implements.
//
// Implementations must:
//   - Never return an error: failures are converted into text of the form
//     "Error from <name>: <cause>" and returned like any generated response
//   - Bound each call with their own timeout
//   - Be safe for concurrent use; an Agent holds no per-call mutable state
type Agent interface {
	Name() string
	ModelID() string
	Generate(ctx context.Context, prompt string) string
}

// AgentInfo carries identifying details about an agent used in listings & logs.
type AgentInfo struct {
	Name    string `json:"name"`
	ModelID string `json:"model_id"`
}

// InfoOf returns the identifying details of an agent.
func InfoOf(a Agent) AgentInfo { return AgentInfo{Name: a.Name(), ModelID: a.ModelID()} }
