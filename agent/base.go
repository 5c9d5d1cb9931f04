package agent

import "fmt"

// BaseAgent bundles the identity every council participant shares: display
// name, backend model identifier and a description. Embed it in concrete
// agent implementations and supply a Generate method to satisfy core.Agent.
// BaseAgent is immutable after construction and safe for concurrent use.
type BaseAgent struct {
	name        string // Display name, unique within a roster
	modelID     string // Opaque backend model identifier
	description string // Detailed description of agent's purpose
}

// NewBaseAgent constructs a BaseAgent with a generated description.
func NewBaseAgent(name, modelID string) BaseAgent {
	return BaseAgent{
		name:        name,
		modelID:     modelID,
		description: fmt.Sprintf("Agent %s (%s)", name, modelID),
	}
}

// Name returns the display name for this agent.
func (b *BaseAgent) Name() string { return b.name }

// ModelID returns the backend model identifier.
func (b *BaseAgent) ModelID() string { return b.modelID }

// Description returns a detailed description of this agent's purpose.
func (b *BaseAgent) Description() string { return b.description }

// ErrorText renders a recovered failure as generated text. The
// "Error from <name>: " prefix is the contract callers and tests rely on.
func ErrorText(name string, cause error) string {
	return fmt.Sprintf("Error from %s: %v", name, cause)
}
