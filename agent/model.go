package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/llmcouncil/logging"
	"github.com/hupe1980/llmcouncil/model"
)

// DefaultTimeout bounds a single Generate call unless overridden.
const DefaultTimeout = 60 * time.Second

// ModelAgentOptions configures a ModelAgent instance.
//
// Use functional options with NewModelAgent to override defaults.
type ModelAgentOptions struct {
	ModelID         string         // Reported model id; defaults to the model's Info().Name
	Instruction     string         // Optional system prompt sent with every call
	EnableStreaming bool           // Consume the backend as a stream of chunks
	Timeout         time.Duration  // Per-call bound; <= 0 disables the agent-level bound
	Logger          logging.Logger // Defaults to NoOpLogger
}

// ModelAgent adapts any model.Model to core.Agent and forms the failure
// isolation boundary of the council: every error raised while producing a
// completion (transport, payload, backend, timeout, panic) is converted to
// text via ErrorText and never reaches the caller.
type ModelAgent struct {
	BaseAgent
	llm             model.Model
	instruction     string
	enableStreaming bool
	timeout         time.Duration
	logger          logging.Logger
}

// NewModelAgent creates a new model-based agent.
func NewModelAgent(name string, llm model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	opts := ModelAgentOptions{
		ModelID: llm.Info().Name,
		Timeout: DefaultTimeout,
		Logger:  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &ModelAgent{
		BaseAgent:       NewBaseAgent(name, opts.ModelID),
		llm:             llm,
		instruction:     opts.Instruction,
		enableStreaming: opts.EnableStreaming,
		timeout:         opts.Timeout,
		logger:          opts.Logger.With("agent", name),
	}
}

// Model returns the language model backing this agent.
func (a *ModelAgent) Model() model.Model { return a.llm }

// IsStreamingEnabled returns whether the backend is consumed as a stream.
func (a *ModelAgent) IsStreamingEnabled() bool { return a.enableStreaming }

// Timeout returns the per-call bound.
func (a *ModelAgent) Timeout() time.Duration { return a.timeout }

// Generate implements core.Agent. It always returns text.
func (a *ModelAgent) Generate(ctx context.Context, prompt string) (text string) {
	start := time.Now()
	tokens := 0

	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			text = ErrorText(a.Name(), err)
		}
		logging.LogAgentCall(a.logger, a.Name(), a.ModelID(), tokens, time.Since(start), err)
	}()

	var c model.Completion
	c, err = a.complete(ctx, prompt)
	if err != nil {
		return ErrorText(a.Name(), err)
	}
	if c.Usage != nil {
		tokens = c.Usage.TotalTokens
	}
	return c.Text
}

func (a *ModelAgent) complete(ctx context.Context, prompt string) (model.Completion, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	respCh, errCh := a.llm.Generate(ctx, model.Request{
		Instructions: a.instruction,
		Prompt:       prompt,
		Stream:       a.enableStreaming,
	})
	return model.Collect(ctx, respCh, errCh)
}
