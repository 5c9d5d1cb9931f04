package discussion

import (
	"context"
	"fmt"

	"github.com/hupe1980/llmcouncil/agent"
	"github.com/hupe1980/llmcouncil/core"
	"github.com/hupe1980/llmcouncil/logging"
)

// ExecutorOptions configures an Executor.
type ExecutorOptions struct {
	// Window bounds how many recent utterances are rendered into prompts.
	// 0 renders the whole transcript.
	Window int
	Logger logging.Logger
}

// Executor runs a single round: the chairman speaks, then every member
// answers the same prompt concurrently.
type Executor struct {
	chairman core.Agent
	members  []core.Agent
	window   int
	logger   logging.Logger
}

// NewExecutor creates a round executor for a fixed roster.
func NewExecutor(chairman core.Agent, members []core.Agent, optFns ...func(o *ExecutorOptions)) *Executor {
	opts := ExecutorOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Executor{
		chairman: chairman,
		members:  members,
		window:   opts.Window,
		logger:   opts.Logger,
	}
}

// Run executes round n (1-based) and appends every utterance to t. Agent
// failures arrive as text and never fail the round; an error means the round
// could not be executed at all.
func (e *Executor) Run(ctx context.Context, n int, t *Transcript) (core.Round, error) {
	defer logging.StartTimer(e.logger, "round", "round", n)()

	responses := core.NewResponses()

	prompt, err := ChairmanPrompt(n, t.Topic(), t.Window(e.window))
	if err != nil {
		return core.Round{}, err
	}
	chair := e.chairman.Generate(ctx, prompt)
	responses.Set(core.ChairmanLabel, chair)
	t.Append(core.ChairmanLabel, chair)

	prompt, err = MemberPrompt(t.Topic(), t.Window(e.window))
	if err != nil {
		return core.Round{}, err
	}
	answers, err := agent.Gather(ctx, e.members, prompt)
	if err != nil {
		return core.Round{}, fmt.Errorf("round %d: %w", n, err)
	}

	for i, m := range e.members {
		responses.Set(m.Name(), answers[i])
		t.Append(m.Name(), answers[i])
	}

	return core.Round{Label: core.RoundNumber(n), Responses: responses}, nil
}
