package discussion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/llmcouncil/core"
	"github.com/hupe1980/llmcouncil/logging"
)

// Options configures an Orchestrator.
type Options struct {
	// Window bounds how many recent utterances are rendered into prompts.
	// 0 (default) renders the whole transcript.
	Window int
	// MaxRounds rejects requests asking for more rounds. Defaults to
	// core.DefaultMaxRounds.
	MaxRounds int
	Logger    logging.Logger
}

// Orchestrator drives complete discussions over a fixed roster. It holds no
// per-discussion state and may run any number of discussions concurrently.
type Orchestrator struct {
	chairman  core.Agent
	members   []core.Agent
	executor  *Executor
	window    int
	maxRounds int
	logger    logging.Logger
}

// NewOrchestrator creates an orchestrator for the given chairman and members.
// The members slice is copied; roster order is preserved.
func NewOrchestrator(chairman core.Agent, members []core.Agent, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{MaxRounds: core.DefaultMaxRounds, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.MaxRounds < 1 {
		opts.MaxRounds = core.DefaultMaxRounds
	}

	roster := make([]core.Agent, len(members))
	copy(roster, members)

	return &Orchestrator{
		chairman: chairman,
		members:  roster,
		executor: NewExecutor(chairman, roster, func(o *ExecutorOptions) {
			o.Window = opts.Window
			o.Logger = opts.Logger
		}),
		window:    opts.Window,
		maxRounds: opts.MaxRounds,
		logger:    opts.Logger,
	}
}

// Validate checks a request without contacting any agent. maxRounds < 1
// falls back to core.DefaultMaxRounds.
func Validate(req core.DiscussRequest, maxRounds int) error {
	if maxRounds < 1 {
		maxRounds = core.DefaultMaxRounds
	}
	if strings.TrimSpace(req.Topic) == "" {
		return fmt.Errorf("%w: topic must not be empty", core.ErrInvalidRequest)
	}
	if req.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", core.ErrInvalidRequest, req.Rounds)
	}
	if req.Rounds > maxRounds {
		return fmt.Errorf("%w: rounds must be at most %d, got %d", core.ErrInvalidRequest, maxRounds, req.Rounds)
	}
	return nil
}

// MaxRounds reports the largest round count Run accepts.
func (o *Orchestrator) MaxRounds() int { return o.maxRounds }

// Run executes rounds 1..req.Rounds followed by the chairman's summary and
// returns the finished discussion. Invalid requests fail with
// core.ErrInvalidRequest before any agent is called. Unexpected failures
// (including panics) abandon the discussion with core.ErrDiscussionFailed.
func (o *Orchestrator) Run(ctx context.Context, req core.DiscussRequest) (d *core.Discussion, err error) {
	if err := Validate(req, o.maxRounds); err != nil {
		return nil, err
	}

	id := core.NewID()
	logger := logging.WithDiscussion(o.logger, id)
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", core.ErrDiscussionFailed, r)
			logging.ErrorWithStack(logger, err, "discussion panicked")
			d = nil
		}
	}()

	logger.Info("discussion started", "topic", req.Topic, "rounds", req.Rounds, "members", len(o.members))

	t := NewTranscript(req.Topic)
	rounds := make([]core.Round, 0, min(req.Rounds, o.maxRounds)+1)

	for n := 1; n <= req.Rounds; n++ {
		round, err := o.executor.Run(ctx, n, t)
		if err != nil {
			logger.Error("round failed", "round", n, "error", err)
			return nil, fmt.Errorf("%w: %w", core.ErrDiscussionFailed, err)
		}
		rounds = append(rounds, round)
	}

	prompt, err := SummaryPrompt(req.Topic, t.Window(o.window))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrDiscussionFailed, err)
	}
	summary := o.chairman.Generate(ctx, prompt)
	t.Append(core.ChairmanLabel, summary)

	responses := core.NewResponses()
	responses.Set(core.ChairmanLabel, summary)
	rounds = append(rounds, core.Round{Label: core.SummaryLabel, Responses: responses})

	completed := time.Now()
	logger.Info("discussion completed", "rounds", len(rounds), "duration", completed.Sub(started))

	return &core.Discussion{
		ID:          id,
		Result:      core.DiscussResponse{Topic: req.Topic, Rounds: rounds},
		Transcript:  t.Utterances(),
		StartedAt:   started,
		CompletedAt: completed,
	}, nil
}

// Members returns the roster snapshot.
func (o *Orchestrator) Members() core.MembersResponse {
	names := make([]string, len(o.members))
	for i, m := range o.members {
		names[i] = m.Name()
	}
	return core.MembersResponse{Chairman: o.chairman.Name(), Members: names}
}
