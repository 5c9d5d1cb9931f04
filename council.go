// Package llmcouncil provides a high-level façade over the discussion engine:
// a fixed roster (one chairman, several members) debating a topic over a
// number of rounds, with finished discussions kept for later retrieval.
//
// Most applications interact with this package by:
//  1. Building a roster (roster.NewFactory().Build(roster.Default(keys)))
//  2. Creating a Council via New()
//  3. Running discussions with Discuss
//
// Defaults are safe for local development: finished discussions live in a
// bounded in-memory store and logging is disabled.
package llmcouncil

import (
	"context"
	"fmt"

	"github.com/hupe1980/llmcouncil/core"
	"github.com/hupe1980/llmcouncil/discussion"
	"github.com/hupe1980/llmcouncil/logging"
	"github.com/hupe1980/llmcouncil/roster"
	"github.com/hupe1980/llmcouncil/store"
)

// Options configures the Council instance.
type Options struct {
	// TranscriptWindow bounds how many recent utterances are rendered into
	// prompts. 0 renders the whole transcript.
	TranscriptWindow int

	// MaxRounds caps the round count of a discussion (defaults to
	// core.DefaultMaxRounds).
	MaxRounds int

	// Store keeps finished discussions (defaults to a bounded in-memory store).
	Store core.DiscussionStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Council aggregates the roster, the orchestrator and the discussion store.
// Methods are safe for concurrent use.
type Council struct {
	roster       *roster.Roster
	orchestrator *discussion.Orchestrator
	store        core.DiscussionStore
	logger       logging.Logger
}

// New creates a Council for r.
func New(r *roster.Roster, optFns ...func(o *Options)) (*Council, error) {
	if r == nil {
		return nil, core.ErrEmptyRoster
	}

	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Store == nil {
		s, err := store.NewInMemoryStore(store.DefaultSize)
		if err != nil {
			return nil, err
		}
		opts.Store = s
	}

	return &Council{
		roster: r,
		orchestrator: discussion.NewOrchestrator(r.Chairman, r.Members, func(o *discussion.Options) {
			o.Window = opts.TranscriptWindow
			o.MaxRounds = opts.MaxRounds
			o.Logger = opts.Logger
		}),
		store:  opts.Store,
		logger: opts.Logger,
	}, nil
}

// Discuss runs a complete discussion and keeps it for later retrieval.
func (c *Council) Discuss(ctx context.Context, req core.DiscussRequest) (*core.Discussion, error) {
	d, err := c.orchestrator.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.store.Save(*d); err != nil {
		// the result is complete; losing it from the cache is not fatal
		c.logger.Warn("failed to store discussion", "discussion_id", d.ID, "error", err)
	}
	return d, nil
}

// MaxRounds reports the largest round count Discuss accepts.
func (c *Council) MaxRounds() int {
	return c.orchestrator.MaxRounds()
}

// Members returns the chairman and member names in roster order.
func (c *Council) Members() core.MembersResponse {
	return c.orchestrator.Members()
}

// Participants lists every participant with its backend model, chairman first.
func (c *Council) Participants() []core.AgentInfo {
	return c.roster.Info()
}

// Discussion returns a finished discussion by id.
func (c *Council) Discussion(id string) (core.Discussion, error) {
	d, err := c.store.Get(id)
	if err != nil {
		return core.Discussion{}, fmt.Errorf("get discussion: %w", err)
	}
	return d, nil
}
