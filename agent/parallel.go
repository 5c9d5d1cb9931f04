package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/llmcouncil/core"
)

// ErrAgentPanic is returned by Gather when an agent panicked instead of
// converting its failure to text.
var ErrAgentPanic = errors.New("agent panicked")

// Gather sends the same prompt to every agent concurrently and waits for all
// of them (join-all, no partial completion).
//
// The returned slice is indexed by the position of each agent in agents, so
// the aggregation order is the configured order regardless of which backend
// answers first. Each goroutine writes only its own slot; no locking is
// needed.
//
// A panicking agent does not crash the process: its panic is recovered and
// reported through the returned error (all panics joined), after every
// sibling has finished.
func Gather(ctx context.Context, agents []core.Agent, prompt string) ([]string, error) {
	var wg sync.WaitGroup
	results := make([]string, len(agents))
	errs := make([]error, len(agents))

	for i, a := range agents {
		wg.Add(1)
		go func(i int, a core.Agent) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("%w: %s: %v", ErrAgentPanic, a.Name(), r)
				}
			}()
			results[i] = a.Generate(ctx, prompt)
		}(i, a)
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}
