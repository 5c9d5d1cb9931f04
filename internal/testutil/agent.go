package testutil

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// FakeAgent is a scripted core.Agent. Replies are returned in order; once
// exhausted the last reply repeats. Every prompt is recorded.
type FakeAgent struct {
	name    string
	modelID string
	replies []string
	delay   time.Duration
	panicOn string

	calls   atomic.Int64
	mu      sync.Mutex
	prompts []string
}

// NewFakeAgent creates a fake agent answering with replies in order.
func NewFakeAgent(name string, replies ...string) *FakeAgent {
	return &FakeAgent{name: name, modelID: "fake-model", replies: replies}
}

// WithDelay makes every call sleep d (or until ctx is done) before answering (chainable).
func (f *FakeAgent) WithDelay(d time.Duration) *FakeAgent {
	f.delay = d
	return f
}

// WithPanic makes the agent panic with msg instead of answering (chainable).
func (f *FakeAgent) WithPanic(msg string) *FakeAgent {
	f.panicOn = msg
	return f
}

// Name implements core.Agent.
func (f *FakeAgent) Name() string { return f.name }

// ModelID implements core.Agent.
func (f *FakeAgent) ModelID() string { return f.modelID }

// Generate implements core.Agent.
func (f *FakeAgent) Generate(ctx context.Context, prompt string) string {
	n := f.calls.Add(1)

	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "Error from " + f.name + ": " + ctx.Err().Error()
		}
	}
	if f.panicOn != "" {
		panic(f.panicOn)
	}
	if len(f.replies) == 0 {
		return ""
	}
	idx := int(n) - 1
	if idx >= len(f.replies) {
		idx = len(f.replies) - 1
	}
	return f.replies[idx]
}

// Calls returns the number of Generate invocations.
func (f *FakeAgent) Calls() int { return int(f.calls.Load()) }

// Prompts returns a copy of every prompt received, in call order.
func (f *FakeAgent) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.prompts))
	copy(out, f.prompts)
	return out
}

// TotalCalls sums Calls over agents.
func TotalCalls(agents ...*FakeAgent) int {
	total := 0
	for _, a := range agents {
		total += a.Calls()
	}
	return total
}
