package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrEmptyCompletion is returned when a provider answers without any text.
var ErrEmptyCompletion = errors.New("empty completion")

// Request captures the normalized model input produced by agents.
type Request struct {
	Instructions string `json:"instructions,omitempty"` // Optional system prompt
	Prompt       string `json:"prompt"`                 // User prompt text
	Stream       bool   `json:"stream,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is a (partial or final) chunk emitted by a model.
type Response struct {
	ID           string      `json:"id"`
	Partial      bool        `json:"partial"` // Indicates if this is a partial response
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason"` // "stop", "length", ...
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "huggingface", ...
}

// Model is the minimal interface required by agents to drive generation.
//
// Implementations emit zero or more partial responses followed by exactly one
// final response, or a single error. Both channels are closed when done.
type Model interface {
	Generate(ctx context.Context, req Request) (<-chan Response, <-chan error)

	// Info returns information about the model implementation.
	Info() Info
}

// Completion is the aggregated outcome of a Generate call.
type Completion struct {
	Text         string
	FinishReason string
	Usage        *TokenUsage
}

// Collect drains the channels returned by Model.Generate. The final response
// text wins; if the stream ends without a final response the concatenated
// partial text is used. An empty result is reported as ErrEmptyCompletion.
func Collect(ctx context.Context, respCh <-chan Response, errCh <-chan error) (Completion, error) {
	var (
		partial strings.Builder
		out     Completion
		final   bool
	)
	for respCh != nil || errCh != nil {
		select {
		case <-ctx.Done():
			go drain(respCh, errCh)
			return Completion{}, ctx.Err()
		case r, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			if r.Partial {
				partial.WriteString(r.Text)
				continue
			}
			final = true
			out = Completion{Text: r.Text, FinishReason: r.FinishReason, Usage: r.Usage}
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				return Completion{}, err
			}
		}
	}
	if !final || out.Text == "" {
		out.Text = partial.String()
	}
	if strings.TrimSpace(out.Text) == "" {
		return Completion{}, ErrEmptyCompletion
	}
	return out, nil
}

// drain consumes whatever a provider still emits after the caller gave up so
// the provider goroutine can exit.
func drain(respCh <-chan Response, errCh <-chan error) {
	for respCh != nil || errCh != nil {
		select {
		case _, ok := <-respCh:
			if !ok {
				respCh = nil
			}
		case _, ok := <-errCh:
			if !ok {
				errCh = nil
			}
		}
	}
}

// MockModel is a lightweight in‑memory Model useful for tests & examples.
type MockModel struct {
	info Info

	mu        sync.Mutex
	responses map[string]string
	calls     int
}

// NewMockModel constructs a MockModel.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// Calls returns the number of Generate invocations.
func (m *MockModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Generate implements Model; emits optional streaming rune chunks then final response.
func (m *MockModel) Generate(ctx context.Context, req Request) (<-chan Response, <-chan error) {
	respCh := make(chan Response, 16)
	errCh := make(chan error, 1)

	m.mu.Lock()
	m.calls++
	full := m.responses[req.Prompt]
	m.mu.Unlock()

	go func() {
		defer close(respCh)
		defer close(errCh)
		if req.Prompt == "" {
			errCh <- fmt.Errorf("no prompt provided")
			return
		}
		if full == "" {
			full = fmt.Sprintf("Mock response to: %s", req.Prompt)
		}
		if req.Stream {
			for _, r := range full {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case respCh <- Response{Partial: true, Text: string(r)}:
				}
			}
		}
		respCh <- Response{Text: full, FinishReason: "stop"}
	}()
	return respCh, errCh
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
