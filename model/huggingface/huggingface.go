// Package huggingface provides a model.Model backed by the Hugging Face
// Inference API. The API answers in more than one shape depending on the
// hosted model, so responses are normalised here:
//
//  1. a list of objects carrying "generated_text" or "text"
//  2. a single object carrying "generated_text" or "text"
//  3. anything else is returned as the raw payload
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hupe1980/llmcouncil/model"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the Inference API root; the model id is appended.
const DefaultBaseURL = "https://api-inference.huggingface.co/models/"

// textFields are probed in order on every candidate object.
var textFields = []string{"generated_text", "text"}

// Options configures the Hugging Face model adapter.
type Options struct {
	Model        string
	APIKey       string
	BaseURL      string
	MaxNewTokens int
	HTTPClient   *http.Client
}

// Model calls the Inference API over plain HTTP.
type Model struct {
	opts Options
	http *http.Client
}

// NewModel creates a Hugging Face model adapter.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:        "meta-llama/Llama-3.2-3B-Instruct",
		BaseURL:      DefaultBaseURL,
		MaxNewTokens: 500,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Model{opts: opts, http: client}
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens int `json:"max_new_tokens"`
}

// Generate implements model.Model. The Inference API has no streaming mode
// here; streaming requests are answered with a single final response.
func (m *Model) Generate(ctx context.Context, req model.Request) (<-chan model.Response, <-chan error) {
	out := make(chan model.Response, 1)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		prompt := req.Prompt
		if req.Instructions != "" {
			prompt = req.Instructions + "\n\n" + prompt
		}
		payload, err := m.call(ctx, prompt)
		if err != nil {
			errCh <- err
			return
		}
		out <- model.Response{Text: ExtractText(payload), FinishReason: "stop"}
	}()

	return out, errCh
}

func (m *Model) call(ctx context.Context, prompt string) ([]byte, error) {
	body, err := json.Marshal(inferenceRequest{
		Inputs:     prompt,
		Parameters: inferenceParameters{MaxNewTokens: m.opts.MaxNewTokens},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(m.opts.BaseURL, "/") + "/" + m.opts.Model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if m.opts.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+m.opts.APIKey)
	}

	resp, err := m.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("huggingface api error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return data, nil
}

// ExtractText normalises an Inference API payload into plain text. It never
// fails: unrecognised shapes are returned as the raw payload.
func ExtractText(payload []byte) string {
	result := gjson.ParseBytes(payload)

	if result.IsArray() {
		if first := result.Get("0"); first.IsObject() {
			if text, ok := textField(first); ok {
				return text
			}
		}
	}
	if result.IsObject() {
		if text, ok := textField(result); ok {
			return text
		}
	}
	return strings.TrimSpace(string(payload))
}

func textField(obj gjson.Result) (string, bool) {
	for _, field := range textFields {
		if v := obj.Get(field); v.Exists() {
			return v.String(), true
		}
	}
	return "", false
}

// Info returns metadata describing this model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "huggingface"}
}
