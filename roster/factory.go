package roster

import (
	"fmt"
	"strings"
	"sync"
	"time"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/llmcouncil/agent"
	"github.com/hupe1980/llmcouncil/config"
	"github.com/hupe1980/llmcouncil/core"
	"github.com/hupe1980/llmcouncil/internal/util"
	"github.com/hupe1980/llmcouncil/logging"
	"github.com/hupe1980/llmcouncil/model"
	"github.com/hupe1980/llmcouncil/model/anthropic"
	"github.com/hupe1980/llmcouncil/model/huggingface"
	"github.com/hupe1980/llmcouncil/model/openai"
	openaisdk "github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	"github.com/samber/lo"
)

// Provider names a supported model backend.
type Provider string

// Supported providers.
const (
	ProviderGemini      Provider = "gemini"
	ProviderMistral     Provider = "mistral"
	ProviderGroq        Provider = "groq"
	ProviderOpenAI      Provider = "openai"
	ProviderAnthropic   Provider = "anthropic"
	ProviderHuggingFace Provider = "huggingface"
)

// Default model ids per provider.
const (
	DefaultGeminiModel      = "gemini-2.0-flash"
	DefaultMistralModel     = "mistral-small-latest"
	DefaultGroqModel        = "llama-3.3-70b-versatile"
	DefaultOpenAIModel      = "gpt-4o-mini"
	DefaultHuggingFaceModel = "meta-llama/Llama-3.2-3B-Instruct"
)

// FactoryOptions configures how agents are built from specs.
type FactoryOptions struct {
	Keys      config.ProviderKeys
	Timeout   time.Duration // Per-call bound when a spec sets none
	Streaming bool
	Logger    logging.Logger
	// BaseURLs overrides provider endpoints; used to point at test servers.
	BaseURLs map[Provider]string
}

// Factory turns roster specs into agents. Agents of the same provider share
// one SDK client, and with it the connection pool.
type Factory struct {
	opts FactoryOptions

	mu              sync.Mutex
	openAIClients   map[Provider]*openaisdk.Client
	anthropicClient *anthropicsdk.Client
}

// NewFactory creates an agent factory.
func NewFactory(optFns ...func(o *FactoryOptions)) *Factory {
	opts := FactoryOptions{
		Timeout: agent.DefaultTimeout,
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Factory{opts: opts, openAIClients: make(map[Provider]*openaisdk.Client)}
}

// Build assembles a validated roster from a roster file.
func (f *Factory) Build(file File) (*Roster, error) {
	chairman, err := f.Agent(file.Chairman)
	if err != nil {
		return nil, fmt.Errorf("chairman: %w", err)
	}
	members := make([]core.Agent, 0, len(file.Members))
	for _, spec := range file.Members {
		m, err := f.Agent(spec)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", spec.Name, err)
		}
		members = append(members, m)
	}
	return New(chairman, members...)
}

// Agent builds a single agent for spec.
func (f *Factory) Agent(spec Spec) (core.Agent, error) {
	llm, err := f.model(spec)
	if err != nil {
		return nil, err
	}

	// Instructions may reference the participant: "You are {{.name}}".
	instruction, err := util.RenderTemplate(spec.Instruction, map[string]any{
		"name":     spec.Name,
		"provider": string(spec.Provider),
		"model":    llm.Info().Name,
	})
	if err != nil {
		return nil, fmt.Errorf("instruction for %q: %w", spec.Name, err)
	}

	timeout := lo.Ternary(spec.Timeout > 0, spec.Timeout, f.opts.Timeout)

	return agent.NewModelAgent(spec.Name, llm, func(o *agent.ModelAgentOptions) {
		o.Instruction = instruction
		o.EnableStreaming = f.opts.Streaming
		o.Timeout = timeout
		o.Logger = f.opts.Logger
	}), nil
}

func (f *Factory) model(spec Spec) (model.Model, error) {
	provider := Provider(strings.ToLower(string(spec.Provider)))
	switch provider {
	case ProviderGemini:
		return f.openAICompatible(spec, provider, f.opts.Keys.Google, openai.GeminiBaseURL, DefaultGeminiModel), nil
	case ProviderMistral:
		return f.openAICompatible(spec, provider, f.opts.Keys.Mistral, openai.MistralBaseURL, DefaultMistralModel), nil
	case ProviderGroq:
		return f.openAICompatible(spec, provider, f.opts.Keys.Groq, openai.GroqBaseURL, DefaultGroqModel), nil
	case ProviderOpenAI:
		return f.openAICompatible(spec, provider, f.opts.Keys.OpenAI, "", DefaultOpenAIModel), nil
	case ProviderAnthropic:
		return anthropic.NewModelFromClient(f.anthropic(), func(o *anthropic.Options) {
			if spec.Model != "" {
				o.Model = anthropicsdk.Model(spec.Model)
			}
			if spec.MaxTokens > 0 {
				o.MaxTokens = spec.MaxTokens
			}
		}), nil
	case ProviderHuggingFace:
		return huggingface.NewModel(func(o *huggingface.Options) {
			o.APIKey = f.opts.Keys.HuggingFace
			o.Model = lo.CoalesceOrEmpty(spec.Model, DefaultHuggingFaceModel)
			o.BaseURL = lo.CoalesceOrEmpty(f.opts.BaseURLs[provider], huggingface.DefaultBaseURL)
			if spec.MaxTokens > 0 {
				o.MaxNewTokens = int(spec.MaxTokens)
			}
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownProvider, spec.Provider)
	}
}

func (f *Factory) openAICompatible(spec Spec, provider Provider, key, baseURL, defaultModel string) model.Model {
	client := f.openAIClient(provider, key, lo.CoalesceOrEmpty(f.opts.BaseURLs[provider], baseURL))
	return openai.NewModelFromClient(client, func(o *openai.Options) {
		o.Provider = string(provider)
		o.Model = lo.CoalesceOrEmpty(spec.Model, defaultModel)
		if spec.MaxTokens > 0 {
			o.MaxTokens = spec.MaxTokens
		}
	})
}

func (f *Factory) openAIClient(provider Provider, key, baseURL string) *openaisdk.Client {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.openAIClients[provider]; ok {
		return c
	}
	var opts []openaioption.RequestOption
	if key != "" {
		opts = append(opts, openaioption.WithAPIKey(key))
	}
	if baseURL != "" {
		opts = append(opts, openaioption.WithBaseURL(baseURL))
	}
	c := openaisdk.NewClient(opts...)
	f.openAIClients[provider] = &c
	return &c
}

func (f *Factory) anthropic() *anthropicsdk.Client {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.anthropicClient != nil {
		return f.anthropicClient
	}
	var opts []anthropicoption.RequestOption
	if f.opts.Keys.Anthropic != "" {
		opts = append(opts, anthropicoption.WithAPIKey(f.opts.Keys.Anthropic))
	}
	if u := f.opts.BaseURLs[ProviderAnthropic]; u != "" {
		opts = append(opts, anthropicoption.WithBaseURL(u))
	}
	c := anthropicsdk.NewClient(opts...)
	f.anthropicClient = &c
	return f.anthropicClient
}
