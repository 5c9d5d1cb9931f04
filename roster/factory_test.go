package roster

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hupe1980/llmcouncil/agent"
	"github.com/hupe1980/llmcouncil/config"
	"github.com/hupe1980/llmcouncil/core"
	"github.com/hupe1980/llmcouncil/model/anthropic"
	"github.com/hupe1980/llmcouncil/model/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	f := Default(config.ProviderKeys{})

	assert.Equal(t, "Chairman (Gemini)", f.Chairman.Name)
	names := make([]string, len(f.Members))
	for i, m := range f.Members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{
		"Council Member 1 (Mistral)",
		"Council Member 2 (Llama 3.3)",
		"Council Member 3 (Llama 3.1)",
		"Council Member 4 (Gemini)",
	}, names)

	withHF := Default(config.ProviderKeys{HuggingFace: "hf-key"})
	require.Len(t, withHF.Members, 5)
	assert.Equal(t, ProviderHuggingFace, withHF.Members[4].Provider)
	assert.Equal(t, 30*time.Second, withHF.Members[4].Timeout)
}

func TestLoad_DefaultWhenNoPath(t *testing.T) {
	f, err := Load("", config.ProviderKeys{})
	require.NoError(t, err)
	assert.Equal(t, Default(config.ProviderKeys{}), f)
}

func TestFactory_BuildDefault(t *testing.T) {
	r, err := NewFactory().Build(Default(config.ProviderKeys{}))
	require.NoError(t, err)

	assert.Equal(t, []core.AgentInfo{
		{Name: "Chairman (Gemini)", ModelID: "gemini-2.0-flash"},
		{Name: "Council Member 1 (Mistral)", ModelID: "mistral-small-latest"},
		{Name: "Council Member 2 (Llama 3.3)", ModelID: "llama-3.3-70b-versatile"},
		{Name: "Council Member 3 (Llama 3.1)", ModelID: "llama-3.1-8b-instant"},
		{Name: "Council Member 4 (Gemini)", ModelID: "gemini-2.0-flash"},
	}, r.Info())
}

func TestFactory_AgentOptions(t *testing.T) {
	f := NewFactory(func(o *FactoryOptions) {
		o.Timeout = 5 * time.Second
		o.Streaming = true
	})

	a, err := f.Agent(Spec{Name: "A", Provider: "GROQ"})
	require.NoError(t, err)
	ma, ok := a.(*agent.ModelAgent)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, ma.Timeout())
	assert.True(t, ma.IsStreamingEnabled())
	assert.Equal(t, DefaultGroqModel, ma.ModelID())
	assert.Equal(t, "groq", ma.Model().Info().Provider)

	b, err := f.Agent(Spec{Name: "B", Provider: ProviderAnthropic, Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, time.Second, b.(*agent.ModelAgent).Timeout())
	assert.Equal(t, "anthropic", b.(*agent.ModelAgent).Model().Info().Provider)

	c, err := f.Agent(Spec{Name: "C", Provider: ProviderHuggingFace})
	require.NoError(t, err)
	assert.Equal(t, DefaultHuggingFaceModel, c.ModelID())
}

func TestFactory_UnknownProvider(t *testing.T) {
	_, err := NewFactory().Agent(Spec{Name: "X", Provider: "skynet"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownProvider))

	_, err = NewFactory().Build(File{
		Chairman: Spec{Name: "C", Provider: ProviderGemini},
		Members:  []Spec{{Name: "X", Provider: "skynet"}},
	})
	assert.True(t, errors.Is(err, core.ErrUnknownProvider))
}

func TestFactory_DuplicateNames(t *testing.T) {
	_, err := NewFactory().Build(File{
		Chairman: Spec{Name: "C", Provider: ProviderGemini},
		Members:  []Spec{{Name: "A", Provider: ProviderGroq}, {Name: "A", Provider: ProviderMistral}},
	})
	assert.True(t, errors.Is(err, core.ErrDuplicateParticipant))
}

func TestFactory_SharesClientPerProvider(t *testing.T) {
	f := NewFactory()
	backend := func(spec Spec) any {
		t.Helper()
		a, err := f.Agent(spec)
		require.NoError(t, err)
		switch m := a.(*agent.ModelAgent).Model().(type) {
		case *openai.Model:
			return m.Client()
		case *anthropic.Model:
			return m.Client()
		default:
			t.Fatalf("unexpected model %T", m)
			return nil
		}
	}

	chair := backend(Spec{Name: "Chairman (Gemini)", Provider: ProviderGemini})
	member := backend(Spec{Name: "Council Member 4 (Gemini)", Provider: ProviderGemini, Model: "gemini-2.5-flash"})
	groq := backend(Spec{Name: "Council Member 2 (Llama 3.3)", Provider: ProviderGroq})
	assert.Same(t, chair, member)
	assert.NotSame(t, chair, groq)

	claude1 := backend(Spec{Name: "A", Provider: ProviderAnthropic})
	claude2 := backend(Spec{Name: "B", Provider: ProviderAnthropic})
	assert.Same(t, claude1, claude2)
}

func TestFactory_AgentCallsBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"From Groq."}}]}`))
	}))
	t.Cleanup(srv.Close)

	f := NewFactory(func(o *FactoryOptions) {
		o.Keys = config.ProviderKeys{Groq: "gsk-test"}
		o.BaseURLs = map[Provider]string{ProviderGroq: srv.URL + "/"}
	})
	a, err := f.Agent(Spec{Name: "Council Member 2 (Llama 3.3)", Provider: ProviderGroq})
	require.NoError(t, err)

	assert.Equal(t, "From Groq.", a.Generate(context.Background(), "Topic?"))
}

func TestFactory_InstructionTemplate(t *testing.T) {
	system := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if len(body.Messages) > 0 {
			system <- body.Messages[0].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"ok"}}]}`))
	}))
	t.Cleanup(srv.Close)

	f := NewFactory(func(o *FactoryOptions) {
		o.BaseURLs = map[Provider]string{ProviderMistral: srv.URL + "/"}
	})
	a, err := f.Agent(Spec{
		Name:        "Council Member 1 (Mistral)",
		Provider:    ProviderMistral,
		Instruction: "You are {{.name}} running {{.model}}.",
	})
	require.NoError(t, err)

	assert.Equal(t, "ok", a.Generate(context.Background(), "Topic?"))
	assert.Equal(t, "You are Council Member 1 (Mistral) running mistral-small-latest.", <-system)

	_, err = f.Agent(Spec{Name: "X", Provider: ProviderMistral, Instruction: "{{.unknown}}"})
	assert.Error(t, err)
}
