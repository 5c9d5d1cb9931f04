package roster

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterYAML = `
chairman:
  name: Chairman (Claude)
  provider: anthropic
members:
  - name: Council Member 1 (Mistral)
    provider: mistral
    model: mistral-small-latest
  - name: Council Member 2 (Llama)
    provider: huggingface
    timeout: 30s
    max_tokens: 500
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(rosterYAML))
	require.NoError(t, err)

	assert.Equal(t, Spec{Name: "Chairman (Claude)", Provider: ProviderAnthropic}, f.Chairman)
	require.Len(t, f.Members, 2)
	assert.Equal(t, "mistral-small-latest", f.Members[0].Model)
	assert.Equal(t, 30*time.Second, f.Members[1].Timeout)
	assert.Equal(t, int64(500), f.Members[1].MaxTokens)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "no members", doc: "chairman: {name: C, provider: gemini}\nmembers: []\n"},
		{name: "missing provider", doc: "chairman: {name: C}\nmembers: [{name: A, provider: groq}]\n"},
		{name: "unknown key", doc: "chairman: {name: C, provider: gemini, colour: red}\nmembers: [{name: A, provider: groq}]\n"},
		{name: "malformed", doc: "chairman: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rosterYAML), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Chairman (Claude)", f.Chairman.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
