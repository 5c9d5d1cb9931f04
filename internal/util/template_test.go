package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		state map[string]any
		want  string
	}{
		{name: "no markers", text: "plain text", want: "plain text"},
		{name: "substitution", text: "Topic: {{.topic}}", state: map[string]any{"topic": "remote work"}, want: "Topic: remote work"},
		{name: "default", text: "{{default \"none\" .missing}}", state: map[string]any{"missing": ""}, want: "none"},
		{name: "no html escaping", text: "{{.q}}", state: map[string]any{"q": "a < b & \"c\""}, want: "a < b & \"c\""},
		{name: "trim", text: "[{{trim .s}}]", state: map[string]any{"s": "  x  "}, want: "[x]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderTemplate(tt.text, tt.state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderTemplate_MissingKey(t *testing.T) {
	_, err := RenderTemplate("{{.absent}}", map[string]any{})
	require.Error(t, err)
}

func TestParseTemplate_SyntaxError(t *testing.T) {
	_, err := ParseTemplate("broken", "{{.x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")

	assert.Panics(t, func() { MustParseTemplate("broken", "{{.x") })
}

func TestTemplate_RenderStruct(t *testing.T) {
	tmpl := MustParseTemplate("s", "{{.Name}} says {{.Text}}")
	got, err := tmpl.Render(struct{ Name, Text string }{"Chairman", "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Chairman says hello", got)
}
