package discussion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChairmanPrompt(t *testing.T) {
	intro, err := ChairmanPrompt(1, "AI & jobs", "ignored")
	require.NoError(t, err)
	assert.Contains(t, intro, "Introduce the following topic")
	assert.Contains(t, intro, "\n\nAI & jobs\n\n")
	assert.Contains(t, intro, "(2-3 sentences)")
	assert.NotContains(t, intro, "ignored")

	mod, err := ChairmanPrompt(2, "AI & jobs", "Topic: AI & jobs\n\nChairman: C1\n\n")
	require.NoError(t, err)
	assert.Contains(t, mod, "You are moderating a council discussion.")
	assert.Contains(t, mod, "Previous discussion:\nTopic: AI & jobs\n\nChairman: C1\n\n")
	assert.Contains(t, mod, "(1-2 sentences)")
}

func TestMemberPrompt(t *testing.T) {
	p, err := MemberPrompt("t", "Topic: t\n\nChairman: hi\n\n")
	require.NoError(t, err)
	assert.Contains(t, p, "You are a council member in a discussion.")
	assert.Contains(t, p, "Current discussion context:\nTopic: t\n\nChairman: hi\n\n")
	assert.Contains(t, p, "(2-4 sentences)")
}

func TestSummaryPrompt(t *testing.T) {
	p, err := SummaryPrompt("t", "Topic: t\n\n")
	require.NoError(t, err)
	assert.Contains(t, p, "As the chairman, provide a brief summary")
	assert.Contains(t, p, "Full discussion:\nTopic: t\n\n")
	assert.Contains(t, p, "(3-4 sentences)")
}
