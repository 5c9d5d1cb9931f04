package discussion

import (
	"testing"

	"github.com/hupe1980/llmcouncil/core"
	"github.com/stretchr/testify/assert"
)

func TestTranscript_Render(t *testing.T) {
	tr := NewTranscript("Is remote work more productive?")
	assert.Equal(t, "Topic: Is remote work more productive?\n\n", tr.Render())

	tr.Append("Chairman", "C1")
	tr.Append("M1", "first")
	tr.Append("M1", "first")

	assert.Equal(t,
		"Topic: Is remote work more productive?\n\nChairman: C1\n\nM1: first\n\nM1: first\n\n",
		tr.Render(),
	)
	assert.Equal(t, 3, tr.Len())
}

func TestTranscript_AppendOnly(t *testing.T) {
	tr := NewTranscript("topic")
	tr.Append("A", "1")
	before := tr.Render()

	tr.Append("B", "2")
	after := tr.Render()

	assert.Equal(t, before, after[:len(before)])
}

func TestTranscript_UtterancesIsCopy(t *testing.T) {
	tr := NewTranscript("topic")
	tr.Append("A", "1")

	u := tr.Utterances()
	u[0].Text = "changed"

	assert.Equal(t, []core.Utterance{{Speaker: "A", Text: "1"}}, tr.Utterances())
}

func TestTranscript_Window(t *testing.T) {
	tr := NewTranscript("topic")
	tr.Append("A", "1")
	tr.Append("B", "2")
	tr.Append("C", "3")

	assert.Equal(t, "Topic: topic\n\nB: 2\n\nC: 3\n\n", tr.Window(2))
	assert.Equal(t, tr.Render(), tr.Window(0))
	assert.Equal(t, tr.Render(), tr.Window(10))
	assert.Equal(t, 3, tr.Len())
}
