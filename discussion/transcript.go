package discussion

import (
	"strings"

	"github.com/hupe1980/llmcouncil/core"
)

// Transcript is the shared discussion context of one run. It is seeded with
// the topic and only ever grows. A Transcript is owned by a single
// orchestrator run and is not safe for concurrent mutation.
type Transcript struct {
	topic      string
	utterances []core.Utterance
}

// NewTranscript seeds a transcript with the topic statement.
func NewTranscript(topic string) *Transcript {
	return &Transcript{topic: topic}
}

// Topic returns the immutable discussion topic.
func (t *Transcript) Topic() string { return t.topic }

// Append records an utterance verbatim at the end of the transcript.
func (t *Transcript) Append(speaker, text string) {
	t.utterances = append(t.utterances, core.Utterance{Speaker: speaker, Text: text})
}

// Len returns the number of utterances (the topic statement excluded).
func (t *Transcript) Len() int { return len(t.utterances) }

// Utterances returns a copy of all utterances in append order.
func (t *Transcript) Utterances() []core.Utterance {
	out := make([]core.Utterance, len(t.utterances))
	copy(out, t.utterances)
	return out
}

// Render returns the full transcript:
//
//	Topic: <topic>\n\n<speaker>: <text>\n\n...
func (t *Transcript) Render() string {
	return t.Window(0)
}

// Window renders the topic statement followed by only the most recent n
// utterances. n <= 0 renders everything.
func (t *Transcript) Window(n int) string {
	utterances := t.utterances
	if n > 0 && len(utterances) > n {
		utterances = utterances[len(utterances)-n:]
	}

	var b strings.Builder
	b.WriteString("Topic: ")
	b.WriteString(t.topic)
	b.WriteString("\n\n")
	for _, u := range utterances {
		b.WriteString(u.Speaker)
		b.WriteString(": ")
		b.WriteString(u.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}
