package discussion

import "github.com/hupe1980/llmcouncil/internal/util"

var (
	introPrompt = util.MustParseTemplate("intro", `You are the chairman of an LLM council. Introduce the following topic for discussion and provide initial thoughts:

{{.Topic}}

Keep your response concise (2-3 sentences).`)

	moderationPrompt = util.MustParseTemplate("moderation", `You are moderating a council discussion. Summarize the previous round and guide the discussion forward.

Topic: {{.Topic}}

Previous discussion:
{{.Context}}

Provide a brief moderation (1-2 sentences) to guide the next round.`)

	memberPrompt = util.MustParseTemplate("member", `You are a council member in a discussion. Provide your perspective on the topic.

Topic: {{.Topic}}

Current discussion context:
{{.Context}}

Provide your thoughtful response (2-4 sentences). Be concise but insightful.`)

	summaryPrompt = util.MustParseTemplate("summary", `As the chairman, provide a brief summary of the council discussion.

Topic: {{.Topic}}

Full discussion:
{{.Context}}

Provide a concise summary (3-4 sentences) of the key points discussed.`)
)

type promptData struct {
	Topic   string
	Context string
}

// ChairmanPrompt builds the chairman's turn for round n (1-based): an
// introduction in the first round, a moderation afterwards.
func ChairmanPrompt(n int, topic, context string) (string, error) {
	if n <= 1 {
		return introPrompt.Render(promptData{Topic: topic})
	}
	return moderationPrompt.Render(promptData{Topic: topic, Context: context})
}

// MemberPrompt builds the prompt shared by every member within a round.
func MemberPrompt(topic, context string) (string, error) {
	return memberPrompt.Render(promptData{Topic: topic, Context: context})
}

// SummaryPrompt builds the chairman's closing summary request.
func SummaryPrompt(topic, context string) (string, error) {
	return summaryPrompt.Render(promptData{Topic: topic, Context: context})
}
