package roster

import (
	"time"

	"github.com/hupe1980/llmcouncil/config"
)

// Default returns the built-in lineup: a Gemini chairman and four members
// across Mistral, Groq and Gemini. A Hugging Face hosted Llama joins when a
// Hugging Face key is configured.
func Default(keys config.ProviderKeys) File {
	f := File{
		Chairman: Spec{Name: "Chairman (Gemini)", Provider: ProviderGemini, Model: DefaultGeminiModel},
		Members: []Spec{
			{Name: "Council Member 1 (Mistral)", Provider: ProviderMistral, Model: DefaultMistralModel},
			{Name: "Council Member 2 (Llama 3.3)", Provider: ProviderGroq, Model: "llama-3.3-70b-versatile"},
			{Name: "Council Member 3 (Llama 3.1)", Provider: ProviderGroq, Model: "llama-3.1-8b-instant"},
			{Name: "Council Member 4 (Gemini)", Provider: ProviderGemini, Model: DefaultGeminiModel},
		},
	}
	if keys.HuggingFace != "" {
		f.Members = append(f.Members, Spec{
			Name:     "Council Member 5 (Llama 3.2)",
			Provider: ProviderHuggingFace,
			Model:    DefaultHuggingFaceModel,
			Timeout:  30 * time.Second,
		})
	}
	return f
}

// Load returns the roster file at path, or the default lineup when path is empty.
func Load(path string, keys config.ProviderKeys) (File, error) {
	if path == "" {
		return Default(keys), nil
	}
	return LoadFile(path)
}
