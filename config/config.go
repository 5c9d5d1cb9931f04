// Package config loads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every service setting (COUNCIL_PORT, ...).
const Prefix = "COUNCIL"

var validate = validator.New()

// Config holds the service settings. TranscriptWindow bounds the utterances
// rendered into prompts; 0 is unbounded.
type Config struct {
	Host             string        `envconfig:"HOST" default:"127.0.0.1" validate:"required"`
	Port             int           `envconfig:"PORT" default:"8000" validate:"min=1,max=65535"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat        string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
	DefaultRounds    int           `envconfig:"DEFAULT_ROUNDS" default:"2" validate:"min=1,ltefield=MaxRounds"`
	MaxRounds        int           `envconfig:"MAX_ROUNDS" default:"5" validate:"min=1"`
	AgentTimeout     time.Duration `envconfig:"AGENT_TIMEOUT" default:"60s" validate:"gt=0"`
	Streaming        bool          `envconfig:"STREAMING" default:"false"`
	TranscriptWindow int           `envconfig:"TRANSCRIPT_WINDOW" default:"0" validate:"min=0"`
	CacheSize        int           `envconfig:"CACHE_SIZE" default:"128" validate:"min=1"`
	RosterFile       string        `envconfig:"ROSTER_FILE"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`

	Providers ProviderKeys `ignored:"true"`
}

// ProviderKeys are read without prefix, under the names each vendor documents.
type ProviderKeys struct {
	Google      string `envconfig:"GOOGLE_API_KEY"`
	Mistral     string `envconfig:"MISTRAL_API_KEY"`
	Groq        string `envconfig:"GROQ_API_KEY"`
	HuggingFace string `envconfig:"HUGGINGFACE_API_KEY"`
	OpenAI      string `envconfig:"OPENAI_API_KEY"`
	Anthropic   string `envconfig:"ANTHROPIC_API_KEY"`
}

// Addr returns host:port for the HTTP listener.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads the given .env files (default ".env") when present, then the
// environment. Variables already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Providers); err != nil {
		return Config{}, fmt.Errorf("process provider keys: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
