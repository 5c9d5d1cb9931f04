package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Spec describes one participant and the backend it talks to.
type Spec struct {
	Name        string        `yaml:"name" validate:"required"`
	Provider    Provider      `yaml:"provider" validate:"required"`
	Model       string        `yaml:"model,omitempty"`
	Instruction string        `yaml:"instruction,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty" validate:"min=0"`
	MaxTokens   int64         `yaml:"max_tokens,omitempty" validate:"min=0"`
}

// File is the serialised form of a roster.
type File struct {
	Chairman Spec   `yaml:"chairman"`
	Members  []Spec `yaml:"members" validate:"required,min=1,dive"`
}

// LoadFile reads a YAML roster file.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read roster file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML roster. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse roster: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return File{}, fmt.Errorf("invalid roster: %w", err)
	}
	return f, nil
}
