// Package util holds small helpers shared across packages that are not part
// of the public API.
package util

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// funcs are available to every prompt template.
var funcs = template.FuncMap{
	"default": func(defaultVal any, val any) any {
		if val == nil || val == "" {
			return defaultVal
		}
		return val
	},
	"trim":  strings.TrimSpace,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
}

// Template is a parsed prompt template. It is safe for concurrent use.
type Template struct {
	tmpl *template.Template
}

// MustParseTemplate parses text and panics on syntax errors. Intended for
// package-level prompt definitions.
func MustParseTemplate(name, text string) *Template {
	t, err := ParseTemplate(name, text)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTemplate parses a prompt template. Missing keys are an error.
func ParseTemplate(name, text string) (*Template, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render executes the template against data.
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", t.tmpl.Name(), err)
	}
	return buf.String(), nil
}

// RenderTemplate replaces template variables using Go's text/template package.
// Text without template markers is returned unchanged.
func RenderTemplate(text string, state map[string]any) (string, error) {
	if !strings.Contains(text, "{{") { // fast path: no template markers
		return text, nil
	}
	t, err := ParseTemplate("prompt", text)
	if err != nil {
		return "", err
	}
	return t.Render(state)
}
