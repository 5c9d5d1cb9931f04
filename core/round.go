package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ChairmanLabel is the speaker label under which the chairman's turns are
// recorded in transcripts and round responses.
const ChairmanLabel = "Chairman"

// summaryMarker is the JSON / display form of the closing round label.
const summaryMarker = "Summary"

// Utterance is one labeled entry of a discussion transcript.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// RoundLabel identifies a round: a 1-based index for normal rounds or the
// distinguished Summary marker for the closing round. The zero value is the
// Summary label.
type RoundLabel struct {
	index int
}

// SummaryLabel labels the closing chairman-only round.
var SummaryLabel = RoundLabel{}

// RoundNumber returns the label of the normal round n (1-based).
func RoundNumber(n int) RoundLabel { return RoundLabel{index: n} }

// IsSummary reports whether the label marks the closing summary round.
func (l RoundLabel) IsSummary() bool { return l.index == 0 }

// Index returns the 1-based round number, or 0 for the summary round.
func (l RoundLabel) Index() int { return l.index }

// String implements fmt.Stringer.
func (l RoundLabel) String() string {
	if l.IsSummary() {
		return summaryMarker
	}
	return strconv.Itoa(l.index)
}

// MarshalJSON encodes normal rounds as integers and the summary as "Summary".
func (l RoundLabel) MarshalJSON() ([]byte, error) {
	if l.IsSummary() {
		return json.Marshal(summaryMarker)
	}
	return json.Marshal(l.index)
}

// UnmarshalJSON accepts a positive integer or the "Summary" marker.
func (l *RoundLabel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != summaryMarker {
			return fmt.Errorf("unknown round label %q", s)
		}
		*l = SummaryLabel
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("round label must be an integer or %q: %w", summaryMarker, err)
	}
	if n < 1 {
		return fmt.Errorf("round index must be positive, got %d", n)
	}
	*l = RoundNumber(n)
	return nil
}

// Responses maps participant names to generated text while preserving
// insertion order. JSON objects are emitted in insertion order so clients
// observe the chairman first and members in roster order.
type Responses struct {
	order []string
	texts map[string]string
}

// NewResponses constructs an empty ordered response mapping.
func NewResponses() *Responses {
	return &Responses{texts: make(map[string]string)}
}

// Set records the text for name. Re-setting an existing name replaces its
// text without changing its position.
func (r *Responses) Set(name, text string) {
	if _, exists := r.texts[name]; !exists {
		r.order = append(r.order, name)
	}
	r.texts[name] = text
}

// Get returns the text recorded for name.
func (r *Responses) Get(name string) (string, bool) {
	text, ok := r.texts[name]
	return text, ok
}

// Names returns participant names in insertion order (copy).
func (r *Responses) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of recorded responses.
func (r *Responses) Len() int { return len(r.order) }

// MarshalJSON implements json.Marshaler preserving insertion order.
func (r *Responses) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.texts[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler keeping the document's key order.
func (r *Responses) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("responses must be a JSON object")
	}
	*r = Responses{texts: make(map[string]string)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("responses key must be a string")
		}
		var text string
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("response for %q: %w", key, err)
		}
		r.Set(key, text)
	}
	_, err = dec.Token()
	return err
}

// Round is the record of one discussion cycle.
type Round struct {
	Label     RoundLabel `json:"round"`
	Responses *Responses `json:"responses"`
}
