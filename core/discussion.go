package core

import "time"

// DefaultRounds is applied when a request does not specify a round count.
const DefaultRounds = 2

// DefaultMaxRounds caps the round count of a single discussion unless a
// different limit is configured.
const DefaultMaxRounds = 5

// DiscussRequest is the input of a discussion.
type DiscussRequest struct {
	Topic  string `json:"topic"`
	Rounds int    `json:"rounds"`
}

// DiscussResponse is the complete, ordered result of a discussion: every
// normal round followed by the Summary round.
type DiscussResponse struct {
	Topic  string  `json:"topic"`
	Rounds []Round `json:"rounds"`
}

// MembersResponse is a static snapshot of the configured roster.
type MembersResponse struct {
	Chairman string   `json:"chairman"`
	Members  []string `json:"members"`
}

// Discussion is a finished discussion kept for later retrieval.
type Discussion struct {
	ID          string          `json:"id"`
	Result      DiscussResponse `json:"result"`
	Transcript  []Utterance     `json:"transcript"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt time.Time       `json:"completed_at"`
}

// DiscussionStore holds finished discussions. Implementations must be safe
// for concurrent use.
type DiscussionStore interface {
	Save(d Discussion) error
	Get(id string) (Discussion, error)
	Len() int
}
