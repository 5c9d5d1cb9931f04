package core

import "fmt"

var (
	// ErrInvalidRequest is returned when a discussion request is rejected
	// before any agent is called (empty topic, non-positive round count).
	ErrInvalidRequest = fmt.Errorf("invalid discussion request")

	// ErrDiscussionFailed is returned when an unexpected failure escapes the
	// agent boundary. The discussion is abandoned without partial results.
	ErrDiscussionFailed = fmt.Errorf("discussion failed")

	// ErrEmptyRoster is returned when a roster has no chairman or no members.
	ErrEmptyRoster = fmt.Errorf("roster requires a chairman and at least one member")

	// ErrDuplicateParticipant is returned when two participants share a display name.
	ErrDuplicateParticipant = fmt.Errorf("duplicate participant name")

	// ErrUnknownProvider is returned when a roster entry names an unsupported backend.
	ErrUnknownProvider = fmt.Errorf("unknown provider")

	// ErrNotFound is returned when a discussion id does not exist in the store.
	ErrNotFound = fmt.Errorf("discussion not found")
)
