// Package logging provides a minimal logging interface and adapters for the council.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// plus With for attaching key/value context. This package includes:
//
//   - Logger interface for dependency injection
//   - CouncilLogger, a slog-backed Logger with component / discussion helpers
//   - WithDiscussion, ErrorWithStack and StartTimer, which work on any Logger
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	c, err := llmcouncil.New(r, func(o *llmcouncil.Options) { o.Logger = logger })
package logging
