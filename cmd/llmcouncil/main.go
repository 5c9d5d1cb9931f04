// Command llmcouncil serves the council discussion API over HTTP.
//
// Configuration is read from the environment (and a .env file when present);
// see the config package for every COUNCIL_* setting and provider key.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/llmcouncil"
	"github.com/hupe1980/llmcouncil/config"
	"github.com/hupe1980/llmcouncil/logging"
	"github.com/hupe1980/llmcouncil/roster"
	"github.com/hupe1980/llmcouncil/server"
	"github.com/hupe1980/llmcouncil/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires configuration, roster, council and HTTP server, and blocks until
// a signal arrives or the server fails. Deferred cleanup always runs.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewSlogLogger(level, cfg.LogFormat, false).WithComponent("llmcouncil")

	file, err := roster.Load(cfg.RosterFile, cfg.Providers)
	if err != nil {
		return err
	}
	r, err := roster.NewFactory(func(o *roster.FactoryOptions) {
		o.Keys = cfg.Providers
		o.Timeout = cfg.AgentTimeout
		o.Streaming = cfg.Streaming
		o.Logger = logger.WithComponent("agent")
	}).Build(file)
	if err != nil {
		return fmt.Errorf("build roster: %w", err)
	}
	for _, p := range r.Info() {
		logger.Info("participant ready", "name", p.Name, "model", p.ModelID)
	}

	discussions, err := store.NewInMemoryStore(cfg.CacheSize)
	if err != nil {
		return err
	}
	council, err := llmcouncil.New(r, func(o *llmcouncil.Options) {
		o.TranscriptWindow = cfg.TranscriptWindow
		o.MaxRounds = cfg.MaxRounds
		o.Store = discussions
		o.Logger = logger.WithComponent("orchestrator")
	})
	if err != nil {
		return err
	}

	srv := server.New(cfg.Addr(), council, func(o *server.Options) {
		o.DefaultRounds = cfg.DefaultRounds
		o.MaxRounds = cfg.MaxRounds
		o.Logger = logger.WithComponent("server")
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gracefully")
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errChan
}
