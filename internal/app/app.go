// Package app holds the startup plumbing shared by every command:
// environment and config loading, logging, run IDs and the lexicon.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/slangbridge/internal/config"
	"github.com/heartmarshall/slangbridge/internal/lexicon"
	"github.com/heartmarshall/slangbridge/pkg/ctxutil"
)

// Env is what a command needs once startup has succeeded.
type Env struct {
	Config *config.Config
	Log    *slog.Logger
	RunID  uuid.UUID
}

// Bootstrap loads an optional .env file, reads configuration, creates the
// logger and assigns a fresh run ID. The returned context carries the run ID
// and the logger is already annotated with it.
func Bootstrap(ctx context.Context, command string) (context.Context, *Env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ctx, nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return ctx, nil, err
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	logger := RunLogger(ctx, NewLogger(cfg.Log)).With(slog.String("command", command))

	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return ctx, &Env{Config: cfg, Log: logger, RunID: runID}, nil
}

// LoadLexicon builds the lexicon from the built-in tables and the configured
// override file. A malformed override file is logged and otherwise ignored.
func LoadLexicon(cfg config.LexiconConfig, log *slog.Logger) *lexicon.Lexicon {
	lex, res := lexicon.Load(lexicon.BaseTables(), cfg.OverridePath)

	switch res.Status {
	case lexicon.OverridesMalformed:
		log.Warn("lexicon overrides ignored",
			slog.String("path", res.Path),
			slog.String("error", res.Err.Error()),
		)
	case lexicon.OverridesApplied:
		attrs := []any{slog.String("path", res.Path)}
		for _, c := range lexicon.AllCategories() {
			attrs = append(attrs, slog.Int(string(c), res.Applied[c]))
		}
		log.Info("lexicon overrides applied", attrs...)
	default:
		log.Debug("no lexicon overrides", slog.String("path", res.Path))
	}
	return lex
}
