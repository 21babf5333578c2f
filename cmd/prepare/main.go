// Command prepare turns the raw slang dataset into train/val/test CSV files
// for the translation model.
//
// Flags:
//
//	--phase     "all" runs the pipeline; "stats" only summarizes the input
//	--input     raw dataset path (.csv, .tsv, .xlsx); overrides dataset.input_path
//	--out       output directory; overrides dataset.output_dir
//	--seed      shuffle seed; overrides pipeline.seed
//	--language  keep only english or hinglish pairs
//	--reverse   also write reverse-direction files
//	--dry-run   run every phase except writing files
//
// Exit codes: 0 = success, 1 = error, 2 = usage error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/slangbridge/internal/app"
	"github.com/heartmarshall/slangbridge/internal/app/prepare"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, env, err := app.Bootstrap(context.Background(), "prepare")
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	logger := env.Log

	// CLI flags override config.
	cfg, err := opts.apply(prepare.ConfigFrom(env.Config))
	if err != nil {
		logger.Error("invalid flags", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(ctx, env.Config.Pipeline.Timeout)
	defer cancel()

	switch opts.phase {
	case "stats":
		pipeline := prepare.NewPipeline(logger, nil, cfg)
		if _, err := pipeline.Describe(); err != nil {
			logger.Error("describe dataset", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case "all", "":
		lex := app.LoadLexicon(env.Config.Lexicon, logger)
		pipeline := prepare.NewPipeline(logger, lex, cfg)

		start := time.Now()
		if err := pipeline.Run(ctx); err != nil {
			logger.Error("pipeline failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("datasets written",
			slog.String("dir", cfg.OutputDir),
			slog.Int("files", len(pipeline.Files())),
			slog.Duration("elapsed", time.Since(start)),
		)
	default:
		logger.Error("unknown --phase", slog.String("value", opts.phase))
		os.Exit(1)
	}
}
