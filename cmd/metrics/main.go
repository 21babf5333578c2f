// Command metrics loads BLEU metric files, prints the canonical forward and
// reverse scores as JSON and optionally stores every record in PostgreSQL.
//
// Flags:
//
//	--dir       metrics directory; overrides metrics.dir
//	--extra     comma-separated extra metric files read after the directory
//	--store     persist loaded records to the metric_runs table
//	--migrate   apply database migrations before anything else
//	--history   print the last N stored runs for --label instead of loading files
//	--label     label for --history
//	--style     style metrics file; defaults to <dir>/style_metrics.json
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/slangbridge/internal/adapter/postgres"
	"github.com/heartmarshall/slangbridge/internal/adapter/postgres/metricrun"
	"github.com/heartmarshall/slangbridge/internal/app"
	"github.com/heartmarshall/slangbridge/internal/metrics"
	"github.com/heartmarshall/slangbridge/internal/service/metricstore"
)

// summary is the JSON document printed to stdout.
type summary struct {
	RunID        string   `json:"run_id"`
	ForwardLabel string   `json:"forward_label,omitempty"`
	ForwardBLEU  *float64 `json:"forward_bleu"`
	ReverseLabel string   `json:"reverse_label,omitempty"`
	ReverseBLEU  *float64 `json:"reverse_bleu"`
	Labels       []string `json:"labels"`
	// Style averages the per-label style metrics; both fields are null when
	// the style file is absent or unreadable.
	Style metrics.StyleSummary `json:"style"`
}

func main() {
	dirFlag := flag.String("dir", "", "metrics directory")
	extraFlag := flag.String("extra", "", "comma-separated extra metric files")
	storeFlag := flag.Bool("store", false, "persist loaded records to PostgreSQL")
	migrateFlag := flag.Bool("migrate", false, "apply database migrations first")
	historyFlag := flag.Int("history", 0, "print the last N stored runs for --label")
	labelFlag := flag.String("label", "", "label for --history")
	styleFlag := flag.String("style", "", "style metrics file")
	flag.Parse()

	ctx, env, err := app.Bootstrap(context.Background(), "metrics")
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	logger := env.Log
	cfg := env.Config

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	needDB := *storeFlag || *migrateFlag || *historyFlag > 0
	var pool *pgxpool.Pool
	if needDB {
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
	}

	if *migrateFlag {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *historyFlag > 0 {
		if *labelFlag == "" {
			logger.Error("--history requires --label")
			os.Exit(1)
		}
		runs, err := metricrun.New(pool).History(ctx, *labelFlag, *historyFlag)
		if err != nil {
			logger.Error("load history", slog.String("error", err.Error()))
			os.Exit(1)
		}
		writeJSON(logger, runs)
		return
	}

	dir := cfg.Metrics.Dir
	if *dirFlag != "" {
		dir = *dirFlag
	}
	var extra []string
	if *extraFlag != "" {
		for _, p := range strings.Split(*extraFlag, ",") {
			if p = strings.TrimSpace(p); p != "" {
				extra = append(extra, p)
			}
		}
	}

	scores, stats, err := metrics.LoadDir(ctx, dir, metrics.LoadOptions{
		Extra:       extra,
		Pattern:     cfg.Metrics.Pattern,
		Concurrency: cfg.Metrics.Concurrency,
	})
	if err != nil {
		logger.Error("load metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("metrics loaded",
		slog.String("dir", dir),
		slog.Int("files", stats.Files),
		slog.Int("loaded", stats.Loaded),
		slog.Int("missing", stats.Missing),
		slog.Int("labels", stats.Labels),
	)
	for _, f := range stats.MalformedFiles {
		logger.Warn("malformed metric file skipped", slog.String("path", f))
	}

	out := summary{RunID: env.RunID.String(), Labels: make([]string, 0, len(scores))}
	if s, ok := metrics.Select(scores, cfg.Metrics.ForwardPriority); ok {
		out.ForwardLabel, out.ForwardBLEU = s.Label, &s.BLEU
	}
	if s, ok := metrics.Select(scores, cfg.Metrics.ReversePriority); ok {
		out.ReverseLabel, out.ReverseBLEU = s.Label, &s.BLEU
	}

	records := metrics.Records(scores)
	for _, r := range records {
		out.Labels = append(out.Labels, r.Label)
	}

	stylePath := *styleFlag
	if stylePath == "" {
		stylePath = filepath.Join(dir, metrics.StyleFile)
	}
	style, err := metrics.LoadStyle(stylePath)
	if err != nil {
		logger.Warn("style metrics skipped", slog.String("error", err.Error()))
	}
	out.Style = metrics.SummarizeStyle(style)

	if *storeFlag {
		svc := metricstore.NewService(logger, metricrun.New(pool), postgres.NewTxManager(pool))
		if _, err := svc.Store(ctx, metricstore.StoreInput{
			RunID:   env.RunID,
			Records: records,
			Sources: stats.Sources,
		}); err != nil {
			logger.Error("store metric runs", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	writeJSON(logger, out)
}

func writeJSON(logger *slog.Logger, v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
