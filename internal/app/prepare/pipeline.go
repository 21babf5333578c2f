// Package prepare runs the offline dataset preparation pipeline:
// load raw rows, clean, normalize with the lexicon, split, and write CSVs.
package prepare

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/heartmarshall/slangbridge/internal/dataset"
	"github.com/heartmarshall/slangbridge/internal/dataset/tabular"
	"github.com/heartmarshall/slangbridge/internal/domain"
	"github.com/heartmarshall/slangbridge/internal/lexicon"
	"github.com/heartmarshall/slangbridge/pkg/ctxutil"
)

// Phase names in execution order.
const (
	PhaseLoad      = "load"
	PhaseClean     = "clean"
	PhaseNormalize = "normalize"
	PhaseSplit     = "split"
	PhaseWrite     = "write"
)

var allPhases = []string{PhaseLoad, PhaseClean, PhaseNormalize, PhaseSplit, PhaseWrite}

// Phases returns the canonical phase order.
func Phases() []string {
	return append([]string(nil), allPhases...)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	In       int
	Out      int
	Dropped  int
	Skipped  bool
	Duration time.Duration
	Err      error
}

// Pipeline turns one raw dataset into train/val/test CSV files.
// Phases depend on each other, so the first failing phase stops the run.
type Pipeline struct {
	log     *slog.Logger
	lex     *lexicon.Lexicon
	cfg     Config
	results map[string]PhaseResult

	table     tabular.Table
	pairs     []domain.TranslationPair
	partition domain.Partition
	files     []tabular.FileInfo
}

// NewPipeline creates a new Pipeline. lex may be nil when normalization is disabled.
func NewPipeline(log *slog.Logger, lex *lexicon.Lexicon, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		lex:     lex,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Partition returns the split produced by the last run.
func (p *Pipeline) Partition() domain.Partition {
	return p.partition
}

// Files returns the files written by the last run.
func (p *Pipeline) Files() []tabular.FileInfo {
	return p.files
}

// Run executes every phase in order and returns the first phase error.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, phase := range allPhases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("prepare: %w", err)
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		phaseCtx := ctxutil.WithPhase(ctx, phase)
		var result PhaseResult
		switch phase {
		case PhaseLoad:
			result = p.runLoad()
		case PhaseClean:
			result = p.runClean()
		case PhaseNormalize:
			result = p.runNormalize()
		case PhaseSplit:
			result = p.runSplit()
		case PhaseWrite:
			result = p.runWrite(phaseCtx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Error("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("prepare %s: %w", phase, result.Err)
		}
		if result.Skipped {
			p.log.Info("phase skipped", slog.String("phase", phase))
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("in", result.In),
			slog.Int("out", result.Out),
			slog.Int("dropped", result.Dropped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed",
		slog.Int("train", len(p.partition.Train)),
		slog.Int("val", len(p.partition.Validation)),
		slog.Int("test", len(p.partition.Test)),
	)
	return nil
}

func (p *Pipeline) runLoad() PhaseResult {
	if p.cfg.InputPath == "" {
		return PhaseResult{Err: fmt.Errorf("dataset input path not configured: %w", domain.ErrNotFound)}
	}
	tbl, err := tabular.Read(p.cfg.InputPath, tabular.ReadOptions{
		Required: p.cfg.Columns.Required(),
		Sheet:    p.cfg.Sheet,
	})
	if err != nil {
		return PhaseResult{Err: err}
	}
	p.table = tbl
	return PhaseResult{In: len(tbl.Rows), Out: len(tbl.Rows)}
}

func (p *Pipeline) runClean() PhaseResult {
	pairs, stats := dataset.Clean(p.table.Rows, p.cfg.Columns)
	p.log.Debug("clean stats",
		slog.Int("dropped_empty", stats.DroppedEmpty),
		slog.Int("dropped_placeholder", stats.DroppedPlaceholder),
		slog.Int("dropped_duplicate", stats.DroppedDuplicate),
		slog.Int("language_inferred", stats.LanguageInferred),
	)

	result := PhaseResult{In: stats.Total, Out: stats.Kept, Dropped: stats.Total - stats.Kept}
	if p.cfg.Language != "" {
		before := len(pairs)
		pairs = dataset.FilterLanguage(pairs, p.cfg.Language)
		result.Out = len(pairs)
		result.Dropped += before - len(pairs)
	}
	p.pairs = pairs
	return result
}

func (p *Pipeline) runNormalize() PhaseResult {
	if !p.cfg.Normalize {
		return PhaseResult{Skipped: true, In: len(p.pairs), Out: len(p.pairs)}
	}
	in := len(p.pairs)
	pairs, stats := dataset.NormalizePairs(p.pairs, p.lex, dataset.NormalizeOptions{FoldVariants: p.cfg.FoldVariants})
	p.pairs = pairs
	return PhaseResult{In: in, Out: stats.Kept, Dropped: stats.DroppedEmpty + stats.DroppedDuplicate}
}

func (p *Pipeline) runSplit() PhaseResult {
	split := dataset.Split
	if p.cfg.Reverse {
		split = dataset.SplitLinked
	}
	part, err := split(p.pairs, p.cfg.Seed, p.cfg.TrainFrac, p.cfg.ValFrac)
	if err != nil {
		return PhaseResult{Err: err}
	}
	p.partition = part
	return PhaseResult{In: len(p.pairs), Out: part.Len()}
}

func (p *Pipeline) runWrite(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: true}
	}

	var files []tabular.FileInfo
	written := 0
	var multi dataset.MultiRefPartition
	if p.cfg.MultiReference {
		multi = dataset.AggregatePartition(p.partition)
	}

	for _, split := range domain.AllSplits() {
		path := filepath.Join(p.cfg.OutputDir, split.FileStem()+".csv")
		var (
			info tabular.FileInfo
			err  error
		)
		if p.cfg.MultiReference {
			info, err = tabular.WriteMultiRef(path, multi.Get(split))
		} else {
			info, err = tabular.WritePairs(path, p.partition.Get(split))
		}
		if err != nil {
			return PhaseResult{Err: err}
		}
		files = append(files, info)
		written += info.Rows
	}

	if p.cfg.Reverse {
		reversed := p.partition.Reversed()
		for _, split := range domain.AllSplits() {
			path := filepath.Join(p.cfg.OutputDir, "reverse_"+split.FileStem()+".csv")
			info, err := tabular.WritePairs(path, reversed.Get(split))
			if err != nil {
				return PhaseResult{Err: err}
			}
			files = append(files, info)
			written += info.Rows
		}
	}

	manifest := tabular.Manifest{
		CreatedAt:      time.Now().UTC(),
		Input:          p.cfg.InputPath,
		Seed:           p.cfg.Seed,
		TrainFrac:      p.cfg.TrainFrac,
		ValFrac:        p.cfg.ValFrac,
		MultiReference: p.cfg.MultiReference,
		Language:       p.cfg.Language.String(),
		Files:          files,
	}
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		manifest.RunID = id.String()
	}
	if err := tabular.WriteManifest(p.cfg.OutputDir, manifest); err != nil {
		return PhaseResult{Err: err}
	}

	p.files = files
	return PhaseResult{In: p.partition.Len(), Out: written}
}

// Describe loads the raw dataset and logs its row count, language
// distribution and blank cells per column without writing anything.
func (p *Pipeline) Describe() (dataset.Summary, error) {
	if res := p.runLoad(); res.Err != nil {
		return dataset.Summary{}, fmt.Errorf("prepare %s: %w", PhaseLoad, res.Err)
	}
	s := dataset.Describe(p.table, p.cfg.Columns)

	p.log.Info("dataset summary",
		slog.String("input", p.cfg.InputPath),
		slog.Int("rows", s.Rows),
		slog.Any("columns", s.Columns),
	)
	for lang, n := range s.Languages {
		p.log.Info("language distribution", slog.String("language", lang), slog.Int("rows", n))
	}
	for col, n := range s.Missing {
		if n > 0 {
			p.log.Info("missing values", slog.String("column", col), slog.Int("rows", n))
		}
	}
	return s, nil
}
