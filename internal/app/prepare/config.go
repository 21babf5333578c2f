package prepare

import (
	"strings"

	"github.com/heartmarshall/slangbridge/internal/config"
	"github.com/heartmarshall/slangbridge/internal/dataset"
	"github.com/heartmarshall/slangbridge/internal/domain"
)

// Config holds prepare pipeline settings.
type Config struct {
	InputPath      string
	Sheet          string
	Columns        dataset.Columns
	OutputDir      string
	Seed           uint64
	TrainFrac      float64
	ValFrac        float64
	Normalize      bool
	FoldVariants   bool
	MultiReference bool
	Reverse        bool
	// Language keeps only pairs of one tag; empty keeps everything.
	Language domain.LanguageTag
	DryRun   bool
}

// ConfigFrom maps the application configuration onto pipeline settings.
func ConfigFrom(cfg *config.Config) Config {
	lang, _ := domain.ParseLanguageTag(cfg.Pipeline.Language)
	return Config{
		InputPath: cfg.Dataset.InputPath,
		Sheet:     cfg.Dataset.Sheet,
		Columns: dataset.Columns{
			Source:   strings.TrimSpace(cfg.Dataset.SourceColumn),
			Target:   strings.TrimSpace(cfg.Dataset.TargetColumn),
			Language: strings.TrimSpace(cfg.Dataset.LanguageColumn),
		},
		OutputDir:      cfg.Dataset.OutputDir,
		Seed:           cfg.Pipeline.Seed,
		TrainFrac:      cfg.Pipeline.TrainFrac,
		ValFrac:        cfg.Pipeline.ValFrac,
		Normalize:      cfg.Pipeline.Normalize,
		FoldVariants:   cfg.Pipeline.FoldVariants,
		MultiReference: cfg.Pipeline.MultiReference,
		Reverse:        cfg.Pipeline.Reverse,
		Language:       lang,
	}
}
