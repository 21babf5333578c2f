package main

import (
	"flag"
	"fmt"

	"github.com/heartmarshall/slangbridge/internal/app/prepare"
	"github.com/heartmarshall/slangbridge/internal/domain"
)

// options holds the parsed command line.
type options struct {
	phase    string
	input    string
	out      string
	seed     uint64
	language string
	reverse  bool
	dryRun   bool

	// set names the flags given explicitly, so zero values still override.
	set map[string]bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	fs.StringVar(&o.phase, "phase", "all", `"all" or "stats"`)
	fs.StringVar(&o.input, "input", "", "raw dataset path")
	fs.StringVar(&o.out, "out", "", "output directory")
	fs.Uint64Var(&o.seed, "seed", 0, "shuffle seed")
	fs.StringVar(&o.language, "language", "", "keep only english or hinglish pairs")
	fs.BoolVar(&o.reverse, "reverse", false, "also write reverse-direction files")
	fs.BoolVar(&o.dryRun, "dry-run", false, "run every phase except writing files")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides cfg with every flag given on the command line.
func (o options) apply(cfg prepare.Config) (prepare.Config, error) {
	if o.set["input"] {
		cfg.InputPath = o.input
	}
	if o.set["out"] {
		cfg.OutputDir = o.out
	}
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["language"] && o.language != "" {
		lang, ok := domain.ParseLanguageTag(o.language)
		if !ok {
			return cfg, fmt.Errorf("--language %q: %w", o.language, domain.ErrValidation)
		}
		cfg.Language = lang
	}
	if o.set["reverse"] {
		cfg.Reverse = o.reverse
	}
	if o.set["dry-run"] {
		cfg.DryRun = o.dryRun
	}
	return cfg, nil
}
