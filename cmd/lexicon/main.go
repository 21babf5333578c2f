// Command lexicon inspects and maintains the slang lexicon.
//
// Subcommands:
//
//	scan        find unknown emoji and words in the raw dataset and add them
//	            to the override file with a placeholder gloss
//	normalize   print the normalized form of the given text
//	unresolved  list override entries that still carry a placeholder gloss
//
// Run "lexicon <subcommand> -h" for subcommand flags.
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/slangbridge/internal/app"
	"github.com/heartmarshall/slangbridge/internal/dataset"
	"github.com/heartmarshall/slangbridge/internal/dataset/tabular"
	"github.com/heartmarshall/slangbridge/internal/lexicon"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lexicon <scan|normalize|unresolved> [flags]")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cmd, args := os.Args[1], os.Args[2:]

	_, env, err := app.Bootstrap(context.Background(), "lexicon "+cmd)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	switch cmd {
	case "scan":
		err = runScan(env, args)
	case "normalize":
		err = runNormalize(env, args)
	case "unresolved":
		err = runUnresolved(env)
	default:
		usage()
	}
	if err != nil {
		env.Log.Error(cmd+" failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runScan(env *app.Env, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	inputFlag := fs.String("input", "", "raw dataset path (default: dataset.input_path)")
	dryRunFlag := fs.Bool("dry-run", false, "report unknown terms without touching the override file")
	_ = fs.Parse(args)

	cfg := env.Config
	input := cfg.Dataset.InputPath
	if *inputFlag != "" {
		input = *inputFlag
	}
	cols := dataset.Columns{
		Source:   cfg.Dataset.SourceColumn,
		Target:   cfg.Dataset.TargetColumn,
		Language: cfg.Dataset.LanguageColumn,
	}

	tbl, err := tabular.Read(input, tabular.ReadOptions{
		Required: []string{cols.Source, cols.Language},
		Sheet:    cfg.Dataset.Sheet,
	})
	if err != nil {
		return err
	}

	lex := app.LoadLexicon(cfg.Lexicon, env.Log)
	found := lex.Scan(dataset.ScanRows(tbl.Rows, cols))
	env.Log.Info("scan completed",
		slog.String("input", input),
		slog.Int("rows", len(tbl.Rows)),
		slog.Int("emoji", len(found.Emoji)),
		slog.Int("english", len(found.English)),
		slog.Int("hinglish", len(found.Hinglish)),
	)
	for _, t := range found.Emoji {
		env.Log.Debug("unknown emoji", slog.String("surface", t.Surface), slog.Int("count", t.Count))
	}

	if *dryRunFlag || found.Total() == 0 {
		return nil
	}

	stats, err := lexicon.MergePlaceholders(cfg.Lexicon.OverridePath, found)
	if err != nil {
		return err
	}
	env.Log.Info("override file updated",
		slog.String("path", cfg.Lexicon.OverridePath),
		slog.Int("emoji_added", stats.Added[lexicon.CategoryEmoji]),
		slog.Int("english_added", stats.Added[lexicon.CategoryEnglish]),
		slog.Int("hinglish_added", stats.Added[lexicon.CategoryHinglish]),
	)
	return nil
}

func runNormalize(env *app.Env, args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	scopeFlag := fs.String("scope", "both", "english, hinglish or both")
	foldFlag := fs.Bool("fold", false, "fold Hinglish spelling variants first")
	_ = fs.Parse(args)

	scope, err := lexicon.ParseScope(*scopeFlag)
	if err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")
	if *foldFlag {
		text = lexicon.FoldVariants(text)
	}

	lex := app.LoadLexicon(env.Config.Lexicon, env.Log)
	fmt.Println(lex.Normalize(text, scope))
	return nil
}

func runUnresolved(env *app.Env) error {
	lex := app.LoadLexicon(env.Config.Lexicon, env.Log)
	total := 0
	for _, c := range lexicon.AllCategories() {
		for _, surface := range lex.Unresolved(c) {
			fmt.Printf("%s\t%s\n", c, surface)
			total++
		}
	}
	env.Log.Info("unresolved entries", slog.Int("total", total))
	return nil
}
