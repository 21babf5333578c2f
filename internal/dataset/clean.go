// Package dataset turns raw translation rows into clean, deduplicated pairs,
// splits them without source leakage and aggregates multi-reference records.
package dataset

import (
	"strings"

	"github.com/heartmarshall/slangbridge/internal/dataset/tabular"
	"github.com/heartmarshall/slangbridge/internal/domain"
	"github.com/heartmarshall/slangbridge/internal/lexicon"
)

// Columns names the raw input columns.
type Columns struct {
	Source   string
	Target   string
	Language string
}

// DefaultColumns returns the column names of the curated slang dataset.
func DefaultColumns() Columns {
	return Columns{
		Source:   "Slang/Meme Text",
		Target:   "Standard Translation",
		Language: "Language",
	}
}

// Required lists the columns a raw dataset must have.
func (c Columns) Required() []string {
	return []string{c.Source, c.Target, c.Language}
}

// CleanStats counts what Clean kept and why rows were dropped.
type CleanStats struct {
	Total              int
	DroppedEmpty       int
	DroppedPlaceholder int
	DroppedDuplicate   int
	LanguageInferred   int
	Kept               int
}

var placeholderMarker = strings.ToLower(lexicon.PlaceholderGloss)

// Clean applies domain.CleanText to both sides of every row, drops rows that
// end up empty or still carry the lexicon placeholder, and removes exact
// (source, target) duplicates keeping the first occurrence. A language cell
// that does not parse is replaced by InferLanguage on the source text.
func Clean(rows []tabular.Row, cols Columns) ([]domain.TranslationPair, CleanStats) {
	stats := CleanStats{Total: len(rows)}
	pairs := make([]domain.TranslationPair, 0, len(rows))

	for _, row := range rows {
		src := domain.CleanText(row.Get(cols.Source))
		tgt := domain.CleanText(row.Get(cols.Target))
		if src == "" || tgt == "" {
			stats.DroppedEmpty++
			continue
		}
		if strings.Contains(src, placeholderMarker) || strings.Contains(tgt, placeholderMarker) {
			stats.DroppedPlaceholder++
			continue
		}

		lang, ok := domain.ParseLanguageTag(row.Get(cols.Language))
		if !ok {
			lang = InferLanguage(src)
			stats.LanguageInferred++
		}
		pairs = append(pairs, domain.TranslationPair{Source: src, Target: tgt, Language: lang})
	}

	pairs, stats.DroppedDuplicate = dedupe(pairs)
	stats.Kept = len(pairs)
	return pairs, stats
}

// NormalizeOptions controls NormalizePairs.
type NormalizeOptions struct {
	// FoldVariants rewrites Hinglish spelling variants on Hinglish sources first.
	FoldVariants bool
}

// NormalizeStats counts rows removed by NormalizePairs.
type NormalizeStats struct {
	DroppedEmpty     int
	DroppedDuplicate int
	Kept             int
}

// NormalizePairs rewrites sources with both slang tables and targets with the
// English table, then drops empties and the duplicates this creates.
func NormalizePairs(pairs []domain.TranslationPair, lex *lexicon.Lexicon, opts NormalizeOptions) ([]domain.TranslationPair, NormalizeStats) {
	var stats NormalizeStats
	out := make([]domain.TranslationPair, 0, len(pairs))
	for _, p := range pairs {
		src := p.Source
		if opts.FoldVariants && p.Language == domain.LanguageHinglish {
			src = lexicon.FoldVariants(src)
		}
		src = lex.Normalize(src, lexicon.ScopeBoth)
		tgt := lex.Normalize(p.Target, lexicon.ScopeEnglish)
		if src == "" || tgt == "" {
			stats.DroppedEmpty++
			continue
		}
		out = append(out, domain.TranslationPair{Source: src, Target: tgt, Language: p.Language})
	}
	out, stats.DroppedDuplicate = dedupe(out)
	stats.Kept = len(out)
	return out, stats
}

// FilterLanguage keeps only pairs tagged with lang.
func FilterLanguage(pairs []domain.TranslationPair, lang domain.LanguageTag) []domain.TranslationPair {
	out := make([]domain.TranslationPair, 0, len(pairs))
	for _, p := range pairs {
		if p.Language == lang {
			out = append(out, p)
		}
	}
	return out
}

type pairKey struct{ source, target string }

func dedupe(pairs []domain.TranslationPair) ([]domain.TranslationPair, int) {
	seen := make(map[pairKey]struct{}, len(pairs))
	out := pairs[:0]
	dropped := 0
	for _, p := range pairs {
		k := pairKey{p.Source, p.Target}
		if _, dup := seen[k]; dup {
			dropped++
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out, dropped
}
