package lexicon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"

	"github.com/heartmarshall/slangbridge/internal/domain"
)

var (
	wordToken = regexp.MustCompile(`[a-z]+(?:'[a-z]+)?`)

	scanStopwords = map[string]struct{}{}
)

func init() {
	for _, w := range strings.Fields(`the a an and or but if then so of to in on for with at by from as
		is are was were be been being it this that these those i you he she we they
		my your his her our their me him us them`) {
		scanStopwords[w] = struct{}{}
	}
}

// ScanRow is one dataset row considered by Scan.
type ScanRow struct {
	Text     string
	Language domain.LanguageTag
}

// Term is an unknown surface form and how many times it occurred.
type Term struct {
	Surface string
	Count   int
}

// ScanResult holds unknown terms per category in first-seen order.
type ScanResult struct {
	Emoji    []Term
	English  []Term
	Hinglish []Term
}

// Total returns the number of distinct unknown terms.
func (r ScanResult) Total() int {
	return len(r.Emoji) + len(r.English) + len(r.Hinglish)
}

func (r ScanResult) terms(c Category) []Term {
	switch c {
	case CategoryEmoji:
		return r.Emoji
	case CategoryEnglish:
		return r.English
	case CategoryHinglish:
		return r.Hinglish
	}
	return nil
}

type termCounter struct {
	idx   map[string]int
	terms []Term
}

func (c *termCounter) add(s string) {
	if c.idx == nil {
		c.idx = make(map[string]int)
	}
	if i, ok := c.idx[s]; ok {
		c.terms[i].Count++
		return
	}
	c.idx[s] = len(c.terms)
	c.terms = append(c.terms, Term{Surface: s, Count: 1})
}

// Scan finds emoji and word tokens that no table knows about.
// Words are lowercased, stopwords skipped, and bucketed by the row language:
// Hinglish rows feed the Hinglish bucket, everything else the English one.
func (l *Lexicon) Scan(rows []ScanRow) ScanResult {
	var emoji, english, hinglish termCounter
	for _, row := range rows {
		for _, c := range emojiClusters(row.Text) {
			if !l.knownEmoji(c) {
				emoji.add(c)
			}
		}
		for _, tok := range wordToken.FindAllString(strings.ToLower(row.Text), -1) {
			if _, stop := scanStopwords[tok]; stop {
				continue
			}
			if l.knownWord(tok) {
				continue
			}
			if row.Language == domain.LanguageHinglish {
				hinglish.add(tok)
			} else {
				english.add(tok)
			}
		}
	}
	return ScanResult{Emoji: emoji.terms, English: english.terms, Hinglish: hinglish.terms}
}

// knownEmoji also accepts a glyph whose table entry lacks the
// emoji presentation selector.
func (l *Lexicon) knownEmoji(glyph string) bool {
	if _, ok := l.Lookup(CategoryEmoji, glyph); ok {
		return true
	}
	bare := strings.TrimSuffix(glyph, "\uFE0F")
	if bare == glyph {
		return false
	}
	_, ok := l.Lookup(CategoryEmoji, bare)
	return ok
}

func (l *Lexicon) knownWord(tok string) bool {
	if _, ok := l.Lookup(CategoryEnglish, tok); ok {
		return true
	}
	_, ok := l.Lookup(CategoryHinglish, tok)
	return ok
}

// emojiClusters returns the grapheme clusters of text that are emoji, so
// skin-tone, flag and ZWJ sequences come back whole.
func emojiClusters(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if c := gr.Str(); gomoji.ContainsEmoji(c) {
			out = append(out, c)
		}
	}
	return out
}

// MergeStats counts placeholders added per category by MergePlaceholders.
type MergeStats struct {
	Added map[Category]int
}

// MergePlaceholders records the scanned terms in the override file at path
// with PlaceholderGloss. Existing keys are never overwritten. A missing file
// is created; a malformed one is left untouched and reported.
func MergePlaceholders(path string, found ScanResult) (MergeStats, error) {
	existing, err := ReadOverrides(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return MergeStats{}, err
	}

	stats := MergeStats{Added: make(map[Category]int, 3)}
	for _, c := range AllCategories() {
		table, _ := existing.Get(c)
		for _, t := range found.terms(c) {
			if table.Has(t.Surface) {
				continue
			}
			table.Set(t.Surface, PlaceholderGloss)
			stats.Added[c]++
		}
	}

	data, err := encodeOverrides(existing)
	if err != nil {
		return MergeStats{}, err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return MergeStats{}, fmt.Errorf("create override dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return MergeStats{}, fmt.Errorf("write lexicon overrides: %w", err)
	}
	return stats, nil
}
