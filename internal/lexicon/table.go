// Package lexicon holds the slang/emoji substitution tables and the
// deterministic normalizer built on top of them.
package lexicon

import (
	"fmt"
	"strings"
)

// Category names one of the three substitution tables.
type Category string

const (
	CategoryEmoji    Category = "emoji"
	CategoryEnglish  Category = "english"
	CategoryHinglish Category = "hinglish"
)

// AllCategories returns the categories in application order.
func AllCategories() []Category {
	return []Category{CategoryEmoji, CategoryEnglish, CategoryHinglish}
}

// overrideKey is the section name used in the override JSON file.
func (c Category) overrideKey() string {
	switch c {
	case CategoryEmoji:
		return "EMOJI_DICT"
	case CategoryEnglish:
		return "ENGLISH_SLANG_DICT"
	case CategoryHinglish:
		return "HINGLISH_DICT"
	}
	return ""
}

func categoryForKey(key string) (Category, bool) {
	for _, c := range AllCategories() {
		if c.overrideKey() == key {
			return c, true
		}
	}
	return "", false
}

// Entry maps a surface form (emoji glyph or slang term) to its gloss.
type Entry struct {
	Surface string
	Gloss   string
}

// placeholderPrefix marks "seen but not yet translated" glosses.
const placeholderPrefix = "todo"

// PlaceholderGloss is written for newly discovered terms by the scanner.
const PlaceholderGloss = "TODO: add meaning"

// Unresolved reports whether the gloss is a placeholder that Normalize must skip.
func (e Entry) Unresolved() bool {
	return IsPlaceholder(e.Gloss)
}

// IsPlaceholder reports whether gloss starts with the reserved "todo" marker.
func IsPlaceholder(gloss string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(gloss)), placeholderPrefix)
}

// Table is an insertion-ordered surface→gloss mapping.
// Overwriting an existing surface keeps its original position.
type Table struct {
	keys  []string
	gloss map[string]string
}

// NewTable builds a table from entries; later duplicates overwrite earlier ones.
func NewTable(entries ...Entry) Table {
	t := Table{gloss: make(map[string]string, len(entries))}
	for _, e := range entries {
		t.Set(e.Surface, e.Gloss)
	}
	return t
}

// Set inserts or overwrites a mapping.
func (t *Table) Set(surface, gloss string) {
	if t.gloss == nil {
		t.gloss = make(map[string]string)
	}
	if _, ok := t.gloss[surface]; !ok {
		t.keys = append(t.keys, surface)
	}
	t.gloss[surface] = gloss
}

// Get returns the gloss for an exact surface form.
func (t Table) Get(surface string) (string, bool) {
	g, ok := t.gloss[surface]
	return g, ok
}

// Has reports whether surface is present, resolved or not.
func (t Table) Has(surface string) bool {
	_, ok := t.gloss[surface]
	return ok
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.keys) }

// Entries returns the entries in insertion order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry{Surface: k, Gloss: t.gloss[k]}
	}
	return out
}

// Merge applies other on top of t, last write wins.
func (t *Table) Merge(other Table) {
	for _, k := range other.keys {
		t.Set(k, other.gloss[k])
	}
}

func (t Table) clone() Table {
	c := Table{
		keys:  make([]string, len(t.keys)),
		gloss: make(map[string]string, len(t.gloss)),
	}
	copy(c.keys, t.keys)
	for k, v := range t.gloss {
		c.gloss[k] = v
	}
	return c
}

// Tables bundles the three category tables.
type Tables struct {
	Emoji    Table
	English  Table
	Hinglish Table
}

// Get returns a pointer to the table of the given category.
func (ts *Tables) Get(c Category) (*Table, error) {
	switch c {
	case CategoryEmoji:
		return &ts.Emoji, nil
	case CategoryEnglish:
		return &ts.English, nil
	case CategoryHinglish:
		return &ts.Hinglish, nil
	}
	return nil, fmt.Errorf("unknown lexicon category %q", c)
}

func (ts Tables) clone() Tables {
	return Tables{
		Emoji:    ts.Emoji.clone(),
		English:  ts.English.clone(),
		Hinglish: ts.Hinglish.clone(),
	}
}

// Merge applies overrides on top of ts per category.
func (ts *Tables) Merge(overrides Tables) {
	ts.Emoji.Merge(overrides.Emoji)
	ts.English.Merge(overrides.English)
	ts.Hinglish.Merge(overrides.Hinglish)
}
