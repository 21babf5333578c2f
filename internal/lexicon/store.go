package lexicon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OverrideStatus describes what happened to the optional override file.
type OverrideStatus int

const (
	// OverridesAbsent means no path was given or the file does not exist.
	OverridesAbsent OverrideStatus = iota
	// OverridesApplied means the file was read and merged.
	OverridesApplied
	// OverridesMalformed means the file exists but could not be used.
	OverridesMalformed
)

func (s OverrideStatus) String() string {
	switch s {
	case OverridesAbsent:
		return "absent"
	case OverridesApplied:
		return "applied"
	case OverridesMalformed:
		return "malformed"
	}
	return fmt.Sprintf("OverrideStatus(%d)", int(s))
}

// LoadResult reports how the override file contributed to a Lexicon.
// Err is only set for OverridesMalformed.
type LoadResult struct {
	Path    string
	Status  OverrideStatus
	Err     error
	Applied map[Category]int
}

// Lexicon is an immutable set of substitution tables with precompiled matchers.
// The zero value and a nil *Lexicon both behave as an empty lexicon.
type Lexicon struct {
	tables   Tables
	emoji    []Entry
	english  []wordRule
	hinglish []wordRule
}

// New builds a Lexicon from tables. The tables are copied.
func New(tables Tables) *Lexicon {
	lex := &Lexicon{tables: tables.clone()}
	for _, e := range lex.tables.Emoji.Entries() {
		if e.Surface == "" || e.Unresolved() {
			continue
		}
		lex.emoji = append(lex.emoji, e)
	}
	lex.english = compileRules(lex.tables.English)
	lex.hinglish = compileRules(lex.tables.Hinglish)
	return lex
}

func compileRules(t Table) []wordRule {
	var rules []wordRule
	for _, e := range t.Entries() {
		if e.Surface == "" || e.Unresolved() {
			continue
		}
		rules = append(rules, newWordRule(e.Surface, e.Gloss))
	}
	return rules
}

// Load merges the override file at overridePath on top of base.
// It never fails: a missing file yields the base tables, and a malformed
// file yields the base tables with the cause in LoadResult.Err.
func Load(base Tables, overridePath string) (*Lexicon, LoadResult) {
	res := LoadResult{Path: overridePath, Status: OverridesAbsent}
	if overridePath == "" {
		return New(base), res
	}

	overrides, err := ReadOverrides(overridePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return New(base), res
	case err != nil:
		res.Status = OverridesMalformed
		res.Err = err
		return New(base), res
	}

	merged := base.clone()
	merged.Merge(overrides)
	res.Status = OverridesApplied
	res.Applied = map[Category]int{
		CategoryEmoji:    overrides.Emoji.Len(),
		CategoryEnglish:  overrides.English.Len(),
		CategoryHinglish: overrides.Hinglish.Len(),
	}
	return New(merged), res
}

// ReadOverrides parses an override file, preserving key order within each section.
// Unknown top-level keys and non-string glosses are ignored.
func ReadOverrides(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read lexicon overrides: %w", err)
	}
	tables, err := decodeOverrides(data)
	if err != nil {
		return Tables{}, fmt.Errorf("parse lexicon overrides %s: %w", path, err)
	}
	return tables, nil
}

func decodeOverrides(data []byte) (Tables, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return Tables{}, err
	}
	if doc == nil {
		return Tables{}, errors.New("override file is not a JSON object")
	}

	var tables Tables
	for _, c := range AllCategories() {
		raw, ok := doc[c.overrideKey()]
		if !ok {
			continue
		}
		sec := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(raw, sec); err != nil {
			return Tables{}, fmt.Errorf("section %s: %w", c.overrideKey(), err)
		}
		table, _ := tables.Get(c)
		for pair := sec.Oldest(); pair != nil; pair = pair.Next() {
			var gloss string
			if json.Unmarshal(pair.Value, &gloss) != nil {
				continue
			}
			table.Set(pair.Key, gloss)
		}
	}
	return tables, nil
}

// encodeOverrides renders tables as an indented JSON object, keeping entry order.
func encodeOverrides(tables Tables) ([]byte, error) {
	doc := orderedmap.New[string, *orderedmap.OrderedMap[string, string]]()
	for _, c := range AllCategories() {
		sec := orderedmap.New[string, string]()
		table, _ := tables.Get(c)
		for _, e := range table.Entries() {
			sec.Set(e.Surface, e.Gloss)
		}
		doc.Set(c.overrideKey(), sec)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode lexicon overrides: %w", err)
	}
	return buf.Bytes(), nil
}
