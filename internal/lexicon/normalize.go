package lexicon

import (
	"fmt"
	"strings"
)

// Scope selects which slang tables Normalize applies. Emoji are always replaced.
type Scope string

const (
	ScopeEnglish  Scope = "english"
	ScopeHinglish Scope = "hinglish"
	ScopeBoth     Scope = "both"
)

func (s Scope) String() string { return string(s) }

func (s Scope) IsValid() bool {
	switch s {
	case ScopeEnglish, ScopeHinglish, ScopeBoth:
		return true
	}
	return false
}

func (s Scope) includesEnglish() bool  { return s == ScopeEnglish || s == ScopeBoth }
func (s Scope) includesHinglish() bool { return s == ScopeHinglish || s == ScopeBoth }

// ParseScope parses a scope name case-insensitively.
func ParseScope(raw string) (Scope, error) {
	s := Scope(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown normalize scope %q (want english, hinglish or both)", raw)
	}
	return s, nil
}

// segment is a run of text; final segments hold emoji glosses and are
// never rescanned by the slang rules.
type segment struct {
	text  string
	final bool
}

// Normalize rewrites text in one pass: emoji glyphs become " gloss ",
// then English and Hinglish slang are replaced as whole words
// (case-insensitive, table order), then whitespace is collapsed.
// Unresolved entries are skipped. A nil Lexicon only collapses whitespace.
func (l *Lexicon) Normalize(text string, scope Scope) string {
	if l == nil {
		return strings.Join(strings.Fields(text), " ")
	}

	segs := []segment{{text: text}}
	for _, e := range l.emoji {
		segs = replaceEmoji(segs, e)
	}
	if scope.includesEnglish() {
		segs = applyRules(segs, l.english)
	}
	if scope.includesHinglish() {
		segs = applyRules(segs, l.hinglish)
	}

	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.text)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeValue normalizes strings and returns any other value unchanged.
func (l *Lexicon) NormalizeValue(v any, scope Scope) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return l.Normalize(s, scope)
}

func replaceEmoji(segs []segment, e Entry) []segment {
	out := make([]segment, 0, len(segs))
	for _, s := range segs {
		if s.final || !strings.Contains(s.text, e.Surface) {
			out = append(out, s)
			continue
		}
		parts := strings.Split(s.text, e.Surface)
		for i, p := range parts {
			if i > 0 {
				out = append(out, segment{text: " " + e.Gloss + " ", final: true})
			}
			if p != "" {
				out = append(out, segment{text: p})
			}
		}
	}
	return out
}

func applyRules(segs []segment, rules []wordRule) []segment {
	for i := range segs {
		if segs[i].final {
			continue
		}
		for _, r := range rules {
			segs[i].text = r.apply(segs[i].text)
		}
	}
	return segs
}
