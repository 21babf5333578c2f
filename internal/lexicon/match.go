package lexicon

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordRule replaces whole-word, case-insensitive occurrences of a term.
type wordRule struct {
	term  string
	gloss string
	re    *regexp.Regexp
}

func newWordRule(term, gloss string) wordRule {
	return wordRule{
		term:  term,
		gloss: gloss,
		re:    regexp.MustCompile("(?i)" + regexp.QuoteMeta(term)),
	}
}

// apply substitutes every match bounded by word transitions on both sides.
// A candidate that fails the boundary check is retried one rune further on,
// so overlapping candidates are found the same way a \b-anchored scan would.
func (r wordRule) apply(text string) string {
	var b strings.Builder
	last, pos := 0, 0
	for pos < len(text) {
		loc := r.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && atBoundary(text, start) && atBoundary(text, end) {
			if b.Len() == 0 {
				b.Grow(len(text))
			}
			b.WriteString(text[last:start])
			b.WriteString(r.gloss)
			last, pos = end, end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// atBoundary reports a word/non-word transition at byte offset i.
// Text edges count as non-word.
func atBoundary(text string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		before = isWordRune(r)
	}
	if i < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
