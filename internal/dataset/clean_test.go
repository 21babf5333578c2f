package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/slangbridge/internal/dataset/tabular"
	"github.com/heartmarshall/slangbridge/internal/domain"
	"github.com/heartmarshall/slangbridge/internal/lexicon"
)

func row(src, tgt, lang string) tabular.Row {
	cols := DefaultColumns()
	return tabular.Row{cols.Source: src, cols.Target: tgt, cols.Language: lang}
}

func TestClean(t *testing.T) {
	t.Parallel()

	rows := []tabular.Row{
		row("  NO   Cap\u200b ", "Honestly", "English"),
		row("no cap", "HONESTLY", "english"),
		row("", "something", "English"),
		row("rizz", "TODO: add meaning", "English"),
		row("bhai kya hua", "bro what happened", ""),
	}

	pairs, stats := Clean(rows, DefaultColumns())

	assert.Equal(t, []domain.TranslationPair{
		{Source: "no cap", Target: "honestly", Language: domain.LanguageEnglish},
		{Source: "bhai kya hua", Target: "bro what happened", Language: domain.LanguageHinglish},
	}, pairs)
	assert.Equal(t, CleanStats{
		Total:              5,
		DroppedEmpty:       1,
		DroppedPlaceholder: 1,
		DroppedDuplicate:   1,
		LanguageInferred:   1,
		Kept:               2,
	}, stats)
}

func TestClean_SameSourceDifferentTargetsKept(t *testing.T) {
	t.Parallel()

	pairs, stats := Clean([]tabular.Row{
		row("A", "X", "English"),
		row("A", "Y", "English"),
	}, DefaultColumns())

	assert.Len(t, pairs, 2)
	assert.Zero(t, stats.DroppedDuplicate)
}

func TestNormalizePairs(t *testing.T) {
	t.Parallel()

	lex := lexicon.New(lexicon.Tables{
		English:  lexicon.NewTable(lexicon.Entry{Surface: "fire", Gloss: "amazing"}),
		Hinglish: lexicon.NewTable(lexicon.Entry{Surface: "bhai", Gloss: "brother"}),
	})
	input := func() []domain.TranslationPair {
		return []domain.TranslationPair{
			{Source: "bhaii that is fire", Target: "brother that is fire", Language: domain.LanguageHinglish},
			{Source: "bhai that is fire", Target: "brother that is fire", Language: domain.LanguageHinglish},
		}
	}

	folded, stats := NormalizePairs(input(), lex, NormalizeOptions{FoldVariants: true})
	assert.Equal(t, []domain.TranslationPair{
		{Source: "brother that is amazing", Target: "brother that is amazing", Language: domain.LanguageHinglish},
	}, folded)
	assert.Equal(t, NormalizeStats{DroppedDuplicate: 1, Kept: 1}, stats)

	plain, stats := NormalizePairs(input(), lex, NormalizeOptions{})
	assert.Len(t, plain, 2)
	assert.Equal(t, "bhaii that is amazing", plain[0].Source)
	assert.Zero(t, stats.DroppedDuplicate)
}

func TestNormalizePairs_NilLexicon(t *testing.T) {
	t.Parallel()

	pairs := []domain.TranslationPair{{Source: "fire", Target: "amazing", Language: domain.LanguageEnglish}}
	got, _ := NormalizePairs(pairs, nil, NormalizeOptions{})
	assert.Equal(t, pairs, got)
}

func TestFilterLanguage(t *testing.T) {
	t.Parallel()

	pairs := []domain.TranslationPair{
		{Source: "a", Target: "x", Language: domain.LanguageEnglish},
		{Source: "b", Target: "y", Language: domain.LanguageHinglish},
	}
	assert.Equal(t, pairs[1:], FilterLanguage(pairs, domain.LanguageHinglish))
}

func TestInferLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want domain.LanguageTag
	}{
		{"bhai kya scene", domain.LanguageHinglish},
		{"Yaar, that was epic", domain.LanguageHinglish},
		{"यह बहुत अच्छा है", domain.LanguageHinglish},
		{"that fit is fire", domain.LanguageEnglish},
		{"", domain.LanguageEnglish},
	}
	for _, tt := range tests {
		if got := InferLanguage(tt.text); got != tt.want {
			t.Errorf("InferLanguage(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}
