package lexicon

import (
	"strings"
	"sync"
)

// hinglishVariants maps a canonical spelling to the romanized variants seen in the data.
var hinglishVariants = []struct {
	base     string
	variants []string
}{
	{"bhai", []string{"bhai", "bhaii", "bhaiya", "bhay"}},
	{"yaar", []string{"yaar", "yarr", "yar", "yaarrr"}},
	{"mast", []string{"mast", "must", "mastt"}},
	{"bakchodi", []string{"bakchodi", "bakchodiya", "bakchod"}},
	{"acha", []string{"acha", "accha", "achha"}},
	{"pura", []string{"pura", "poora", "puraah"}},
	{"scene", []string{"scene", "seen", "scn"}},
	{"level", []string{"level", "lvl", "lewl"}},
	{"dialogue", []string{"dialogue", "dialog", "dilog"}},
	{"viral", []string{"viral", "wyral", "vyral"}},
	{"trend", []string{"trend", "trand", "treand"}},
	{"relatable", []string{"relatable", "reltbl", "relatble"}},
	{"meme", []string{"meme", "meem", "mem"}},
	{"friend", []string{"friend", "frnd", "fren"}},
	{"roast", []string{"roast", "rost", "roassst"}},
	{"vibe", []string{"vibe", "vaib", "vayybe"}},
	{"bakwaas", []string{"bakwaas", "bakwas", "bakvaas"}},
	{"sahi", []string{"sahi", "sai"}},
	{"pagal", []string{"pagal", "paagal", "pagl"}},
}

var variantRules = sync.OnceValue(func() []wordRule {
	var rules []wordRule
	for _, v := range hinglishVariants {
		for _, variant := range v.variants {
			if variant == v.base {
				continue
			}
			rules = append(rules, newWordRule(variant, v.base))
		}
	}
	return rules
})

// FoldVariants lowercases text and rewrites known Hinglish spelling
// variants to their canonical form, collapsing whitespace.
func FoldVariants(text string) string {
	text = strings.ToLower(text)
	for _, r := range variantRules() {
		text = r.apply(text)
	}
	return strings.Join(strings.Fields(text), " ")
}
