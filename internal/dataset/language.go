package dataset

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"

	"github.com/heartmarshall/slangbridge/internal/domain"
)

var hinglishMarkers = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		kya kyun kaise acha theek hai hota nahi matlab lekin par aur mein ko se ki ka ke na ho karo karenge karna karoge
		yaar bhai dost didi behen beta beti ji haan naa accha thoda bahut jyada kam bilkul ekdum
		chal jaa aa dekh sun bol samajh kar le de rakh nikal mil laga bana khaa pee so uth baith`) {
		hinglishMarkers[w] = struct{}{}
	}
}

// InferLanguage guesses the tag of a row whose language cell is blank.
// Romanized Hindi marker words or Devanagari/Hindi detection yield Hinglish,
// anything else English.
func InferLanguage(text string) domain.LanguageTag {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_'
	})
	for _, w := range words {
		if _, ok := hinglishMarkers[w]; ok {
			return domain.LanguageHinglish
		}
	}

	if whatlanggo.DetectScript(text) == unicode.Devanagari {
		return domain.LanguageHinglish
	}
	if info := whatlanggo.Detect(text); info.Lang == whatlanggo.Hin && info.IsReliable() {
		return domain.LanguageHinglish
	}
	return domain.LanguageEnglish
}
