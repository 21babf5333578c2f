package domain

import "strings"

// LanguageTag identifies the slang family of a translation pair.
type LanguageTag string

const (
	LanguageEnglish  LanguageTag = "english"
	LanguageHinglish LanguageTag = "hinglish"
)

func (l LanguageTag) String() string { return string(l) }

func (l LanguageTag) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageHinglish:
		return true
	}
	return false
}

// ParseLanguageTag maps a raw language cell ("English", "Hinglish", "en", "hi-en", ...)
// to a LanguageTag. Matching is case-insensitive and ignores surrounding spaces.
func ParseLanguageTag(raw string) (LanguageTag, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "english", "en", "eng", "en-us", "en-gb", "en_us", "en_gb":
		return LanguageEnglish, true
	case "hinglish", "hi-en", "hi_en", "hien", "hi", "hin", "hindi":
		return LanguageHinglish, true
	}
	return "", false
}

// Split names one dataset partition.
type Split string

const (
	SplitTrain      Split = "train"
	SplitValidation Split = "validation"
	SplitTest       Split = "test"
)

func (s Split) String() string { return string(s) }

func (s Split) IsValid() bool {
	switch s {
	case SplitTrain, SplitValidation, SplitTest:
		return true
	}
	return false
}

// FileStem returns the base file name used when the split is persisted.
func (s Split) FileStem() string {
	if s == SplitValidation {
		return "val"
	}
	return string(s)
}

// AllSplits returns the partitions in their canonical order.
func AllSplits() []Split {
	return []Split{SplitTrain, SplitValidation, SplitTest}
}

// Direction is the translation direction a metric or dataset file refers to.
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	return d == DirectionForward || d == DirectionReverse
}
