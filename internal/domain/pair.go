package domain

// TranslationPair is one cleaned slang/standard example.
type TranslationPair struct {
	Source   string
	Target   string
	Language LanguageTag
}

// Reversed swaps source and target for the standard-to-slang direction.
func (p TranslationPair) Reversed() TranslationPair {
	return TranslationPair{Source: p.Target, Target: p.Source, Language: p.Language}
}

// MultiRefRecord groups every accepted target phrasing for one source text.
// Alternates preserves first-seen order and never contains Primary.
type MultiRefRecord struct {
	Source     string
	Primary    string
	Alternates []string
	Language   LanguageTag
}

// References returns the primary target followed by the alternates.
func (r MultiRefRecord) References() []string {
	refs := make([]string, 0, 1+len(r.Alternates))
	refs = append(refs, r.Primary)
	return append(refs, r.Alternates...)
}

// Partition is the outcome of a train/validation/test split.
// It is never mutated after Split returns it.
type Partition struct {
	Train      []TranslationPair
	Validation []TranslationPair
	Test       []TranslationPair
}

// Get returns the pairs of one split.
func (p Partition) Get(s Split) []TranslationPair {
	switch s {
	case SplitTrain:
		return p.Train
	case SplitValidation:
		return p.Validation
	case SplitTest:
		return p.Test
	}
	return nil
}

// Len returns the total number of pairs across all splits.
func (p Partition) Len() int {
	return len(p.Train) + len(p.Validation) + len(p.Test)
}

// Reversed returns a partition with every pair swapped.
func (p Partition) Reversed() Partition {
	return Partition{
		Train:      reversePairs(p.Train),
		Validation: reversePairs(p.Validation),
		Test:       reversePairs(p.Test),
	}
}

func reversePairs(pairs []TranslationPair) []TranslationPair {
	out := make([]TranslationPair, len(pairs))
	for i, p := range pairs {
		out[i] = p.Reversed()
	}
	return out
}
