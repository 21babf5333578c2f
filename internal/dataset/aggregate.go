package dataset

import "github.com/heartmarshall/slangbridge/internal/domain"

// MultiRefPartition is a Partition aggregated into multi-reference records.
type MultiRefPartition struct {
	Train      []domain.MultiRefRecord
	Validation []domain.MultiRefRecord
	Test       []domain.MultiRefRecord
}

// Get returns the records of one split.
func (p MultiRefPartition) Get(s domain.Split) []domain.MultiRefRecord {
	switch s {
	case domain.SplitTrain:
		return p.Train
	case domain.SplitValidation:
		return p.Validation
	case domain.SplitTest:
		return p.Test
	}
	return nil
}

type groupKey struct {
	source string
	lang   domain.LanguageTag
}

// Aggregate collapses pairs sharing (source, language) into one record.
// The first distinct target becomes Primary, later distinct targets become
// Alternates in first-seen order. Records keep the order in which their
// group first appeared.
func Aggregate(pairs []domain.TranslationPair) []domain.MultiRefRecord {
	idx := make(map[groupKey]int, len(pairs))
	var recs []domain.MultiRefRecord
	for _, p := range pairs {
		k := groupKey{p.Source, p.Language}
		i, ok := idx[k]
		if !ok {
			idx[k] = len(recs)
			recs = append(recs, domain.MultiRefRecord{
				Source:     p.Source,
				Primary:    p.Target,
				Alternates: []string{},
				Language:   p.Language,
			})
			continue
		}
		if !hasReference(recs[i], p.Target) {
			recs[i].Alternates = append(recs[i].Alternates, p.Target)
		}
	}
	return recs
}

func hasReference(r domain.MultiRefRecord, target string) bool {
	if r.Primary == target {
		return true
	}
	for _, a := range r.Alternates {
		if a == target {
			return true
		}
	}
	return false
}

// AggregatePartition aggregates each split independently. Split keeps every
// source in one partition, so no record is divided across splits.
func AggregatePartition(p domain.Partition) MultiRefPartition {
	return MultiRefPartition{
		Train:      Aggregate(p.Train),
		Validation: Aggregate(p.Validation),
		Test:       Aggregate(p.Test),
	}
}
