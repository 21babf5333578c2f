package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/heartmarshall/slangbridge/internal/domain"
)

// Split defaults.
const (
	DefaultSeed      uint64  = 42
	DefaultTrainFrac float64 = 0.7
	DefaultValFrac   float64 = 0.2
)

// SplitSizes returns the target train and validation sizes for n items.
// Both are rounded down; the remainder goes to test.
func SplitSizes(n int, trainFrac, valFrac float64) (train, val int) {
	return int(math.Floor(trainFrac * float64(n))), int(math.Floor(valFrac * float64(n)))
}

// ValidateFractions checks that both fractions are within [0,1] and sum to at most 1.
func ValidateFractions(trainFrac, valFrac float64) error {
	var errs []domain.FieldError
	if math.IsNaN(trainFrac) || trainFrac < 0 || trainFrac > 1 {
		errs = append(errs, domain.FieldError{Field: "train_frac", Message: "must be within [0, 1]"})
	}
	if math.IsNaN(valFrac) || valFrac < 0 || valFrac > 1 {
		errs = append(errs, domain.FieldError{Field: "val_frac", Message: "must be within [0, 1]"})
	}
	if len(errs) == 0 && trainFrac+valFrac > 1+1e-9 {
		errs = append(errs, domain.FieldError{Field: "val_frac", Message: "train_frac + val_frac must not exceed 1"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Split partitions pairs into train, validation and test.
//
// Pairs sharing a source text form one group and always land in the same
// partition. Groups are shuffled with a PCG generator seeded from seed, then
// filled in order: train until it reaches floor(trainFrac*n), validation until
// it reaches floor(valFrac*n) more, the rest to test. With distinct sources
// this is an exact cut at those boundaries. The result depends only on the
// arguments.
func Split(pairs []domain.TranslationPair, seed uint64, trainFrac, valFrac float64) (domain.Partition, error) {
	return splitGroups(pairs, groupBySource(pairs), seed, trainFrac, valFrac)
}

// SplitLinked is Split with coarser groups: pairs that share a source or a
// target are linked, transitively, into one group. Both the forward and the
// reversed partition are then free of leakage.
func SplitLinked(pairs []domain.TranslationPair, seed uint64, trainFrac, valFrac float64) (domain.Partition, error) {
	return splitGroups(pairs, groupLinked(pairs), seed, trainFrac, valFrac)
}

func splitGroups(pairs []domain.TranslationPair, groups [][]domain.TranslationPair, seed uint64, trainFrac, valFrac float64) (domain.Partition, error) {
	if err := ValidateFractions(trainFrac, valFrac); err != nil {
		return domain.Partition{}, err
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(len(groups), func(i, j int) {
		groups[i], groups[j] = groups[j], groups[i]
	})

	nTrain, nVal := SplitSizes(len(pairs), trainFrac, valFrac)
	var part domain.Partition
	for _, g := range groups {
		switch {
		case len(part.Train) < nTrain:
			part.Train = append(part.Train, g...)
		case len(part.Train)+len(part.Validation) < nTrain+nVal:
			part.Validation = append(part.Validation, g...)
		default:
			part.Test = append(part.Test, g...)
		}
	}
	return part, nil
}

// groupBySource groups pairs by source text, keeping first-seen order both
// across and within groups.
func groupBySource(pairs []domain.TranslationPair) [][]domain.TranslationPair {
	idx := make(map[string]int, len(pairs))
	var groups [][]domain.TranslationPair
	for _, p := range pairs {
		i, ok := idx[p.Source]
		if !ok {
			i = len(groups)
			idx[p.Source] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], p)
	}
	return groups
}

// groupLinked groups pairs into connected components, where two pairs are
// connected when they share a source or a target. Groups are ordered by
// their first pair; pairs keep input order within a group.
func groupLinked(pairs []domain.TranslationPair) [][]domain.TranslationPair {
	parent := make([]int, len(pairs))
	for i := range parent {
		parent[i] = i
	}
	find := func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(a, b int) {
		if ra, rb := find(a), find(b); ra != rb {
			parent[rb] = ra
		}
	}

	bySource := make(map[string]int, len(pairs))
	byTarget := make(map[string]int, len(pairs))
	for i, p := range pairs {
		if j, ok := bySource[p.Source]; ok {
			union(i, j)
		} else {
			bySource[p.Source] = i
		}
		if j, ok := byTarget[p.Target]; ok {
			union(i, j)
		} else {
			byTarget[p.Target] = i
		}
	}

	idx := make(map[int]int)
	var groups [][]domain.TranslationPair
	for i, p := range pairs {
		r := find(i)
		g, ok := idx[r]
		if !ok {
			g = len(groups)
			idx[r] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], p)
	}
	return groups
}
