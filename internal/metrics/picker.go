// Package metrics loads BLEU metric files from evaluation runs and picks the
// canonical forward and reverse scores by an explicit label priority.
package metrics

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/heartmarshall/slangbridge/internal/domain"
)

// ScoreField is the payload key holding the numeric BLEU score.
const ScoreField = "bleu_score"

// DefaultForwardPriority is the tie-break order for forward scores.
var DefaultForwardPriority = []string{
	"forward_test",
	"hinglish_forward_test",
	"forward",
	"hinglish_forward_val",
	"forward_val",
}

// DefaultReversePriority is the tie-break order for reverse scores.
var DefaultReversePriority = []string{
	"reverse_test",
	"hinglish_reverse_test",
	"reverse",
	"hinglish_reverse_val",
	"reverse_val",
	"reverse_val_baseline",
}

// Payload is the raw JSON object recorded for one label.
type Payload map[string]any

// BLEU returns the numeric score field, if present.
func (p Payload) BLEU() (float64, bool) {
	return numeric(p[ScoreField])
}

// numeric reports v as a float64 when it is a JSON number. Booleans are not numbers.
func numeric(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Selection is the label and score chosen from a priority list.
type Selection struct {
	Label string
	BLEU  float64
}

// Select walks priority in order and returns the first label whose payload
// carries a numeric score.
func Select(scores map[string]Payload, priority []string) (Selection, bool) {
	for _, label := range priority {
		payload, ok := scores[label]
		if !ok {
			continue
		}
		if v, ok := payload.BLEU(); ok {
			return Selection{Label: label, BLEU: v}, true
		}
	}
	return Selection{}, false
}

// Pick returns the forward and reverse scores chosen by the two priority
// lists. A nil result means no label in that list had a usable score.
func Pick(scores map[string]Payload, forward, reverse []string) (fwd, rev *float64) {
	if s, ok := Select(scores, forward); ok {
		fwd = &s.BLEU
	}
	if s, ok := Select(scores, reverse); ok {
		rev = &s.BLEU
	}
	return fwd, rev
}

// DirectionOf infers the translation direction from a label.
func DirectionOf(label string) domain.Direction {
	if strings.Contains(strings.ToLower(label), "reverse") {
		return domain.DirectionReverse
	}
	return domain.DirectionForward
}

// Records converts scored payloads into metric records sorted by label.
// Payloads without a numeric score are skipped.
func Records(scores map[string]Payload) []domain.MetricRecord {
	labels := make([]string, 0, len(scores))
	for label := range scores {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	recs := make([]domain.MetricRecord, 0, len(labels))
	for _, label := range labels {
		p := scores[label]
		v, ok := p.BLEU()
		if !ok {
			continue
		}
		extra := make(map[string]any, len(p))
		for k, val := range p {
			if k != ScoreField {
				extra[k] = val
			}
		}
		recs = append(recs, domain.MetricRecord{Label: label, BLEU: v, Extra: extra})
	}
	return recs
}
