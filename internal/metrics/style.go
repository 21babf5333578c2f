package metrics

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// StyleFile is the per-label style metrics file written next to the BLEU files.
const StyleFile = "style_metrics.json"

// Style metric fields averaged by SummarizeStyle.
const (
	EmojiPresenceField = "emoji_presence"
	SlangPresenceField = "slang_presence"
)

// StyleSummary holds style presence rates averaged across labels.
// A nil average means no label reported a numeric value for it.
type StyleSummary struct {
	EmojiPresence *float64 `json:"emoji_presence"`
	SlangPresence *float64 `json:"slang_presence"`
	Labels        []string `json:"labels"`
}

// LoadStyle reads a label→payload style metrics file. A missing file returns
// nil without error. A file that is not a JSON object returns an error;
// callers log it and treat the file as absent. Non-object entries are dropped.
func LoadStyle(path string) (map[string]Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read style metrics: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse style metrics %s: %w", path, err)
	}

	style := make(map[string]Payload, len(doc))
	for label, raw := range doc {
		var p Payload
		if json.Unmarshal(raw, &p) != nil || p == nil {
			continue
		}
		style[label] = p
	}
	return style, nil
}

// SummarizeStyle averages emoji and slang presence over every label that
// reports a numeric value. Non-numeric fields are skipped.
func SummarizeStyle(style map[string]Payload) StyleSummary {
	labels := make([]string, 0, len(style))
	for label := range style {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var emoji, slang []float64
	for _, label := range labels {
		p := style[label]
		if v, ok := numeric(p[EmojiPresenceField]); ok {
			emoji = append(emoji, v)
		}
		if v, ok := numeric(p[SlangPresenceField]); ok {
			slang = append(slang, v)
		}
	}
	return StyleSummary{
		EmojiPresence: mean(emoji),
		SlangPresence: mean(slang),
		Labels:        labels,
	}
}

func mean(vs []float64) *float64 {
	if len(vs) == 0 {
		return nil
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	avg := sum / float64(len(vs))
	return &avg
}
