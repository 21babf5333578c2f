package config

import (
	"fmt"
	"math"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.Metrics.validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

func (p *PipelineConfig) validate() error {
	if !validFrac(p.TrainFrac) {
		return fmt.Errorf("train_frac must be within [0, 1] (got %v)", p.TrainFrac)
	}
	if !validFrac(p.ValFrac) {
		return fmt.Errorf("val_frac must be within [0, 1] (got %v)", p.ValFrac)
	}
	if p.TrainFrac+p.ValFrac > 1+1e-9 {
		return fmt.Errorf("train_frac + val_frac must not exceed 1 (got %v)", p.TrainFrac+p.ValFrac)
	}
	switch strings.ToLower(p.Language) {
	case "", "english", "hinglish":
	default:
		return fmt.Errorf("language must be empty, english or hinglish (got %q)", p.Language)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", p.Timeout)
	}
	return nil
}

func validFrac(f float64) bool {
	return !math.IsNaN(f) && f >= 0 && f <= 1
}

func (m *MetricsConfig) validate() error {
	if m.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", m.Concurrency)
	}

	m.ForwardPriority = ParseLabelList(m.ForwardPriorityRaw)
	if len(m.ForwardPriority) == 0 {
		return fmt.Errorf("forward_priority must list at least one label")
	}
	m.ReversePriority = ParseLabelList(m.ReversePriorityRaw)
	if len(m.ReversePriority) == 0 {
		return fmt.Errorf("reverse_priority must list at least one label")
	}
	return nil
}

// ParseLabelList splits a comma-separated label list, dropping blanks.
// Order is preserved; it is the tie-break order.
func ParseLabelList(raw string) []string {
	var labels []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
