package domain

// MetricRecord is one BLEU measurement produced by an evaluation run.
type MetricRecord struct {
	Label string
	BLEU  float64
	// Extra carries auxiliary payload fields (sys_len, ref_len, bp, direction, ...).
	Extra map[string]any
}
