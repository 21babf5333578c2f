package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultPattern matches metric files inside a metrics directory.
const DefaultPattern = "*bleu*.json"

const sacreBLEUPrefix = "sacrebleu"

// LoadOptions controls LoadDir.
type LoadOptions struct {
	// Extra lists files read in addition to the directory matches.
	Extra []string
	// Pattern is the glob used inside the directory. Empty means DefaultPattern.
	Pattern string
	// Concurrency bounds parallel reads. Zero or less means 4.
	Concurrency int
}

// LoadStats counts what happened to the candidate files.
type LoadStats struct {
	Files     int
	Loaded    int
	Missing   int
	Malformed int
	Labels    int
	// MalformedFiles names the files that could not be parsed.
	MalformedFiles []string
	// Sources maps each label to the file its winning payload came from.
	Sources map[string]string
}

type fileStatus int

const (
	fileLoaded fileStatus = iota
	fileMissing
	fileMalformed
)

type fileResult struct {
	path   string
	status fileStatus
	sacre  bool
	scores map[string]Payload
}

// LoadDir reads label→payload metric files and sacreBLEU corpus files.
// Missing or malformed files are counted and skipped. Results are merged in
// sorted path order with sacreBLEU files last, so later files win on label
// collisions. The returned error is only ever a context error.
func LoadDir(ctx context.Context, dir string, opts LoadOptions) (map[string]Payload, LoadStats, error) {
	paths, err := candidates(dir, opts)
	if err != nil {
		return nil, LoadStats{}, err
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = 4
	}

	results := make([]fileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = readMetricFile(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, LoadStats{}, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].sacre != results[j].sacre {
			return !results[i].sacre
		}
		return results[i].path < results[j].path
	})

	stats := LoadStats{Files: len(results), Sources: make(map[string]string)}
	scores := make(map[string]Payload)
	for _, r := range results {
		switch r.status {
		case fileMissing:
			stats.Missing++
			continue
		case fileMalformed:
			stats.Malformed++
			stats.MalformedFiles = append(stats.MalformedFiles, r.path)
			continue
		}
		stats.Loaded++
		for label, p := range r.scores {
			scores[label] = p
			stats.Sources[label] = r.path
		}
	}
	stats.Labels = len(scores)
	return scores, stats, nil
}

func candidates(dir string, opts LoadOptions) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for _, p := range opts.Extra {
		add(p)
	}
	if dir != "" {
		pattern := opts.Pattern
		if pattern == "" {
			pattern = DefaultPattern
		}
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			add(m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// SacreBLEULabel maps a sacreBLEU output file name to its canonical label.
func SacreBLEULabel(path string) string {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(base, "reverse"):
		return "reverse_test"
	case strings.Contains(base, "rich_raw"):
		return "forward_rich_raw"
	case strings.Contains(base, "rich_norm"):
		return "forward_rich_norm"
	}
	return "forward_test"
}

func readMetricFile(path string) fileResult {
	res := fileResult{
		path:  path,
		sacre: strings.HasPrefix(strings.ToLower(filepath.Base(path)), sacreBLEUPrefix),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.status = fileMissing
		} else {
			res.status = fileMalformed
		}
		return res
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		res.status = fileMalformed
		return res
	}

	res.scores = make(map[string]Payload)
	if res.sacre {
		var corpus float64
		if raw, ok := doc["corpus_bleu"]; ok && json.Unmarshal(raw, &corpus) == nil {
			res.scores[SacreBLEULabel(path)] = Payload{ScoreField: corpus}
			return res
		}
	}

	for label, raw := range doc {
		var p Payload
		if json.Unmarshal(raw, &p) != nil || p == nil {
			continue
		}
		if _, ok := p.BLEU(); !ok {
			continue
		}
		res.scores[label] = p
	}
	return res
}
