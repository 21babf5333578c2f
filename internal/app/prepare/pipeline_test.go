package prepare

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/slangbridge/internal/dataset"
	"github.com/heartmarshall/slangbridge/internal/dataset/tabular"
	"github.com/heartmarshall/slangbridge/internal/domain"
	"github.com/heartmarshall/slangbridge/internal/lexicon"
	"github.com/heartmarshall/slangbridge/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		InputPath:      testdataPath(t, "raw.csv"),
		Columns:        dataset.DefaultColumns(),
		OutputDir:      t.TempDir(),
		Seed:           dataset.DefaultSeed,
		TrainFrac:      dataset.DefaultTrainFrac,
		ValFrac:        dataset.DefaultValFrac,
		Normalize:      true,
		MultiReference: true,
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Reverse = true
	runID := uuid.New()
	ctx := ctxutil.WithRunID(context.Background(), runID)

	p := NewPipeline(testLogger(), lexicon.New(lexicon.BaseTables()), cfg)
	require.NoError(t, p.Run(ctx))

	res := p.Results()
	assert.Equal(t, 11, res[PhaseLoad].Out)
	assert.Equal(t, 9, res[PhaseClean].Out)
	assert.Equal(t, 2, res[PhaseClean].Dropped)
	assert.Equal(t, 9, res[PhaseNormalize].Out)
	assert.Equal(t, 9, res[PhaseSplit].Out)

	part := p.Partition()
	assert.Equal(t, 9, part.Len())
	seen := map[string]domain.Split{}
	for _, s := range domain.AllSplits() {
		for _, pair := range part.Get(s) {
			if prev, ok := seen[pair.Source]; ok {
				assert.Equal(t, prev, s, "source %q in two splits", pair.Source)
			}
			seen[pair.Source] = s
		}
	}
	assert.Contains(t, seen, "no lie that tastes great")
	assert.Contains(t, seen, "that fit is amazing amazing")

	manifest, err := tabular.ReadManifest(cfg.OutputDir)
	require.NoError(t, err)
	assert.Equal(t, runID.String(), manifest.RunID)
	require.Len(t, manifest.Files, 6)
	assert.Equal(t, "train.csv", manifest.Files[0].Name)
	assert.Equal(t, "reverse_test.csv", manifest.Files[5].Name)

	records := 0
	for _, f := range manifest.Files[:3] {
		records += f.Rows
	}
	assert.Equal(t, 8, records, "duplicate source aggregated into one record")

	changed, err := manifest.Verify(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestPipeline_Deterministic(t *testing.T) {
	t.Parallel()

	lex := lexicon.New(lexicon.BaseTables())
	a, b := testConfig(t), testConfig(t)
	pa := NewPipeline(testLogger(), lex, a)
	pb := NewPipeline(testLogger(), lex, b)
	require.NoError(t, pa.Run(context.Background()))
	require.NoError(t, pb.Run(context.Background()))

	assert.Equal(t, pa.Partition(), pb.Partition())
	require.Len(t, pa.Files(), 3)
	for i := range pa.Files() {
		assert.Equal(t, pa.Files()[i].Checksum, pb.Files()[i].Checksum)
	}
}

func TestPipeline_ReverseFilesDoNotLeak(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.InputPath = testdataPath(t, "shared_targets.csv")
	cfg.Reverse = true
	cfg.Normalize = false
	cfg.MultiReference = false

	p := NewPipeline(testLogger(), nil, cfg)
	require.NoError(t, p.Run(context.Background()))

	seen := map[string]string{}
	for _, s := range domain.AllSplits() {
		name := "reverse_" + s.FileStem() + ".csv"
		table, err := tabular.Read(filepath.Join(cfg.OutputDir, name), tabular.ReadOptions{})
		require.NoError(t, err)
		for _, row := range table.Rows {
			src := row.Get("source_text")
			if prev, ok := seen[src]; ok && prev != name {
				t.Errorf("reverse source %q in %s and %s", src, prev, name)
			}
			seen[src] = name
		}
	}
	assert.Len(t, seen, 4)
}

func TestPipeline_LanguageFilterAndPlainPairs(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Language = domain.LanguageHinglish
	cfg.MultiReference = false
	cfg.Normalize = false

	p := NewPipeline(testLogger(), nil, cfg)
	require.NoError(t, p.Run(context.Background()))

	assert.True(t, p.Results()[PhaseNormalize].Skipped)
	assert.Equal(t, 2, p.Partition().Len())
	for _, s := range domain.AllSplits() {
		for _, pair := range p.Partition().Get(s) {
			assert.Equal(t, domain.LanguageHinglish, pair.Language)
		}
	}

	raw, err := os.ReadFile(filepath.Join(cfg.OutputDir, "train.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "source_text,target_text,language\n")
}

func TestPipeline_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.DryRun = true

	p := NewPipeline(testLogger(), nil, cfg)
	require.NoError(t, p.Run(context.Background()))
	assert.True(t, p.Results()[PhaseWrite].Skipped)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPipeline_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantErr   error
		failPhase string
	}{
		{
			name:      "no input configured",
			mutate:    func(c *Config) { c.InputPath = "" },
			wantErr:   domain.ErrNotFound,
			failPhase: PhaseLoad,
		},
		{
			name:      "missing input file",
			mutate:    func(c *Config) { c.InputPath = filepath.Join("testdata", "missing.csv") },
			wantErr:   domain.ErrNotFound,
			failPhase: PhaseLoad,
		},
		{
			name:      "missing column",
			mutate:    func(c *Config) { c.Columns.Target = "Translation" },
			wantErr:   domain.ErrSchema,
			failPhase: PhaseLoad,
		},
		{
			name:      "bad fractions",
			mutate:    func(c *Config) { c.TrainFrac = 0.9; c.ValFrac = 0.5 },
			wantErr:   domain.ErrValidation,
			failPhase: PhaseSplit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig(t)
			tt.mutate(&cfg)

			p := NewPipeline(testLogger(), nil, cfg)
			err := p.Run(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Error(t, p.Results()[tt.failPhase].Err)
			assert.NotContains(t, p.Results(), PhaseWrite)
		})
	}
}

func TestPipeline_Describe(t *testing.T) {
	t.Parallel()

	p := NewPipeline(testLogger(), nil, testConfig(t))
	s, err := p.Describe()
	require.NoError(t, err)
	assert.Equal(t, 11, s.Rows)
	assert.Equal(t, 9, s.Languages["English"])
	assert.Equal(t, 1, s.Missing["Slang/Meme Text"])
}

func TestPipeline_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewPipeline(testLogger(), nil, testConfig(t)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPhases(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"load", "clean", "normalize", "split", "write"}, Phases())
}
