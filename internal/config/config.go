package config

import "time"

// Config is the root configuration shared by the slangbridge CLIs.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// The DSN is optional; only metric persistence needs it.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LexiconConfig points at the optional override file.
type LexiconConfig struct {
	OverridePath string `yaml:"override_path" env:"LEXICON_OVERRIDE_PATH" env-default:"dataset/auto_updates.json"`
}

// DatasetConfig describes the raw input table and where splits are written.
type DatasetConfig struct {
	InputPath      string `yaml:"input_path"      env:"DATASET_INPUT_PATH"`
	Sheet          string `yaml:"sheet"           env:"DATASET_SHEET"`
	SourceColumn   string `yaml:"source_column"   env:"DATASET_SOURCE_COLUMN"   env-default:"Slang/Meme Text"`
	TargetColumn   string `yaml:"target_column"   env:"DATASET_TARGET_COLUMN"   env-default:"Standard Translation"`
	LanguageColumn string `yaml:"language_column" env:"DATASET_LANGUAGE_COLUMN" env-default:"Language"`
	OutputDir      string `yaml:"output_dir"      env:"DATASET_OUTPUT_DIR"      env-default:"outputs/datasets_v2"`
}

// PipelineConfig holds the prepare pipeline switches.
type PipelineConfig struct {
	Seed           uint64        `yaml:"seed"            env:"PIPELINE_SEED"            env-default:"42"`
	TrainFrac      float64       `yaml:"train_frac"      env:"PIPELINE_TRAIN_FRAC"      env-default:"0.7"`
	ValFrac        float64       `yaml:"val_frac"        env:"PIPELINE_VAL_FRAC"        env-default:"0.2"`
	Normalize      bool          `yaml:"normalize"       env:"PIPELINE_NORMALIZE"       env-default:"true"`
	FoldVariants   bool          `yaml:"fold_variants"   env:"PIPELINE_FOLD_VARIANTS"   env-default:"false"`
	MultiReference bool          `yaml:"multi_reference" env:"PIPELINE_MULTI_REFERENCE" env-default:"true"`
	Reverse        bool          `yaml:"reverse"         env:"PIPELINE_REVERSE"         env-default:"false"`
	Language       string        `yaml:"language"        env:"PIPELINE_LANGUAGE"`
	Timeout        time.Duration `yaml:"timeout"         env:"PIPELINE_TIMEOUT"         env-default:"10m"`
}

// MetricsConfig holds metric file discovery and the score priority lists.
type MetricsConfig struct {
	Dir                string `yaml:"dir"              env:"METRICS_DIR"              env-default:"results/metrics"`
	Pattern            string `yaml:"pattern"          env:"METRICS_PATTERN"          env-default:"*bleu*.json"`
	Concurrency        int    `yaml:"concurrency"      env:"METRICS_CONCURRENCY"      env-default:"4"`
	ForwardPriorityRaw string `yaml:"forward_priority" env:"METRICS_FORWARD_PRIORITY" env-default:"forward_test,hinglish_forward_test,forward,hinglish_forward_val,forward_val"`
	ReversePriorityRaw string `yaml:"reverse_priority" env:"METRICS_REVERSE_PRIORITY" env-default:"reverse_test,hinglish_reverse_test,reverse,hinglish_reverse_val,reverse_val,reverse_val_baseline"`

	// ForwardPriority is parsed from ForwardPriorityRaw during validation.
	ForwardPriority []string `yaml:"-" env:"-"`
	// ReversePriority is parsed from ReversePriorityRaw during validation.
	ReversePriority []string `yaml:"-" env:"-"`
}
