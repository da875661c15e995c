package config

import "time"

// Pinfile represents the structure of the pinpoint.yaml configuration file.
type Pinfile struct {
	Version      string          `yaml:"version"`
	CacheDir     string          `yaml:"cache_dir"`
	Parallelism  int             `yaml:"parallelism"`
	MetricsFile  string          `yaml:"metrics_file"`
	Include      []string        `yaml:"include"`
	Exclude      []string        `yaml:"exclude"`
	Instrumenter InstrumenterDTO `yaml:"instrumenter"`
}

// InstrumenterDTO represents the instrumenter command in the configuration.
type InstrumenterDTO struct {
	Cmd     []string          `yaml:"cmd"`
	Env     map[string]string `yaml:"env"`
	Timeout time.Duration     `yaml:"timeout"`
}

// EnvOverrides holds settings that may be overridden through PINPOINT_* variables.
type EnvOverrides struct {
	CacheDir    string `env:"CACHE_DIR"`
	Parallelism int    `env:"PARALLELISM"`
	MetricsFile string `env:"METRICS_FILE"`
}
