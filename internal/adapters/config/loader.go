// Package config provides the configuration loader for pinpoint.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PINPOINT_"

// supportedVersion is the only config schema version understood by the loader.
const supportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file and environment overrides.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration. If path is a directory, pinpoint.yaml is searched for
// in it and its parents.
func (l *Loader) Load(path string) (*domain.Config, error) {
	configPath, err := findConfigFile(path)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to read file"), "path", configPath))
	}

	pinfile, err := parse(data)
	if err != nil {
		return nil, err
	}

	var overrides EnvOverrides
	if err := env.ParseWithOptions(&overrides, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, zerr.Wrap(err, "failed to parse environment overrides"))
	}

	return l.build(filepath.Dir(configPath), pinfile, overrides)
}

func parse(data []byte) (*Pinfile, error) {
	var pinfile Pinfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&pinfile); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.Wrap(err, "failed to decode yaml"))
	}

	if pinfile.Version != "" && pinfile.Version != supportedVersion {
		return nil, errors.Join(
			domain.ErrConfigInvalid,
			zerr.With(zerr.New("unsupported config version"), "version", pinfile.Version),
		)
	}
	return &pinfile, nil
}

func (l *Loader) build(root string, pinfile *Pinfile, overrides EnvOverrides) (*domain.Config, error) {
	cfg := &domain.Config{
		Root:        root,
		CacheDir:    pinfile.CacheDir,
		Parallelism: pinfile.Parallelism,
		MetricsFile: pinfile.MetricsFile,
		Include:     dedupe(pinfile.Include),
		Exclude:     dedupe(pinfile.Exclude),
		Instrumenter: domain.InstrumenterConfig{
			Command:     pinfile.Instrumenter.Cmd,
			Environment: pinfile.Instrumenter.Env,
			Timeout:     pinfile.Instrumenter.Timeout,
			Dir:         root,
		},
	}

	if overrides.CacheDir != "" {
		cfg.CacheDir = overrides.CacheDir
	}
	if overrides.Parallelism != 0 {
		cfg.Parallelism = overrides.Parallelism
	}
	if overrides.MetricsFile != "" {
		cfg.MetricsFile = overrides.MetricsFile
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = domain.DefaultCachePath()
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = runtime.NumCPU()
	}
	if cfg.Parallelism < 0 {
		return nil, errors.Join(
			domain.ErrConfigInvalid,
			zerr.With(zerr.New("parallelism must be at least 1"), "parallelism", cfg.Parallelism),
		)
	}
	if cfg.Instrumenter.Timeout < 0 {
		return nil, errors.Join(
			domain.ErrConfigInvalid,
			zerr.With(zerr.New("instrumenter timeout must not be negative"), "timeout", cfg.Instrumenter.Timeout.String()),
		)
	}

	cfg.CacheDir = absolute(root, cfg.CacheDir)
	if cfg.MetricsFile != "" {
		cfg.MetricsFile = absolute(root, cfg.MetricsFile)
	}

	if len(cfg.Include) == 0 {
		l.logger.Warn("no include patterns configured, files must be passed explicitly")
	}

	return cfg, nil
}

// findConfigFile returns path if it is a file, or searches for pinpoint.yaml in path
// and its parents if it is a directory.
func findConfigFile(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path))
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.Join(domain.ErrConfigNotFound, zerr.With(zerr.New("config file does not exist"), "path", abs))
		}
		return "", errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", abs))
	}
	if !info.IsDir() {
		return abs, nil
	}

	for dir := abs; ; {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.Join(
		domain.ErrConfigNotFound,
		zerr.With(zerr.New("no config file in directory or its parents"), "cwd", abs),
	)
}

func absolute(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
