package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpoint/internal/adapters/config"
	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fullConfig = `
version: "1"
cache_dir: build/pinpoint
parallelism: 3
metrics_file: metrics.prom
include: ["src", "lib/*.js", "src"]
exclude: ["*.min.js", "node_modules"]
instrumenter:
  cmd: ["node", "tools/instrument.js", "{file}"]
  env:
    NODE_ENV: test
  timeout: 30s
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger), mockLogger
}

func TestLoader_Load_Full(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, fullConfig)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		Root:        tmpDir,
		CacheDir:    filepath.Join(tmpDir, "build", "pinpoint"),
		Parallelism: 3,
		MetricsFile: filepath.Join(tmpDir, "metrics.prom"),
		Include:     []string{"src", "lib/*.js"},
		Exclude:     []string{"*.min.js", "node_modules"},
		Instrumenter: domain.InstrumenterConfig{
			Command:     []string{"node", "tools/instrument.js", "{file}"},
			Environment: map[string]string{"NODE_ENV": "test"},
			Timeout:     30 * time.Second,
			Dir:         tmpDir,
		},
	}, cfg)
}

func TestLoader_Load_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "include: [src]\n")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, ".pinpoint", "cache"), cfg.CacheDir)
	assert.Equal(t, runtime.NumCPU(), cfg.Parallelism)
	assert.Empty(t, cfg.MetricsFile)
	assert.Zero(t, cfg.Instrumenter.Timeout)
}

func TestLoader_Load_EmptyFileWarns(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, "")
	loader, mockLogger := newLoader(t)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Include)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, tmpDir, fullConfig)
	t.Setenv("PINPOINT_CACHE_DIR", "/var/cache/pinpoint")
	t.Setenv("PINPOINT_PARALLELISM", "7")
	t.Setenv("PINPOINT_METRICS_FILE", "out/metrics.prom")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/pinpoint", cfg.CacheDir)
	assert.Equal(t, 7, cfg.Parallelism)
	assert.Equal(t, filepath.Join(tmpDir, "out", "metrics.prom"), cfg.MetricsFile)
}

func TestLoader_Load_InvalidEnvOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), fullConfig)
	t.Setenv("PINPOINT_PARALLELISM", "many")
	loader, _ := newLoader(t)

	_, err := loader.Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigInvalid)
}

func TestLoader_Load_Discovery(t *testing.T) {
	// root/
	//   pinpoint.yaml
	//   packages/app/src/ (start here)
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, fullConfig)
	deep := filepath.Join(tmpDir, "packages", "app", "src")
	require.NoError(t, os.MkdirAll(deep, 0o750))
	loader, _ := newLoader(t)

	cfg, err := loader.Load(deep)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, cfg.Root)
	assert.Equal(t, tmpDir, cfg.Instrumenter.Dir)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "malformed yaml", content: "include: [src", want: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "includes: [src]\n", want: domain.ErrConfigParseFailed},
		{name: "wrong type", content: "parallelism: lots\n", want: domain.ErrConfigParseFailed},
		{name: "bad timeout", content: "instrumenter:\n  timeout: soon\n", want: domain.ErrConfigParseFailed},
		{name: "unsupported version", content: "version: \"2\"\n", want: domain.ErrConfigInvalid},
		{name: "negative parallelism", content: "include: [src]\nparallelism: -2\n", want: domain.ErrConfigInvalid},
		{name: "negative timeout", content: "include: [src]\ninstrumenter:\n  timeout: -1s\n", want: domain.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			loader, mockLogger := newLoader(t)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

			cfg, err := loader.Load(path)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}
