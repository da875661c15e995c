package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testConfig = `version: "1"
include: ["src"]
instrumenter:
  cmd: ["sh", "instrument.sh", "{file}"]
`
	testInstrumenter = `#!/bin/sh
printf '{"code":"/* instrumented */","map":{"version":3,"sources":["app.ts"],"names":[],"mappings":"AAAA"}}'
`
)

// setupProject writes a project with one source file and chdirs into it.
func setupProject(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pinpoint.yaml"), []byte(testConfig), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "instrument.sh"), []byte(testInstrumenter), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "app.js"), []byte("console.log(1)\n"), 0o600))
	t.Chdir(dir)
	return dir
}

func runWith(t *testing.T, args ...string) int {
	t.Helper()

	originalArgs := os.Args
	t.Cleanup(func() { os.Args = originalArgs })
	os.Args = append([]string{"pinpoint"}, args...)

	return run()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         [][]string
		expectedExit int
	}{
		{
			name:         "instrument then resolve",
			args:         [][]string{{"instrument"}, {"resolve", "src/app.js", "1", "0"}},
			expectedExit: 0,
		},
		{
			name:         "resolve before instrument",
			args:         [][]string{{"resolve", "src/app.js", "1", "0"}},
			expectedExit: 1,
		},
		{
			name:         "clean",
			args:         [][]string{{"instrument"}, {"clean"}, {"resolve", "src/app.js", "1", "0"}},
			expectedExit: 1,
		},
		{
			name:         "prune",
			args:         [][]string{{"instrument"}, {"prune"}},
			expectedExit: 0,
		},
		{
			name:         "unknown command",
			args:         [][]string{{"frobnicate"}},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t)

			code := 0
			for _, args := range tt.args {
				code = runWith(t, args...)
			}
			assert.Equal(t, tt.expectedExit, code)

			if tt.name == "instrument then resolve" {
				entries, err := os.ReadDir(filepath.Join(dir, ".pinpoint", "cache"))
				require.NoError(t, err)
				assert.Len(t, entries, 1)
			}
		})
	}
}

func TestRun_MissingConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, 1, runWith(t, "clean", "--config", "does-not-exist.yaml"))
}
