package domain

import "time"

// Config is the resolved project configuration.
// All paths are absolute once produced by a ConfigLoader.
type Config struct {
	// Root is the directory containing the config file.
	Root string
	// CacheDir holds the persisted instrumentation snapshot.
	CacheDir string
	// Parallelism bounds concurrent instrumentation jobs.
	Parallelism int
	// MetricsFile, if set, receives a Prometheus textfile after each run.
	MetricsFile string
	// Include lists files, directories or glob patterns to instrument.
	Include []string
	// Exclude lists base-name patterns skipped while walking directories.
	Exclude []string
	// Instrumenter describes the external transform command.
	Instrumenter InstrumenterConfig
}

// InstrumenterConfig describes how to invoke the external instrumenter.
type InstrumenterConfig struct {
	// Command is the argv; "{file}" is replaced by the file path, otherwise the
	// path is appended.
	Command []string
	// Environment overrides variables of the current process.
	Environment map[string]string
	// Timeout bounds a single invocation. Zero means no timeout.
	Timeout time.Duration
	// Dir is the working directory of the command, normally the project root.
	Dir string
}

// FilePlaceholder is substituted with the file path in instrumenter commands.
const FilePlaceholder = "{file}"
