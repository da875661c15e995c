// Package shell runs the external instrumenter command.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Instrumenter = (*Instrumenter)(nil)

// output is the document the instrumenter prints on stdout.
type output struct {
	Code string          `json:"code"`
	Map  json.RawMessage `json:"map"`
}

// Instrumenter implements ports.Instrumenter using os/exec.
type Instrumenter struct {
	logger ports.Logger
	now    func() time.Time
}

// NewInstrumenter creates a new Instrumenter that forwards the command's stderr to logger.
func NewInstrumenter(logger ports.Logger) *Instrumenter {
	return &Instrumenter{
		logger: logger,
		now:    time.Now,
	}
}

// Instrument runs cfg.Command for file and decodes its stdout.
//
// The environment is os.Environ() overridden by cfg.Environment. When cfg.Timeout is
// set the command is killed once it elapses.
func (i *Instrumenter) Instrument(
	ctx context.Context,
	cfg domain.InstrumenterConfig,
	file domain.FileID,
	hash string,
) (*domain.InstrumentedFile, error) {
	if len(cfg.Command) == 0 {
		return nil, domain.ErrInstrumenterNotConfigured
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	argv := expandCommand(cfg.Command, file.String())
	name := argv[0]
	cmdEnv := resolveEnvironment(os.Environ(), cfg.Environment)

	// Resolve the executable with the PATH the command will see.
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = cfg.Dir
	cmd.Env = cmdEnv

	var stdout bytes.Buffer
	stderr := &logWriter{logger: i.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	stderr.Flush()
	if runErr != nil {
		return nil, errors.Join(domain.ErrInstrumenterFailed, commandError(ctx, runErr, file))
	}

	var out output
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return nil, errors.Join(
			domain.ErrInstrumenterOutputInvalid,
			zerr.With(zerr.Wrap(err, "failed to decode instrumenter output"), "file", file.String()),
		)
	}

	sourceMap, err := rawMap(out.Map)
	if err != nil {
		return nil, errors.Join(domain.ErrInstrumenterOutputInvalid, zerr.With(err, "file", file.String()))
	}

	return &domain.InstrumentedFile{
		OriginalHash:   hash,
		Code:           out.Code,
		SourceMap:      sourceMap,
		InstrumentedAt: i.now().UTC(),
	}, nil
}

// expandCommand substitutes the file placeholder, or appends the path when no argument
// carries one.
func expandCommand(command []string, path string) []string {
	argv := make([]string, len(command), len(command)+1)
	substituted := false
	for i, arg := range command {
		if strings.Contains(arg, domain.FilePlaceholder) {
			arg = strings.ReplaceAll(arg, domain.FilePlaceholder, path)
			substituted = true
		}
		argv[i] = arg
	}
	if !substituted {
		argv = append(argv, path)
	}
	return argv
}

// rawMap accepts the map either as a JSON object or as a JSON string holding one.
func rawMap(raw json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, zerr.New("instrumenter output has no source map")
	}
	if trimmed[0] != '"' {
		return trimmed, nil
	}

	var encoded string
	if err := json.Unmarshal(trimmed, &encoded); err != nil {
		return nil, zerr.Wrap(err, "failed to decode embedded source map")
	}
	return []byte(encoded), nil
}

func commandError(ctx context.Context, err error, file domain.FileID) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return zerr.With(zerr.Wrap(ctx.Err(), "instrumenter timed out"), "file", file.String())
	}

	exitCode := -1 // Unknown or signal
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode), "file", file.String())
}

// logWriter forwards complete lines to the logger as warnings.
// A trailing partial line is held back until Flush.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		w.emit(string(w.buf[:idx]))
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return
	}
	w.logger.Warn(line)
}

// resolveEnvironment merges the command overrides over the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
