// Package linear provides a synchronous, line-oriented renderer for run results.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pinpoint/internal/core/domain"
	"go.trai.ch/pinpoint/internal/core/ports"
	"go.trai.ch/pinpoint/internal/ui/output"
	"go.trai.ch/pinpoint/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer for terminals and CI logs alike.
// Per-file progress goes to stderr; resolved positions go to stdout so they can be piped.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.New(stderr),
	}
}

// Report prints one line per file followed by a summary.
func (r *Renderer) Report(report domain.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range report.Outcomes {
		switch o.Status {
		case domain.StatusInstrumented:
			_, _ = fmt.Fprintf(r.stderr, "%s %s instrumented in %v\n",
				r.icon(style.Check, style.Green), o.File, o.Duration.Round(time.Millisecond))
		case domain.StatusCached:
			_, _ = fmt.Fprintf(r.stderr, "%s %s cached\n", r.icon(style.Tilde, style.Slate), o.File)
		case domain.StatusFailed:
			_, _ = fmt.Fprintf(r.stderr, "%s %s failed: %v\n", r.icon(style.Cross, style.Red), o.File, o.Err)
		}
	}

	summary := fmt.Sprintf("%d file(s): %d instrumented, %d cached, %d failed",
		len(report.Outcomes),
		report.Count(domain.StatusInstrumented),
		report.Count(domain.StatusCached),
		report.Count(domain.StatusFailed),
	)
	_, _ = fmt.Fprintln(r.stderr, r.output.String(summary).Bold().String())
}

// Position prints the original location of a generated one as "source:line:column",
// followed by the original name when the mapping records one.
func (r *Renderer) Position(file domain.FileID, line, column int, pos domain.OriginalPosition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := fmt.Sprintf("%s:%d:%d", pos.Source, pos.Line, pos.Column)
	if pos.Name != "" {
		result += " (" + pos.Name + ")"
	}
	_, _ = fmt.Fprintln(r.stdout, result)

	from := fmt.Sprintf("%s %s:%d:%d", style.Arrow, file, line, column)
	_, _ = fmt.Fprintln(r.stderr, r.output.String(from).Faint().String())
}

func (r *Renderer) icon(symbol string, color lipgloss.Color) string {
	return r.output.String(symbol).Foreground(termenv.RGBColor(string(color))).String()
}
