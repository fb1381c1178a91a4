package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"noserun/internal/domain"
)

// HeaderTimeFormat is the timestamp layout of the panel header
const HeaderTimeFormat = "2006-01-02 15:04:05.000000"

// Header returns the panel header for a run of method at t
func Header(method string, t time.Time, command string) string {
	return fmt.Sprintf("Running %s at %s\n%s\n", method, t.Format(HeaderTimeFormat), command)
}

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintPanel writes a stored panel with its header highlighted and a
// summary line for the run, if one was recorded.
func (f *Formatter) PrintPanel(panel *domain.Panel) error {
	if panel.Text == "" {
		color.New(color.FgYellow).Fprintf(f.out, "Panel %s is empty\n", panel.Name)
		return nil
	}

	lines := strings.SplitAfter(panel.Text, "\n")
	for i, line := range lines {
		switch {
		case i == 0 && strings.HasPrefix(line, "Running "):
			color.New(color.FgCyan, color.Bold).Fprint(f.out, line)
		case i == 1 && panel.Run != nil:
			color.New(color.Faint).Fprint(f.out, line)
		default:
			fmt.Fprint(f.out, line)
		}
	}
	if !strings.HasSuffix(panel.Text, "\n") {
		fmt.Fprintln(f.out)
	}

	if panel.Run != nil && panel.Run.Result != nil {
		f.PrintSummary(*panel.Run.Result)
	}
	return nil
}

// PrintSummary writes the exit status line of a run
func (f *Formatter) PrintSummary(result domain.ExecutionResult) {
	fmt.Fprintln(f.out, Summary(result, true))
}

// Summary returns a one-line description of the exit status
func Summary(result domain.ExecutionResult, colored bool) string {
	duration := fmt.Sprintf("%.2fs", result.Duration.Seconds())
	if result.Passed() {
		text := fmt.Sprintf("✓ exit status 0 in %s", duration)
		if colored {
			return color.GreenString(text)
		}
		return text
	}
	text := fmt.Sprintf("✗ exit status %d in %s", result.ExitCode, duration)
	if colored {
		return color.RedString(text)
	}
	return text
}
