package ui

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Spinner shows an indeterminate indicator while a test runs
type Spinner struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewSpinner creates a spinner writing to w
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{writer: w}
}

// StderrIsTerminal reports whether a spinner on stderr would be visible
func StderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Start renders the spinner until Stop is called
func (s *Spinner) Start(description string) {
	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(s.writer),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
	s.done = make(chan struct{})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = s.bar.Add(1)
			}
		}
	}()
}

// Stop halts and clears the spinner
func (s *Spinner) Stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	s.wg.Wait()
	_ = s.bar.Finish()
	s.bar = nil
}
