package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noserun/internal/domain"
)

func TestStripColors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"colored word", "\x1b[31mFAIL\x1b[0m", "FAIL"},
		{"multiple params", "\x1b[1;32mok\x1b[0m done", "ok done"},
		{"erase line", "\x1b[2Kprogress", "progress"},
		{"plain text", "Ran 1 test in 0.001s\n\nOK\n", "Ran 1 test in 0.001s\n\nOK\n"},
		{"utf-8 kept", "✓ \x1b[32mpassé\x1b[0m", "✓ passé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripColors(tt.input))
		})
	}
}

func TestHeader(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 30, 5, 123456000, time.UTC)
	header := Header("test_x", at, "nosetests test_foo.py:FooTest.test_x")
	assert.Equal(t, "Running test_x at 2026-10-19 09:30:05.123456\nnosetests test_foo.py:FooTest.test_x\n", header)
}

func TestSummary(t *testing.T) {
	passed := domain.ExecutionResult{ExitCode: 0, Duration: 1500 * time.Millisecond}
	assert.Equal(t, "✓ exit status 0 in 1.50s", Summary(passed, false))

	failed := domain.ExecutionResult{ExitCode: 1, Duration: 250 * time.Millisecond}
	assert.Equal(t, "✗ exit status 1 in 0.25s", Summary(failed, false))
}

func TestFormatter_PrintPanel(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	t.Run("panel with run", func(t *testing.T) {
		var out bytes.Buffer
		panel := &domain.Panel{
			Name: "nosetest_panel",
			Text: "Running test_x at 2026-10-19 09:30:05.123456\nnosetests test_foo.py:FooTest.test_x\nOK",
			Run: &domain.Run{
				Method: "test_x",
				Result: &domain.ExecutionResult{ExitCode: 1, Duration: time.Second},
			},
		}

		require.NoError(t, NewFormatter(&out).PrintPanel(panel))
		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "OK", lines[2])
		assert.Equal(t, "✗ exit status 1 in 1.00s", lines[3])
	})

	t.Run("empty panel", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, NewFormatter(&out).PrintPanel(&domain.Panel{Name: "p"}))
		assert.Equal(t, "Panel p is empty\n", out.String())
	})
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	var out bytes.Buffer
	s := NewSpinner(&out)
	s.Stop()
	assert.Empty(t, out.String())
}

func TestSpinner_StartStop(t *testing.T) {
	var out bytes.Buffer
	s := NewSpinner(&out)
	s.Start("Running test_x")
	time.Sleep(150 * time.Millisecond)
	s.Stop()
	assert.NotPanics(t, s.Stop)
}
