package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripColors removes ANSI escape sequences from text, along with any
// stray escape bytes left by truncated sequences.
func StripColors(text string) string {
	return strings.ReplaceAll(ansi.Strip(text), "\x1b", "")
}
