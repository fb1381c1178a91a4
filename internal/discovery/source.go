package discovery

import (
	"fmt"
	"path/filepath"
	"strings"

	"noserun/internal/config"
	"noserun/internal/domain"
)

// SourceChecker decides whether a file can hold runnable tests
type SourceChecker struct {
	config *config.Config
}

// NewSourceChecker creates a SourceChecker for the configured extension
func NewSourceChecker(cfg *config.Config) *SourceChecker {
	return &SourceChecker{config: cfg}
}

// IsSource reports whether path ends in the source extension
func (s *SourceChecker) IsSource(path string) bool {
	return path != "" && strings.HasSuffix(path, s.config.SourceExt)
}

// Check returns the cleaned absolute path, or an error for non-source files
func (s *SourceChecker) Check(path string) (string, error) {
	if !s.IsSource(path) {
		return "", fmt.Errorf("%w: ignoring %q", domain.ErrNotSourceFile, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}
