package virtualenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"noserun/internal/config"
	"noserun/internal/domain"
	"noserun/internal/logger"
)

// Locator finds the virtual environment a source directory belongs to
type Locator struct {
	config *config.Config
}

// NewLocator creates a Locator using the configured bin dir and script name
func NewLocator(cfg *config.Config) *Locator {
	return &Locator{config: cfg}
}

// Candidates returns start and its ancestors, nearest first.
// Ancestors are produced by dropping trailing path segments, so the
// filesystem root itself is never a candidate and relative paths stop at
// their first segment.
func Candidates(start string) []string {
	trimmed := strings.TrimRight(start, "/")
	if trimmed == "" {
		return nil
	}

	parts := strings.Split(trimmed, "/")
	candidates := make([]string, 0, len(parts))
	for i := len(parts); i > 0; i-- {
		path := strings.Join(parts[:i], "/")
		if path == "" {
			continue
		}
		candidates = append(candidates, path)
	}
	return candidates
}

// Locate walks up from start and returns the first environment whose bin
// directory holds the activation script. Without a match the returned
// environment has no activation script. Listing errors are returned as is.
func (l *Locator) Locate(start string) (domain.Environment, error) {
	env := domain.Environment{Dir: start}

	for _, candidate := range Candidates(start) {
		logger.Debug("Checking for environment", "dir", candidate)

		found, err := l.hasActivateScript(candidate)
		if err != nil {
			return env, err
		}
		if found {
			env.Root = candidate
			env.Activate = l.config.GetActivatePath(candidate)
			return env, nil
		}
	}

	return env, nil
}

func (l *Locator) hasActivateScript(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.Name() != l.config.BinDir {
			continue
		}
		binPath := filepath.Join(dir, entry.Name())
		// Stat follows symlinked bin directories
		info, err := os.Stat(binPath)
		if err != nil || !info.IsDir() {
			return false, nil
		}

		binEntries, err := os.ReadDir(binPath)
		if err != nil {
			return false, fmt.Errorf("list %s: %w", binPath, err)
		}
		for _, binEntry := range binEntries {
			if binEntry.Name() == l.config.ActivateScript {
				return true, nil
			}
		}
		return false, nil
	}

	return false, nil
}
