package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultRunner is the test runner invoked for the resolved target
	DefaultRunner = "nosetests"
	// DefaultBinDir is the environment subdirectory holding the activation script
	DefaultBinDir = "bin"
	// DefaultActivateScript is the activation script name inside DefaultBinDir
	DefaultActivateScript = "activate"
	// DefaultSourceExt is the extension a file must carry to be runnable
	DefaultSourceExt = ".py"
	// DefaultPanelName is the name of the output panel results are written to
	DefaultPanelName = "nosetest_panel"
	// DefaultShell interprets the activation step
	DefaultShell = "/bin/bash"
	// DefaultStripColors controls ANSI stripping of captured output
	DefaultStripColors = true
	// DefaultLogLevel is used when neither flag nor environment sets one
	DefaultLogLevel = "info"
)

// DefaultStorageDir returns the directory panels are persisted in.
// $XDG_STATE_HOME/noserun is preferred, then ~/.local/state/noserun.
func DefaultStorageDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "noserun")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "noserun")
	}
	return filepath.Join(home, ".local", "state", "noserun")
}
