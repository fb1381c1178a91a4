package domain

// Environment describes where and how the test runner is launched
type Environment struct {
	Dir      string `json:"dir"`                // Working directory of the subprocess
	Root     string `json:"root,omitempty"`     // Directory the environment was found in
	Activate string `json:"activate,omitempty"` // Activation script, empty when none was found
}

// Found reports whether an activation script was located
func (e Environment) Found() bool {
	return e.Activate != ""
}

// ActivationCommand returns the shell command that sources the environment,
// or an empty string when no environment was found.
func (e Environment) ActivationCommand() string {
	if !e.Found() {
		return ""
	}
	return "source " + e.Activate
}
