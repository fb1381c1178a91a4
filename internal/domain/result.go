package domain

import "time"

// ExecutionResult holds the captured output of one subprocess run
type ExecutionResult struct {
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
}

// Output returns both streams in display order, stderr first.
// Most runners report results on stderr and print captured stdout after.
func (r ExecutionResult) Output() string {
	return r.Stderr + r.Stdout
}

// Passed reports whether the runner exited with status 0
func (r ExecutionResult) Passed() bool {
	return r.ExitCode == 0
}

// Run records one invocation of the nearest test
type Run struct {
	Method     string           `json:"method"`
	Invocation Invocation       `json:"invocation"`
	Result     *ExecutionResult `json:"result,omitempty"`
	StartedAt  time.Time        `json:"started_at"`
}

// Panel is the content of a named output panel
type Panel struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Run  *Run   `json:"run,omitempty"`
}
