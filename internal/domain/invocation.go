package domain

import "strings"

// Invocation is a fully resolved test run: an environment plus runner argv
type Invocation struct {
	Env    Environment `json:"env"`
	Runner string      `json:"runner"`
	Args   []string    `json:"args"`
}

// Argv returns the runner followed by its arguments
func (i Invocation) Argv() []string {
	return append([]string{i.Runner}, i.Args...)
}

// String renders the invocation as a shell command for display
func (i Invocation) String() string {
	cmd := strings.Join(i.Argv(), " ")
	if act := i.Env.ActivationCommand(); act != "" {
		return act + " && " + cmd
	}
	return cmd
}
