package execution

import (
	"noserun/internal/config"
	"noserun/internal/domain"
)

// Builder assembles the runner invocation for a test
type Builder struct {
	config *config.Config
}

// NewBuilder creates a Builder for the configured test runner
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{config: cfg}
}

// Build returns the invocation running test inside env.
// The working directory is always the test file's directory so the
// relative target resolves.
func (b *Builder) Build(test domain.Test, env domain.Environment) domain.Invocation {
	env.Dir = test.Dir()
	return domain.Invocation{
		Env:    env,
		Runner: b.config.Runner,
		Args:   []string{test.Target()},
	}
}
