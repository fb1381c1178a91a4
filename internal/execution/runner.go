package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"noserun/internal/config"
	"noserun/internal/domain"
	"noserun/internal/logger"
)

const (
	// activateScript sources $1 and replaces the shell with the remaining args
	activateScript = `. "$1" && shift && exec "$@"`
	// plainScript replaces the shell with its args
	plainScript = `exec "$@"`
	// shellName is $0 inside the scripts
	shellName = "noserun"
)

// Runner executes an invocation through the configured shell
type Runner struct {
	config   *config.Config
	progress Progress
	state    stateHolder
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// SetProgress sets the indicator shown while the subprocess runs
func (r *Runner) SetProgress(progress Progress) {
	r.progress = progress
}

// State reports whether a subprocess is currently in flight
func (r *Runner) State() State {
	return r.state.get()
}

// Command returns the command that runs inv. The activation script and the
// runner argv are passed to the shell as positional parameters.
func (r *Runner) Command(ctx context.Context, inv domain.Invocation) (*exec.Cmd, error) {
	args := []string{"-c", plainScript, shellName}
	if inv.Env.Found() {
		args = []string{"-c", activateScript, shellName, inv.Env.Activate}
	}
	args = append(args, inv.Argv()...)

	cmd := exec.CommandContext(ctx, r.config.Shell, args...)
	cmd.Dir = inv.Env.Dir

	env, err := r.environ(inv.Env)
	if err != nil {
		return nil, err
	}
	cmd.Env = env
	return cmd, nil
}

// Launch runs inv to completion. A non-zero exit is reported through
// ExitCode, not as an error.
func (r *Runner) Launch(ctx context.Context, inv domain.Invocation) (domain.ExecutionResult, error) {
	cmd, err := r.Command(ctx, inv)
	if err != nil {
		return domain.ExecutionResult{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.state.set(Running)
	defer r.state.set(Idle)
	if r.progress != nil {
		r.progress.Start("Running " + strings.Join(inv.Args, " "))
		defer r.progress.Stop()
	}

	logger.Debug("Launching", "command", inv.String(), "dir", cmd.Dir)
	start := time.Now()
	err = cmd.Run()
	result := domain.ExecutionResult{
		Stdout:   strings.ToValidUTF8(stdout.String(), "�"),
		Stderr:   strings.ToValidUTF8(stderr.String(), "�"),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("run %s: %w", r.config.Shell, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	logger.Debug("Finished", "exit_code", result.ExitCode, "duration", result.Duration)
	return result, nil
}

// environ starts from the current environment and adds the configured env
// files. Relative files resolve against the environment root, or the
// working directory when no environment was found.
func (r *Runner) environ(env domain.Environment) ([]string, error) {
	environ := os.Environ()
	if len(r.config.EnvFiles) == 0 {
		return environ, nil
	}

	base := env.Dir
	if env.Found() {
		base = env.Root
	}
	files := make([]string, 0, len(r.config.EnvFiles))
	for _, file := range r.config.EnvFiles {
		if !filepath.IsAbs(file) {
			file = filepath.Join(base, file)
		}
		files = append(files, file)
	}

	vars, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("read env files: %w", err)
	}
	for key, value := range vars {
		environ = append(environ, fmt.Sprintf("%s=%s", key, value))
	}
	return environ, nil
}
