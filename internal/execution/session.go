package execution

import (
	"context"
	"fmt"
	"time"

	"noserun/internal/config"
	"noserun/internal/discovery"
	"noserun/internal/domain"
	"noserun/internal/host"
	"noserun/internal/logger"
	"noserun/internal/ui"
	"noserun/internal/virtualenv"
)

// Session runs the test nearest to the cursor of a view
type Session struct {
	config   *config.Config
	checker  *discovery.SourceChecker
	resolver *discovery.Resolver
	locator  *virtualenv.Locator
	builder  *Builder
	launcher Launcher
	now      func() time.Time
}

// NewSession creates a new Session
func NewSession(
	cfg *config.Config,
	checker *discovery.SourceChecker,
	resolver *discovery.Resolver,
	locator *virtualenv.Locator,
	builder *Builder,
	launcher Launcher,
) *Session {
	return &Session{
		config:   cfg,
		checker:  checker,
		resolver: resolver,
		locator:  locator,
		builder:  builder,
		launcher: launcher,
		now:      time.Now,
	}
}

// SetClock replaces the clock used for header timestamps
func (s *Session) SetClock(now func() time.Time) {
	s.now = now
}

// Prepare resolves the test under the cursor and the invocation running it.
// Nothing is written to any panel.
func (s *Session) Prepare(view host.View) (domain.Run, error) {
	path, err := s.checker.Check(view.FileName())
	if err != nil {
		return domain.Run{}, err
	}

	cursor := s.resolver.Resolve(view.Text(), view.Cursor())
	if cursor.Method == "" {
		return domain.Run{}, fmt.Errorf("%w above cursor in %s", domain.ErrNoTestFound, path)
	}
	if cursor.Class == "" {
		logger.Warn("No class found, running as module-level test", "method", cursor.Method)
	}

	test := domain.Test{Path: path, Class: cursor.Class, Method: cursor.Method}

	env, err := s.locator.Locate(test.Dir())
	if err != nil {
		return domain.Run{}, fmt.Errorf("locate environment: %w", err)
	}
	if !env.Found() {
		if s.config.RequireEnv {
			return domain.Run{}, fmt.Errorf("%w: no %s/%s above %s",
				domain.ErrNoEnvironment, s.config.BinDir, s.config.ActivateScript, test.Dir())
		}
		logger.Warn("No activation script found, using inherited environment", "dir", test.Dir())
	}

	return domain.Run{
		Method:     test.Method,
		Invocation: s.builder.Build(test, env),
	}, nil
}

// RunNearest prepares and executes the test under the cursor of view
func (s *Session) RunNearest(ctx context.Context, view host.View, window host.Window) (domain.Run, error) {
	run, err := s.Prepare(view)
	if err != nil {
		return run, err
	}
	return s.Execute(ctx, run, window)
}

// Execute writes the header to a fresh panel, shows it, runs the invocation
// and appends the captured output. The runner's exit status is recorded but
// never treated as an error.
func (s *Session) Execute(ctx context.Context, run domain.Run, window host.Window) (domain.Run, error) {
	run.StartedAt = s.now()
	run.Result = nil

	panel, err := window.CreateOutputPanel(s.config.PanelName)
	if err != nil {
		return run, fmt.Errorf("create panel: %w", err)
	}
	if err := panel.Append(ui.Header(run.Method, run.StartedAt, run.Invocation.String())); err != nil {
		return run, err
	}
	if err := window.ShowPanel(s.config.PanelName); err != nil {
		return run, fmt.Errorf("show panel: %w", err)
	}

	logger.Info("Running test", "method", run.Method, "dir", run.Invocation.Env.Dir)
	result, err := s.launcher.Launch(ctx, run.Invocation)
	if err != nil {
		_ = panel.Append(err.Error() + "\n")
		return run, err
	}

	if s.config.StripColors {
		result.Stdout = ui.StripColors(result.Stdout)
		result.Stderr = ui.StripColors(result.Stderr)
	}
	run.Result = &result

	if err := panel.Append(result.Output()); err != nil {
		return run, err
	}
	if recorder, ok := panel.(host.RunRecorder); ok {
		if err := recorder.RecordRun(run); err != nil {
			return run, err
		}
	}
	return run, nil
}
