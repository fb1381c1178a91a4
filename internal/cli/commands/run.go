package commands

import (
	"errors"
	"fmt"
	"io"

	"noserun/internal/config"
	"noserun/internal/discovery"
	"noserun/internal/execution"
	"noserun/internal/host"
	"noserun/internal/storage"
	"noserun/internal/ui"

	"github.com/spf13/cobra"
)

// ErrNoCursor is returned when neither --offset nor --line was given
var ErrNoCursor = errors.New("cursor position required: pass --offset or --line")

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	session *execution.Session
	runner  *execution.Runner
	storage storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	session *execution.Session,
	runner *execution.Runner,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:  cfg,
		session: session,
		runner:  runner,
		storage: st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags
	if flags.File == "" {
		return fmt.Errorf("no file given")
	}

	var in io.Reader
	if flags.Stdin {
		in = cmd.InOrStdin()
	}
	view, err := host.ReadBuffer(flags.File, in)
	if err != nil {
		return err
	}

	switch {
	case flags.Offset >= 0:
		view.SetCursor(flags.Offset)
	case flags.Line > 0:
		view.SetCursor(discovery.OffsetForLine(view.Text(), flags.Line))
	default:
		return ErrNoCursor
	}

	if !flags.Quiet && ui.StderrIsTerminal() {
		rc.runner.SetProgress(ui.NewSpinner(cmd.ErrOrStderr()))
	}

	window := host.NewStoredWindow(rc.storage, cmd.OutOrStdout())
	run, err := rc.session.RunNearest(cmd.Context(), view, window)
	if err != nil {
		return err
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintSummary(*run.Result)
	return nil
}
