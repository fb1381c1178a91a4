package commands

import (
	"noserun/internal/config"
	"noserun/internal/domain"
	"noserun/internal/execution"
	"noserun/internal/host"
	"noserun/internal/storage"
	"noserun/internal/ui"

	"github.com/spf13/cobra"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config  *config.Config
	session *execution.Session
	storage storage.Storage
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, session *execution.Session, st storage.Storage) *ShowCommand {
	return &ShowCommand{
		config:  cfg,
		session: session,
		storage: st,
	}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	panel, err := sc.storage.Load(sc.config.PanelName)
	if err != nil {
		return err
	}

	if !sc.config.Flags.Interactive {
		return ui.NewFormatter(cmd.OutOrStdout()).PrintPanel(panel)
	}

	ctx := cmd.Context()
	viewer := ui.NewPanelViewer(func(run domain.Run) (*domain.Panel, error) {
		// The viewer owns the terminal, so the rerun writes only to storage
		window := host.NewStoredWindow(sc.storage, nil)
		if _, err := sc.session.Execute(ctx, run, window); err != nil {
			return nil, err
		}
		return sc.storage.Load(sc.config.PanelName)
	})
	return viewer.View(panel)
}
