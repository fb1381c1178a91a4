package commands

import (
	"fmt"

	"noserun/internal/config"
	"noserun/internal/discovery"
	"noserun/internal/domain"

	"github.com/spf13/cobra"
)

// EnabledCommand handles the enabled command
type EnabledCommand struct {
	config  *config.Config
	checker *discovery.SourceChecker
}

// NewEnabledCommand creates a new EnabledCommand
func NewEnabledCommand(cfg *config.Config, checker *discovery.SourceChecker) *EnabledCommand {
	return &EnabledCommand{
		config:  cfg,
		checker: checker,
	}
}

// Execute runs the command
func (ec *EnabledCommand) Execute(cmd *cobra.Command, args []string) error {
	enabled := ec.checker.IsSource(args[0])
	fmt.Fprintln(cmd.OutOrStdout(), enabled)
	if !enabled {
		return domain.ErrNotSourceFile
	}
	return nil
}
