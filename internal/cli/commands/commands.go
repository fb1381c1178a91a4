package commands

import (
	"fmt"

	"noserun/internal/cli"
	"noserun/internal/config"
	"noserun/internal/discovery"
	"noserun/internal/execution"
	"noserun/internal/logger"
	"noserun/internal/storage"
	"noserun/internal/virtualenv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	Show    *ShowCommand
	Enabled *EnabledCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	checker := discovery.NewSourceChecker(cfg)
	resolver := discovery.NewResolver()
	locator := virtualenv.NewLocator(cfg)
	builder := execution.NewBuilder(cfg)
	runner := execution.NewRunner(cfg)
	session := execution.NewSession(cfg, checker, resolver, locator, builder, runner)
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Commands{
		Run:     NewRunCommand(cfg, session, runner, jsonStorage),
		Show:    NewShowCommand(cfg, session, jsonStorage),
		Enabled: NewEnabledCommand(cfg, checker),
	}
}

// Register registers all commands with cobra. Settings shared by every
// command are persistent root flags bound to v, so they layer over the
// config file and NOSERUN_* variables.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, v *viper.Viper) error {
	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyRunner, config.DefaultRunner, "Test runner to invoke")
	pf.String(config.KeyShell, config.DefaultShell, "Shell used to source the activation script")
	pf.String(config.KeyBinDir, config.DefaultBinDir, "Environment directory holding the activation script")
	pf.String(config.KeyActivateScript, config.DefaultActivateScript, "Activation script name")
	pf.Bool(config.KeyRequireEnv, false, "Abort when no virtual environment is found")
	pf.StringSlice(config.KeyEnvFiles, nil, "Env file(s) loaded into the test process (relative to the environment root)")
	pf.String(config.KeySourceExt, config.DefaultSourceExt, "Extension of runnable source files")
	pf.String(config.KeyPanelName, config.DefaultPanelName, "Output panel name")
	pf.String(config.KeyStorageDir, config.DefaultStorageDir(), "Directory output panels are stored in")
	pf.Bool(config.KeyStripColors, config.DefaultStripColors, "Strip ANSI colour codes from captured output")
	pf.String(config.KeyLogLevel, config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	pf.String(config.KeyLogFile, "", "Write logs to file instead of stderr")

	for _, key := range []string{
		config.KeyRunner, config.KeyShell, config.KeyBinDir, config.KeyActivateScript,
		config.KeyRequireEnv, config.KeyEnvFiles, config.KeySourceExt, config.KeyPanelName,
		config.KeyStorageDir, config.KeyStripColors, config.KeyLogLevel, config.KeyLogFile,
	} {
		if err := v.BindPFlag(key, pf.Lookup(key)); err != nil {
			return fmt.Errorf("bind %s flag: %w", key, err)
		}
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(v)
		if err != nil {
			return err
		}
		loaded.Flags = cfg.Flags
		*cfg = *loaded
		return logger.Configure(cfg.LogLevel, cfg.LogFile)
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run the test nearest to the cursor",
		Long:  "Find the test method at or above the cursor, activate the project's virtual environment and run it, writing the output to the results panel",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			if len(args) == 1 && flags.File == "" {
				flags.File = args[0]
			}
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
		SilenceUsage: true,
	}
	runCmd.Flags().StringVarP(&flags.File, "file", "F", "", "Absolute path of the active file")
	runCmd.Flags().IntVarP(&flags.Offset, "offset", "o", -1, "Cursor offset in bytes from the start of the buffer")
	runCmd.Flags().IntVarP(&flags.Line, "line", "l", 0, "Cursor line (1-based), used when --offset is not set")
	runCmd.Flags().BoolVar(&flags.Stdin, "stdin", false, "Read the buffer text from stdin instead of the file")
	runCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Do not show the running indicator")
	rootCmd.AddCommand(runCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the results panel",
		Long:  "Display the output of the last run from the results panel",
		Args:  cobra.NoArgs,
		RunE:  c.Show.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
		SilenceUsage: true,
	}
	showCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Open the panel in an interactive viewer with rerun")
	rootCmd.AddCommand(showCmd)

	// Enabled command
	enabledCmd := &cobra.Command{
		Use:   "enabled <file>",
		Short: "Report whether run applies to a file",
		Long:  "Print true and exit 0 when the file is a Python source file, print false and exit 1 otherwise",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Enabled.Execute,
	}
	enabledCmd.SilenceUsage = true
	enabledCmd.SilenceErrors = true
	rootCmd.AddCommand(enabledCmd)

	return nil
}

// NewRootCommand builds the root command with every subcommand registered
func NewRootCommand(version string) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:     "noserun",
		Short:   "Run the Python test under the cursor",
		Long:    `Editor helper that runs the single Python unit test nearest to the cursor inside the project's virtual environment and keeps its output in a results panel.`,
		Version: version,
	}
	// main reports the returned error
	rootCmd.SilenceErrors = true

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := NewCommands(cfg)
	if err := cmds.Register(rootCmd, &flags, cfg, config.NewViper()); err != nil {
		return nil, err
	}
	return rootCmd, nil
}
