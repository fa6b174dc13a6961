package commands

import (
	"osctest/internal/cli"
	"osctest/internal/config"
	"osctest/internal/logging"
	"osctest/internal/sequence"
	"osctest/internal/storage"
	"osctest/internal/transport"
	"osctest/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Listen *ListenCommand

	logger *zap.Logger
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	parser := sequence.NewParser()
	filter := sequence.NewFilter()
	fileStorage := storage.NewFileStorage(parser)
	formatter := ui.NewFormatter()
	viewer := ui.NewLiveViewer()

	return &Commands{
		Run:    NewRunCommand(cfg, fileStorage, transport.NewOSCClient, formatter),
		List:   NewListCommand(cfg, fileStorage, filter, formatter),
		Listen: NewListenCommand(cfg, formatter, viewer),
		logger: zap.NewNop(),
	}
}

// SetLogger hands the diagnostic logger to every command
func (c *Commands) SetLogger(logger *zap.Logger) {
	c.logger = logger
	c.Run.logger = logger
	c.List.logger = logger
	c.Listen.logger = logger
}

// Register registers all commands with cobra. The root command itself performs a run.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Use = "osctest [host]"
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.RunE = c.Run.Execute

	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env", config.DefaultEnvFile, "Dotenv file to read OSCTEST_* settings from")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print debug logging to stderr")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		var host string
		if cmd.Name() == rootCmd.Name() || cmd.Name() == "run" {
			if len(args) > 0 {
				host = args[0]
			}
		}
		loaded, err := config.Load(flags.ToConfigFlags(host))
		if err != nil {
			return err
		}
		*cfg = *loaded

		logger, err := logging.New(flags.Verbose)
		if err != nil {
			return err
		}
		c.SetLogger(logger)
		logger.Debug("configuration loaded",
			zap.String("command", cmd.Name()),
			zap.String("target", cfg.Target()),
			zap.String("sequence", cfg.SequencePath))
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = c.logger.Sync()
	}

	addRunFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&flags.Sequence, "sequence", "s", "", "Send the cases from a JSON or YAML sequence file instead of the built-in sequence")
		cmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar on stderr")
	}
	addRunFlags(rootCmd)

	// Run command, same as the root command
	runCmd := &cobra.Command{
		Use:   "run [host]",
		Short: "Send the OSC test sequence",
		Long:  "Send the OSC test sequence to host (default localhost) on UDP port 57121",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Run.Execute,
	}
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the test sequence",
		Long:  "Print the messages a run would send, without sending them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Sequence, "sequence", "s", "", "List the cases from a JSON or YAML sequence file")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by address pattern (supports wildcards, e.g., '/param/*' or '*speed*')")
	listCmd.Flags().StringVarP(&flags.ExportPath, "export", "o", "", "Write the listed cases to a sequence file (.json, .yaml or .yml)")
	rootCmd.AddCommand(listCmd)

	// Listen command
	listenCmd := &cobra.Command{
		Use:   "listen",
		Short: "Print OSC messages received on a local port",
		Long:  "Receive OSC messages locally to check a run without the relay server",
		Args:  cobra.NoArgs,
		RunE:  c.Listen.Execute,
	}
	listenCmd.Flags().StringVarP(&flags.ListenAddr, "addr", "a", config.DefaultListenAddr, "UDP address to listen on")
	listenCmd.Flags().BoolVar(&flags.TUI, "tui", false, "Show received messages in an interactive view")
	rootCmd.AddCommand(listenCmd)
}
