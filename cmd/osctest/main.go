package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"osctest/internal/cli"
	"osctest/internal/cli/commands"
	"osctest/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Short: "Send a test sequence of OSC messages",
		Long: `Send a fixed sequence of OSC messages over UDP to a relay server on port 57121,
pausing between messages so you can watch the visualization react.

Stop early with Ctrl+C.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Ctrl+C cancels the run; the run command treats that as a clean stop
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
