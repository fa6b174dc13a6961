package commands

import (
	"context"
	"errors"
	"fmt"

	"osctest/internal/config"
	"osctest/internal/domain"
	"osctest/internal/execution"
	"osctest/internal/sequence"
	"osctest/internal/storage"
	"osctest/internal/transport"
	"osctest/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	storage   storage.Storage
	newSender transport.SenderFactory
	formatter *ui.Formatter
	sleep     execution.SleepFunc
	logger    *zap.Logger
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	st storage.Storage,
	newSender transport.SenderFactory,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		storage:   st,
		newSender: newSender,
		formatter: formatter,
		logger:    zap.NewNop(),
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := rc.loadCases()
	if err != nil {
		return err
	}

	sender := rc.newSender(rc.config.Host, rc.config.Port, rc.logger)

	runner := execution.NewRunner(rc.config, sender, rc.logger)
	if rc.sleep != nil {
		runner.SetSleep(rc.sleep)
	}
	runner.AddReporter(rc.formatter)
	if rc.config.Flags.Progress {
		runner.AddReporter(ui.NewProgressBar(len(cases)))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = runner.Run(ctx, cases)
	if errors.Is(err, context.Canceled) {
		rc.formatter.Interrupted()
		return nil
	}
	return err
}

// loadCases returns the sequence file's cases, or the built-in sequence
func (rc *RunCommand) loadCases() ([]domain.TestCase, error) {
	if rc.config.SequencePath == "" {
		return sequence.Default(), nil
	}

	cases, err := rc.storage.Load(rc.config.SequencePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sequence: %w", err)
	}
	rc.logger.Debug("loaded sequence file",
		zap.String("path", rc.config.SequencePath),
		zap.Int("cases", len(cases)))
	return cases, nil
}
