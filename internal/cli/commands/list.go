package commands

import (
	"fmt"

	"osctest/internal/config"
	"osctest/internal/sequence"
	"osctest/internal/storage"
	"osctest/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	storage   storage.Storage
	filter    *sequence.Filter
	formatter *ui.Formatter
	logger    *zap.Logger
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	st storage.Storage,
	filter *sequence.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		storage:   st,
		filter:    filter,
		formatter: formatter,
		logger:    zap.NewNop(),
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases := sequence.Default()
	if lc.config.SequencePath != "" {
		loaded, err := lc.storage.Load(lc.config.SequencePath)
		if err != nil {
			return fmt.Errorf("failed to load sequence: %w", err)
		}
		cases = loaded
	}

	// Filter cases
	cases = lc.filter.FilterByAddress(cases, lc.config.Flags.NameFilter)

	if len(cases) == 0 {
		lc.formatter.NoMatches(lc.config.Flags.NameFilter)
		return nil
	}

	lc.formatter.PrintSequence(cases)

	if path := lc.config.Flags.ExportPath; path != "" {
		if err := lc.storage.Save(path, cases); err != nil {
			return fmt.Errorf("failed to export sequence: %w", err)
		}
		lc.logger.Debug("exported sequence", zap.String("path", path), zap.Int("cases", len(cases)))
		lc.formatter.Exported(len(cases), path)
	}
	return nil
}
