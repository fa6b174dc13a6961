package commands

import (
	"context"

	"osctest/internal/config"
	"osctest/internal/domain"
	"osctest/internal/transport"
	"osctest/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ListenCommand handles the listen command
type ListenCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	viewer    ui.Viewer
	logger    *zap.Logger
}

// NewListenCommand creates a new ListenCommand
func NewListenCommand(cfg *config.Config, formatter *ui.Formatter, viewer ui.Viewer) *ListenCommand {
	return &ListenCommand{
		config:    cfg,
		formatter: formatter,
		viewer:    viewer,
		logger:    zap.NewNop(),
	}
}

// Execute runs the command until interrupted
func (lc *ListenCommand) Execute(cmd *cobra.Command, args []string) error {
	listener := transport.NewListener(lc.config.ListenAddr, lc.logger)
	if err := listener.Listen(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !lc.config.Flags.TUI {
		lc.formatter.Listening(listener.Addr().String())
		return listener.Serve(ctx, lc.formatter.PrintReceived)
	}
	return lc.view(ctx, listener)
}

// view feeds received messages into the interactive viewer. Closing the
// viewer stops the listener and vice versa.
func (lc *ListenCommand) view(ctx context.Context, listener *transport.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages := make(chan domain.ReceivedMessage, 64)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return listener.Serve(gctx, func(msg domain.ReceivedMessage) {
			select {
			case messages <- msg:
			case <-gctx.Done():
			}
		})
	})
	g.Go(func() error {
		defer cancel()
		return lc.viewer.View(gctx, "OSC messages on "+listener.Addr().String(), messages)
	})

	return g.Wait()
}
