package ui

import (
	"context"
	"fmt"

	"osctest/internal/domain"
	"osctest/internal/sequence"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Viewer displays received OSC messages
type Viewer interface {
	View(ctx context.Context, title string, messages <-chan domain.ReceivedMessage) error
}

// LiveViewer shows received messages in a scrolling terminal view until the
// operator quits with q or Esc, or ctx is cancelled.
type LiveViewer struct{}

// NewLiveViewer creates a new LiveViewer
func NewLiveViewer() *LiveViewer {
	return &LiveViewer{}
}

// View runs the TUI. It blocks until the view is closed.
func (lv *LiveViewer) View(ctx context.Context, title string, messages <-chan domain.ReceivedMessage) error {
	app := tview.NewApplication()

	log := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	log.SetBorder(true).
		SetTitle(" " + tview.Escape(title) + " ").
		SetTitleAlign(tview.AlignLeft)

	status := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[gray]messages: 0   [white]q[gray]/[white]Esc[gray] quit")

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(log, 0, 1, false).
		AddItem(status, 1, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	done := make(chan struct{})
	defer close(done)

	go func() {
		count := 0
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				app.Stop()
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				count++
				line := formatMessageLine(msg)
				n := count
				app.QueueUpdateDraw(func() {
					fmt.Fprintln(log, line)
					log.ScrollToEnd()
					status.SetText(fmt.Sprintf("[gray]messages: %d   [white]q[gray]/[white]Esc[gray] quit", n))
				})
			}
		}
	}()

	return app.SetRoot(layout, true).Run()
}

// formatMessageLine renders a message with tview color tags
func formatMessageLine(msg domain.ReceivedMessage) string {
	return fmt.Sprintf("[gray]%s %s [yellow]%s [white]%s",
		msg.At.Format("15:04:05.000"),
		tview.Escape(fmt.Sprint(msg.From)),
		tview.Escape(msg.Address),
		tview.Escape(sequence.FormatArgs(msg.Args)))
}
