package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"osctest/internal/domain"
	"osctest/internal/sequence"

	"github.com/fatih/color"
)

// Checklist is what the operator should verify on the receiving side after a run
var Checklist = []string{
	"URL should show updated params",
	"Console should show OSC messages received",
	"Visual should reflect parameter changes",
}

// Formatter formats and displays output
type Formatter struct {
	out io.Writer

	header  *color.Color
	ok      *color.Color
	fail    *color.Color
	address *color.Color
	muted   *color.Color
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return NewFormatterTo(os.Stdout)
}

// NewFormatterTo creates a new Formatter writing to out
func NewFormatterTo(out io.Writer) *Formatter {
	return &Formatter{
		out:     out,
		header:  color.New(color.FgCyan, color.Bold),
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		address: color.New(color.FgYellow),
		muted:   color.New(color.FgHiBlack),
	}
}

// Start prints the banner and the settle notice
func (f *Formatter) Start(target string, total int, settle time.Duration) {
	title := "OSC Dankstore Integration Test"
	fmt.Fprintln(f.out)
	f.header.Fprintln(f.out, title)
	f.header.Fprintln(f.out, strings.Repeat("=", len(title)))
	fmt.Fprintf(f.out, "Target: %s\n\n", target)
	fmt.Fprintf(f.out, "Starting test sequence in %s...\n\n", humanDuration(settle))
}

// Sending prints the case header and what is about to be sent
func (f *Formatter) Sending(index, total int, tc domain.TestCase) {
	fmt.Fprintf(f.out, "[%d/%d] %s\n", index, total, tc.Name)
	fmt.Fprintf(f.out, "  → Sending: %s %s\n", f.address.Sprint(tc.Address), sequence.FormatArgs(tc.Args))
}

// Result prints the outcome of a single send
func (f *Formatter) Result(result domain.SendResult) {
	if result.Sent() {
		f.ok.Fprintln(f.out, "  ✓ Sent")
		return
	}
	f.fail.Fprintf(f.out, "  ✗ Error: %v\n", result.Err)
}

// Finish prints the closing summary and the operator checklist
func (f *Formatter) Finish(total int) {
	fmt.Fprintln(f.out)
	f.ok.Fprintf(f.out, "✓ All %d tests sent\n", total)
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "Check your browser:")
	for i, item := range Checklist {
		fmt.Fprintf(f.out, "  %d. %s\n", i+1, item)
	}
	fmt.Fprintln(f.out)
}

// Interrupted prints the notice shown when the operator stops a run
func (f *Formatter) Interrupted() {
	fmt.Fprint(f.out, "\n\n")
	f.muted.Fprintln(f.out, "Test interrupted")
}

// PrintSequence prints the cases of a sequence without sending them
func (f *Formatter) PrintSequence(cases []domain.TestCase) {
	f.ok.Fprintf(f.out, "Sequence of %d message(s):\n\n", len(cases))

	for i, tc := range cases {
		branch := "├──"
		if i == len(cases)-1 {
			branch = "└──"
		}
		fmt.Fprintf(f.out, "%s %s %s %s\n",
			branch,
			f.address.Sprint(tc.Address),
			sequence.FormatArgs(tc.Args),
			f.muted.Sprintf("%s, then wait %s", tc.Name, tc.Delay))
	}
}

// NoMatches prints the notice shown when a filter leaves nothing to list
func (f *Formatter) NoMatches(pattern string) {
	f.address.Fprintf(f.out, "No messages match %q\n", pattern)
}

// Exported confirms a sequence file was written
func (f *Formatter) Exported(count int, path string) {
	fmt.Fprintln(f.out)
	f.ok.Fprintf(f.out, "✓ Exported %d message(s) to %s\n", count, path)
}

// Listening prints where the listener is bound
func (f *Formatter) Listening(addr string) {
	f.header.Fprintf(f.out, "Listening for OSC messages on %s (UDP)\n", addr)
	f.muted.Fprintln(f.out, "Press Ctrl+C to stop")
	fmt.Fprintln(f.out)
}

// PrintReceived prints a message observed by the listener
func (f *Formatter) PrintReceived(msg domain.ReceivedMessage) {
	fmt.Fprintf(f.out, "%s %s %s %s\n",
		f.muted.Sprint(msg.At.Format("15:04:05.000")),
		f.muted.Sprintf("%v", msg.From),
		f.address.Sprint(msg.Address),
		sequence.FormatArgs(msg.Args))
}

// humanDuration renders 1s as "1 second" and anything else with time.Duration formatting
func humanDuration(d time.Duration) string {
	switch {
	case d == time.Second:
		return "1 second"
	case d > 0 && d%time.Second == 0:
		return fmt.Sprintf("%d seconds", d/time.Second)
	default:
		return d.String()
	}
}
