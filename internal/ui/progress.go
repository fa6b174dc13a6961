package ui

import (
	"fmt"
	"os"
	"time"

	"osctest/internal/domain"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how far through the sequence a run is
type ProgressBar struct {
	bar          *progressbar.ProgressBar
	sent, failed int
}

// NewProgressBar creates a new progress bar on stderr
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(sent, failed int) string {
	return color.CyanString("Sending: ") +
		color.GreenString("[sent: %d", sent) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// Start is a no-op; the bar is sized when created
func (p *ProgressBar) Start(target string, total int, settle time.Duration) {}

// Sending is a no-op; the bar advances on results
func (p *ProgressBar) Sending(index, total int, tc domain.TestCase) {}

// Result advances the bar
func (p *ProgressBar) Result(result domain.SendResult) {
	if result.Sent() {
		p.sent++
	} else {
		p.failed++
	}
	p.Update(p.sent, p.failed)
}

// Update updates the progress bar with sent and failure counts
func (p *ProgressBar) Update(sentCount, failCount int) {
	_ = p.bar.Set(sentCount + failCount)
	p.bar.Describe(describe(sentCount, failCount))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish(total int) {
	_ = p.bar.Finish()
}
