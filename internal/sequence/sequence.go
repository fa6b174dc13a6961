package sequence

import (
	"time"

	"osctest/internal/domain"
)

// DefaultDelay is the pause after each built-in case
const DefaultDelay = time.Second

// Default returns the built-in test sequence. The order narrates the demo:
// dedicated parameter addresses first, then the generic /param form, then
// the song start trigger. Each call returns a fresh copy.
func Default() []domain.TestCase {
	return []domain.TestCase{
		{Name: "Set BPM to 128", Address: "/bpm", Args: []any{int32(128)}, Delay: DefaultDelay},
		{Name: "Set speed to 2.5", Address: "/speed", Args: []any{float32(2.5)}, Delay: DefaultDelay},
		{Name: "Set xLim to 10", Address: "/xLim", Args: []any{int32(10)}, Delay: DefaultDelay},
		{Name: "Set yLim to 15", Address: "/yLim", Args: []any{int32(15)}, Delay: DefaultDelay},
		{Name: "Set depth to 30", Address: "/depth", Args: []any{int32(30)}, Delay: DefaultDelay},
		{Name: "Generic param: Set BPM to 140", Address: "/param/bpm", Args: []any{int32(140)}, Delay: DefaultDelay},
		{Name: "Generic param: Set speed to 1.0", Address: "/param/speed", Args: []any{float32(1.0)}, Delay: DefaultDelay},
		{Name: "Trigger song start", Address: "/songStart", Args: []any{}, Delay: DefaultDelay},
	}
}
