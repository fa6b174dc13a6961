package domain

import "time"

// TestCase represents a single OSC message to send and the pause after it
type TestCase struct {
	Name    string        // Human readable description shown to the operator
	Address string        // OSC address pattern, e.g. /bpm
	Args    []any         // OSC arguments in order, may be empty
	Delay   time.Duration // Pause after sending, before the next case
}

// HasArgs reports whether the case carries any OSC arguments
func (tc TestCase) HasArgs() bool {
	return len(tc.Args) > 0
}
