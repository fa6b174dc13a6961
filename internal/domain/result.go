package domain

import (
	"net"
	"time"
)

// SendResult describes one attempted transmission
type SendResult struct {
	Index int      // 1-based position in the sequence
	Total int      // Number of cases in the sequence
	Case  TestCase // The case that was sent
	Err   error    // Transmission error, nil when the datagram left the socket
}

// Sent reports whether the datagram was handed to the network
func (r SendResult) Sent() bool {
	return r.Err == nil
}

// ReceivedMessage is an OSC message observed by the local listener
type ReceivedMessage struct {
	From    net.Addr
	Address string
	Args    []any
	At      time.Time
}
