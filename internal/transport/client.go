package transport

import (
	"net"
	"strconv"
	"strings"

	"github.com/hypebeast/go-osc/osc"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sender sends OSC messages to a single target.
type Sender interface {
	Send(address string, args []any) error
	Target() string
}

// SenderFactory builds the Sender for a host and port.
type SenderFactory func(host string, port int, logger *zap.Logger) Sender

// OSCClient sends OSC messages over UDP. It holds no socket between sends,
// so there is nothing to release when a run stops.
type OSCClient struct {
	client *osc.Client
	target string
	logger *zap.Logger
}

// NewOSCClient creates an OSC client bound to host:port.
func NewOSCClient(host string, port int, logger *zap.Logger) Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OSCClient{
		client: osc.NewClient(dialHost(host), port),
		target: net.JoinHostPort(host, strconv.Itoa(port)),
		logger: logger,
	}
}

// dialHost brackets IPv6 literals; the OSC client joins host and port with a plain colon.
func dialHost(host string) string {
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		return "[" + host + "]"
	}
	return host
}

// Send sends one message. An empty args list produces a message with no arguments.
func (c *OSCClient) Send(address string, args []any) error {
	msg := osc.NewMessage(address, args...)

	c.logger.Debug("sending OSC message",
		zap.String("target", c.Target()),
		zap.String("address", address),
		zap.Int("args", len(args)))

	if err := c.client.Send(msg); err != nil {
		return errors.Wrapf(err, "sending %s to %s", address, c.Target())
	}
	return nil
}

// Target returns host:port of the receiving server.
func (c *OSCClient) Target() string {
	return c.target
}
