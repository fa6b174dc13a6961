package transport

import (
	"context"
	"net"
	"time"

	"osctest/internal/domain"

	"github.com/hypebeast/go-osc/osc"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxDatagram is the largest UDP payload we accept.
const maxDatagram = 65535

// Handler receives each OSC message in arrival order.
type Handler func(domain.ReceivedMessage)

// Listener receives OSC datagrams on a UDP socket.
type Listener struct {
	addr   string
	conn   net.PacketConn
	logger *zap.Logger
}

// NewListener creates a Listener for addr (host:port).
func NewListener(addr string, logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{addr: addr, logger: logger}
}

// Listen binds the UDP socket.
func (l *Listener) Listen() error {
	conn, err := net.ListenPacket("udp", l.addr)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", l.addr)
	}
	l.conn = conn
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (l *Listener) Addr() net.Addr {
	if l.conn == nil {
		return nil
	}
	return l.conn.LocalAddr()
}

// Serve reads datagrams until ctx is cancelled. Bundles are flattened into
// their messages. Undecodable datagrams are logged and skipped.
func (l *Listener) Serve(ctx context.Context, handle Handler) error {
	if l.conn == nil {
		if err := l.Listen(); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return l.conn.Close()
	})

	g.Go(func() error {
		buf := make([]byte, maxDatagram)
		for {
			n, from, err := l.conn.ReadFrom(buf)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return errors.Wrap(err, "reading datagram")
			}

			packet, err := osc.ParsePacket(string(buf[:n]))
			if err != nil {
				l.logger.Warn("dropping invalid OSC packet",
					zap.Stringer("from", from),
					zap.Int("bytes", n),
					zap.Error(err))
				continue
			}

			now := time.Now()
			for _, msg := range flatten(packet) {
				handle(domain.ReceivedMessage{
					From:    from,
					Address: msg.Address,
					Args:    msg.Arguments,
					At:      now,
				})
			}
		}
	})

	return g.Wait()
}

// flatten returns the messages of a packet, walking nested bundles in order.
func flatten(packet osc.Packet) []*osc.Message {
	switch p := packet.(type) {
	case *osc.Message:
		return []*osc.Message{p}
	case *osc.Bundle:
		msgs := append([]*osc.Message(nil), p.Messages...)
		for _, b := range p.Bundles {
			msgs = append(msgs, flatten(b)...)
		}
		return msgs
	default:
		return nil
	}
}
