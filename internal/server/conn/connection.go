// Package conn drives a single client connection through the protocol state
// machine. Reads are strictly sequential per connection: the stream cursor
// is shared state, so no two decodes ever overlap.
package conn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"voxelwire/internal/server/config"
	mcnet "voxelwire/internal/server/net"
	"voxelwire/pkg/gamedata"
)

// State represents the connection state.
type State int

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
)

// Connection manages a single client connection.
type Connection struct {
	conn     net.Conn
	cfg      *config.Config
	log      *slog.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	registry *gamedata.Registry

	state State

	// Set once login negotiates a threshold; all frames afterward use the
	// compressed format.
	compression int
}

// NewConnection creates a new Connection from a raw TCP connection.
func NewConnection(ctx context.Context, conn net.Conn, cfg *config.Config, log *slog.Logger, reg *gamedata.Registry) *Connection {
	ctx, cancel := context.WithCancel(ctx)
	return &Connection{
		conn:        conn,
		cfg:         cfg,
		log:         log.With("addr", conn.RemoteAddr().String()),
		ctx:         ctx,
		cancel:      cancel,
		registry:    reg,
		state:       StateHandshake,
		compression: -1,
	}
}

// Handle runs the connection lifecycle: it reads frames and dispatches them
// to the handler for the current state until the connection closes.
func (c *Connection) Handle() {
	defer func() {
		c.cancel()
		c.conn.Close()
		c.log.Info("connection closed")
	}()

	c.log.Info("connection accepted")

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		if err := c.handleNextPacket(); err != nil {
			if c.ctx.Err() != nil {
				return
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return
			}
			c.log.Error("handling packet", "state", c.state, "error", err)
			return
		}
	}
}

func (c *Connection) handleNextPacket() error {
	packetID, data, err := c.readRaw()
	if err != nil {
		return err
	}

	switch c.state {
	case StateHandshake:
		return c.handleHandshake(packetID, data)
	case StateStatus:
		return c.handleStatus(packetID, data)
	case StateLogin:
		return c.handleLogin(packetID, data)
	default:
		return fmt.Errorf("unknown state: %d", c.state)
	}
}

func (c *Connection) readRaw() (int32, []byte, error) {
	if c.compression >= 0 {
		return mcnet.ReadCompressedRawPacket(c.conn)
	}
	return mcnet.ReadRawPacket(c.conn)
}

// writePacket writes a packet using whichever frame format is active.
func (c *Connection) writePacket(p mcnet.Packet) error {
	if c.compression < 0 {
		return mcnet.WritePacket(c.conn, p)
	}

	var data []byte
	var err error
	if m, ok := p.(mcnet.Marshaler); ok {
		data, err = m.MarshalPacket()
	} else {
		data, err = mcnet.Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("marshal packet 0x%02X: %w", p.PacketID(), err)
	}
	return mcnet.WriteCompressedRawPacket(c.conn, c.compression, p.PacketID(), data)
}
