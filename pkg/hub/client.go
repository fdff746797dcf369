package hub

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/SkyPlay-Code/centipede/internal/log"
	"github.com/SkyPlay-Code/centipede/pkg/protocol"
)

const (
	// writeWait is how long to wait for a write to complete
	// before giving up on the connection.
	writeWait = 10 * time.Second

	// pongWait is how long to wait for a pong reply before
	// considering the connection dead.
	pongWait = 60 * time.Second

	// pingPeriod is how often to ping the client. Must be less
	// than pongWait so the pong has time to arrive.
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds inbound control messages. Clients only
	// send pointer updates and small commands, so this is generous.
	maxMessageSize = 4096

	// sendBufferSize is the per-client outbound queue. At 60 pose
	// frames per second this is roughly two seconds of slack.
	sendBufferSize = 128
)

// Client is a single websocket viewer attached to the hub. Outbound
// frames flow through the send channel; inbound control messages are
// parsed in readPump and dispatched to the hub's callbacks.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan Message
}

// NewClient wraps an upgraded websocket connection and registers it
// with the hub.
func NewClient(h *Hub, conn *websocket.Conn) *Client {
	c := &Client{
		id:   uuid.New().String(),
		hub:  h,
		conn: conn,
		send: make(chan Message, sendBufferSize),
	}
	h.register <- c
	return c
}

// ID returns the client's connection identifier.
func (c *Client) ID() string {
	return c.id
}

// Run starts the write pump and then reads until the connection
// drops. It blocks for the life of the connection, which matches how
// the fiber websocket handler expects to hold its goroutine.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump consumes inbound messages until the connection closes.
// Control messages are decoded and handed to the hub; anything
// unparseable is logged and dropped.
func (c *Client) readPump() {
	logger := log.Component("hub")
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			logger.Debug("read loop ended", "client", c.id, "error", err)
			return
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			logger.Warn("unparseable message", "client", c.id, "error", err)
			continue
		}
		c.dispatch(msg)
	}
}

// dispatch routes one parsed control message to the hub.
func (c *Client) dispatch(msg *protocol.Message) {
	logger := log.Component("hub")

	switch msg.Type {
	case protocol.TypePointer:
		p, err := msg.GetPointerData()
		if err != nil {
			logger.Warn("bad pointer payload", "client", c.id, "error", err)
			return
		}
		c.hub.handlePointer(c.id, p)

	case protocol.TypePreset:
		p, err := msg.GetPresetCommand()
		if err != nil {
			logger.Warn("bad preset payload", "client", c.id, "error", err)
			return
		}
		c.hub.handlePreset(c.id, p)

	case protocol.TypeReset:
		p, err := msg.GetResetCommand()
		if err != nil {
			logger.Warn("bad reset payload", "client", c.id, "error", err)
			return
		}
		c.hub.handleReset(c.id, p)

	case protocol.TypePing:
		p, err := msg.GetPingData()
		if err != nil {
			logger.Warn("bad ping payload", "client", c.id, "error", err)
			return
		}
		pong, err := protocol.NewPongMessage(p.ID, p.Timestamp, time.Now().UnixMilli())
		if err != nil {
			logger.Error("build pong", "error", err)
			return
		}
		data, err := pong.Bytes()
		if err != nil {
			logger.Error("encode pong", "error", err)
			return
		}
		c.trySend(NewJSONMessage(data))

	default:
		logger.Debug("ignoring message", "client", c.id, "type", msg.Type)
	}
}

// trySend queues a message for this client without blocking. Frames
// are dropped if the client's queue is full.
func (c *Client) trySend(msg Message) {
	select {
	case c.send <- msg:
	default:
	}
}

// writePump drains the send channel onto the wire and keeps the
// connection alive with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel; say goodbye properly.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg.Data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
