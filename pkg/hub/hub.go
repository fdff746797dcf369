package hub

import (
	"sync"
	"sync/atomic"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/SkyPlay-Code/centipede/internal/log"
	"github.com/SkyPlay-Code/centipede/pkg/protocol"
)

// PointerFunc receives pointer samples from a client.
type PointerFunc func(clientID string, p *protocol.PointerData)

// PresetFunc receives preset-switch commands from a client.
type PresetFunc func(clientID string, cmd *protocol.PresetCommand)

// ResetFunc receives reset commands from a client.
type ResetFunc func(clientID string, cmd *protocol.ResetCommand)

// Hub fans broadcast messages out to every connected client. All
// client bookkeeping happens on the Run goroutine via the register,
// unregister and broadcast channels, so no locks guard the client set
// itself. The callback slots are guarded separately because they are
// configured from the serving goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message

	// clientCount mirrors len(clients) so readers outside the Run
	// goroutine don't need to synchronize with it.
	clientCount atomic.Int64

	mu        sync.RWMutex
	onPointer PointerFunc
	onPreset  PresetFunc
	onReset   ResetFunc
}

// New creates a hub. Call Run on its own goroutine before registering
// routes.
func New() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 64),
	}
}

// OnPointer sets the callback invoked for each inbound pointer sample.
func (h *Hub) OnPointer(fn PointerFunc) {
	h.mu.Lock()
	h.onPointer = fn
	h.mu.Unlock()
}

// OnPreset sets the callback invoked when a client asks to switch
// presets.
func (h *Hub) OnPreset(fn PresetFunc) {
	h.mu.Lock()
	h.onPreset = fn
	h.mu.Unlock()
}

// OnReset sets the callback invoked when a client asks for a reset.
func (h *Hub) OnReset(fn ResetFunc) {
	h.mu.Lock()
	h.onReset = fn
	h.mu.Unlock()
}

// Run processes register, unregister and broadcast events. It never
// returns; start it with go h.Run().
func (h *Hub) Run() {
	logger := log.Component("hub")

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.clientCount.Store(int64(len(h.clients)))
			logger.Info("client connected", "client", client.id, "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.clientCount.Store(int64(len(h.clients)))
				logger.Info("client disconnected", "client", client.id, "total", len(h.clients))
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Client can't keep up; cut it loose.
					delete(h.clients, client)
					close(client.send)
					logger.Warn("dropping slow client", "client", client.id)
				}
			}
			h.clientCount.Store(int64(len(h.clients)))
		}
	}
}

// Broadcast queues a message for all connected clients. If the
// broadcast channel itself is full the message is dropped; pose
// frames are ephemeral and the next tick replaces them.
func (h *Hub) Broadcast(msg Message) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

// BroadcastJSON encodes and queues a protocol message for all clients.
func (h *Hub) BroadcastJSON(msg *protocol.Message) error {
	data, err := msg.Bytes()
	if err != nil {
		return err
	}
	h.Broadcast(NewJSONMessage(data))
	return nil
}

// ClientCount reports how many clients are connected. The count is
// advisory; it trails the Run goroutine by at most one event.
func (h *Hub) ClientCount() int {
	return int(h.clientCount.Load())
}

// handlePointer forwards a pointer sample to the configured callback.
func (h *Hub) handlePointer(clientID string, p *protocol.PointerData) {
	h.mu.RLock()
	fn := h.onPointer
	h.mu.RUnlock()
	if fn != nil {
		fn(clientID, p)
	}
}

func (h *Hub) handlePreset(clientID string, cmd *protocol.PresetCommand) {
	h.mu.RLock()
	fn := h.onPreset
	h.mu.RUnlock()
	if fn != nil {
		fn(clientID, cmd)
	}
}

func (h *Hub) handleReset(clientID string, cmd *protocol.ResetCommand) {
	h.mu.RLock()
	fn := h.onReset
	h.mu.RUnlock()
	if fn != nil {
		fn(clientID, cmd)
	}
}

// RegisterRoutes wires the websocket endpoint into a fiber app. The
// upgrade check runs as middleware so plain HTTP requests to the path
// get a clean 426 instead of a hang.
func (h *Hub) RegisterRoutes(app *fiber.App, path string) {
	app.Use(path, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get(path, websocket.New(func(conn *websocket.Conn) {
		client := NewClient(h, conn)
		client.Run()
	}))
}
