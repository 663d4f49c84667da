package ws

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"chat-service/internal/observability"
)

// Hub is the process-wide registry of connected clients. It holds only
// opaque connection handles, never business data; writes to a
// connection are serialized by the hub mutex.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     log,
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	observability.SetWSClientsConnected(n)
	h.log.Info("websocket client connected", "clients", n)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	n := len(h.clients)
	h.mu.Unlock()
	observability.SetWSClientsConnected(n)
	h.log.Info("websocket client disconnected", "clients", n)
}

// Broadcast sends the event to every connected client. Delivery is not
// scoped to conversation participants. Connections that fail to take
// the write are dropped from the registry and closed.
func (h *Hub) Broadcast(event any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			h.log.Warn("failed to write to websocket client", "error", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
	observability.SetWSClientsConnected(len(h.clients))
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
