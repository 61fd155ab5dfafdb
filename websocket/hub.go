// websocket/hub.go
package websocket

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeSnapshotReloaded MessageType = "SNAPSHOT_RELOADED"
	MessageTypeError            MessageType = "ERROR"
)

// Message is the envelope pushed to connected clients.
type Message struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SnapshotReloadedPayload tells clients which content version is now live so
// they can refetch and drop any narrowed result state.
type SnapshotReloadedPayload struct {
	Version int `json:"version"`
}

// Client is one connected consumer.
type Client struct {
	ID   uuid.UUID
	Conn *websocket.Conn
	Hub  *Hub
	Send chan Message
}

// Hub keeps the set of connected clients and fans broadcast messages out to
// them. Register/unregister/broadcast all funnel through Run's select loop so
// the clients map needs no further locking.
type Hub struct {
	clients    map[uuid.UUID]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 16),
	}
}

// Run processes hub events until the process exits. Call in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client

		case client := <-h.unregister:
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}

		case message := <-h.broadcast:
			for id, client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.clients, id)
					close(client.Send)
				}
			}
		}
	}
}

// BroadcastSnapshotReloaded notifies every client that new content is live.
func (h *Hub) BroadcastSnapshotReloaded(version int) {
	h.broadcast <- Message{
		Type:      MessageTypeSnapshotReloaded,
		Payload:   SnapshotReloadedPayload{Version: version},
		Timestamp: time.Now(),
	}
}
