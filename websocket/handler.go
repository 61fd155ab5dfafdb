// websocket/handler.go
package websocket

import (
	"time"

	"campus-guide-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// WsHandler manages WebSocket upgrade requests and connections.
type WsHandler struct {
	hub *Hub
}

func NewWsHandler(hub *Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// HandleWebSocket upgrades the connection and streams content notifications.
// The content is public, so no authentication is required.
func (h *WsHandler) HandleWebSocket(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		client := &Client{
			ID:   uuid.New(),
			Conn: conn,
			Hub:  h.hub,
			Send: make(chan Message, 16),
		}

		h.hub.register <- client
		config.Logger.Info("WebSocket client connected", zap.String("client_id", client.ID.String()))

		go client.writePump()
		client.readPump()
	})(c)
}

// writePump forwards hub messages to the connection and keeps it alive with
// pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				config.Logger.Warn("WebSocket write failed", zap.String("client_id", c.ID.String()), zap.Error(err))
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection (clients send nothing meaningful) and
// unregisters on close.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
		config.Logger.Info("WebSocket client disconnected", zap.String("client_id", c.ID.String()))
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
