package websocket

import (
	"log"
	"net/http"
	"sync"

	"debatearena/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Client represents one connected event listener.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// safeWriteJSON serializes writes to the client's connection.
func (c *Client) safeWriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub broadcasts lifecycle events to every connected client. Register it as
// the service's event handler; it owns all socket concerns.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]bool
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler upgrades the request and keeps the client registered until the
// connection drops. Clients only listen; inbound messages are discarded.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	client := &Client{conn: conn}
	h.register(client)
	defer h.unregister(client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes a lifecycle event to every connected client. Clients
// whose writes fail are dropped.
func (h *Hub) Broadcast(ev models.Event) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.safeWriteJSON(ev); err != nil {
			log.Printf("Error broadcasting %s event: %v", ev.Type, err)
			h.unregister(client)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	log.Printf("Event client connected. Total clients: %d", len(h.clients))
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	total := len(h.clients)
	h.mu.Unlock()

	client.conn.Close()
	log.Printf("Event client disconnected. Total clients: %d", total)
}
