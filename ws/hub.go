package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Notification is the single broadcast payload. Whatever a client emits
// is relayed verbatim to every connected client, the sender included.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Broadcaster is the capability surface of the relay: connection
// membership plus fire-and-forget publish. There are no delivery
// guarantees; a client disconnected at publish time never receives the
// message.
type Broadcaster interface {
	Register(c *Client)
	Unregister(c *Client)
	Publish(n Notification)
}

// Client is one websocket connection. The ID exists only for logging.
type Client struct {
	ID   string
	conn *websocket.Conn
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{ID: uuid.NewString(), conn: conn}
}

// Hub is the process-wide connection set behind Broadcaster.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	log.Printf("User connected: %s", c.ID)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.conn.Close()
	}
	h.mu.Unlock()
	log.Printf("User disconnected: %s", c.ID)
}

// Publish sends the notification to every currently connected client.
// Clients whose write fails are dropped. Holding the lock for the whole
// fan-out also serializes writes to each connection.
func (h *Hub) Publish(n Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.clients, c)
			c.conn.Close()
		}
	}
}

// ClientCount reports the number of currently connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
