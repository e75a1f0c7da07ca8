package ws

import (
	"sync"

	"go.uber.org/zap"

	"fuelpass.backend/pkg/logger"
)

// Client roles the hub keys connections by
const (
	RoleUser    = "user"
	RoleStation = "station"
)

// Message is the envelope every event is delivered in
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Conn is the subset of a websocket connection the hub needs. The
// gorilla connection satisfies it; tests inject fakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type clientKey struct {
	role string
	id   uint
}

// client serializes writes; gorilla connections do not allow
// concurrent writers.
type client struct {
	mu   sync.Mutex
	conn Conn
}

func (c *client) send(msg *Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// Hub tracks one live connection per {role, id} and delivers events
// at most once per connection. Events for absent clients are dropped;
// a failed send unregisters the connection.
type Hub struct {
	mu      sync.RWMutex
	clients map[clientKey]*client
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[clientKey]*client)}
}

// Register adds a connection for the given identity, replacing (and
// closing) any previous one, and confirms with connection_established.
func (h *Hub) Register(role string, id uint, conn Conn) {
	key := clientKey{role: role, id: id}
	c := &client{conn: conn}

	h.mu.Lock()
	prev, existed := h.clients[key]
	h.clients[key] = c
	h.mu.Unlock()

	if existed {
		prev.conn.Close()
	}

	if err := c.send(&Message{Type: "connection_established", Payload: map[string]interface{}{
		"message": "Connected to notification service",
	}}); err != nil {
		h.drop(key, c)
	}
}

// Unregister removes the given connection for the identity. A stale
// connection that was already replaced by a reconnect is ignored, so a
// dying read loop cannot tear down its successor.
func (h *Hub) Unregister(role string, id uint, conn Conn) {
	key := clientKey{role: role, id: id}
	h.mu.Lock()
	c, ok := h.clients[key]
	if ok && c.conn != conn {
		h.mu.Unlock()
		return
	}
	if ok {
		delete(h.clients, key)
	}
	h.mu.Unlock()
	conn.Close()
}

// NotifyUser delivers an event to a connected user, if any
func (h *Hub) NotifyUser(userID uint, event string, payload interface{}) {
	h.notify(clientKey{role: RoleUser, id: userID}, event, payload)
}

// NotifyStation delivers an event to a connected station terminal, if any
func (h *Hub) NotifyStation(stationID uint, event string, payload interface{}) {
	h.notify(clientKey{role: RoleStation, id: stationID}, event, payload)
}

// Broadcast delivers an event to every connected client
func (h *Hub) Broadcast(event string, payload interface{}) {
	h.mu.RLock()
	targets := make(map[clientKey]*client, len(h.clients))
	for key, c := range h.clients {
		targets[key] = c
	}
	h.mu.RUnlock()

	msg := &Message{Type: event, Payload: payload}
	for key, c := range targets {
		if err := c.send(msg); err != nil {
			h.drop(key, c)
		}
	}
}

// CloseAll closes every connection and empties the hub. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[clientKey]*client)
	h.mu.Unlock()

	for _, c := range clients {
		c.conn.Close()
	}
}

// ClientCount returns the number of live connections
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) notify(key clientKey, event string, payload interface{}) {
	h.mu.RLock()
	c, ok := h.clients[key]
	h.mu.RUnlock()
	if !ok {
		return
	}

	if err := c.send(&Message{Type: event, Payload: payload}); err != nil {
		logger.GetLogger().Warn("websocket send failed, dropping client",
			zap.String("role", key.role),
			zap.Uint("id", key.id),
			zap.Error(err),
		)
		h.drop(key, c)
	}
}

// drop removes the client only if it is still the registered one, so a
// reconnect racing a failed send is not torn down.
func (h *Hub) drop(key clientKey, c *client) {
	h.mu.Lock()
	if current, ok := h.clients[key]; ok && current == c {
		delete(h.clients, key)
	}
	h.mu.Unlock()
	c.conn.Close()
}
