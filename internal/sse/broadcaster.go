package sse

import (
	"sync"
	"time"

	"github.com/aaronzipp/imposter-party/internal/logger"
)

// sendTimeout bounds how long a broadcast waits on one slow client.
const sendTimeout = time.Second

// Message represents a message sent via Server-Sent Events
type Message struct {
	Event string // Event type (e.g., "nav-redirect", "players-update")
	Data  string // HTML content or data to send
}

// Hub fans session updates out to every connected device.
type Hub struct {
	mu      sync.RWMutex
	clients map[chan Message]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[chan Message]struct{})}
}

// Add registers a new client channel.
func (h *Hub) Add(client chan Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Remove unregisters a client channel.
func (h *Hub) Remove(client chan Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
	logger.Debugf("sse client removed, %d remaining", len(h.clients))
}

// Broadcast sends a message to all connected clients.
func (h *Hub) Broadcast(event, data string) {
	h.mu.RLock()
	// Collect all client channels while holding the lock
	clients := make([]chan Message, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	// Send messages WITHOUT holding the lock
	msg := Message{Event: event, Data: data}
	for _, client := range clients {
		select {
		case client <- msg:
		case <-time.After(sendTimeout):
			// Timeout - skip this client to avoid blocking
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
