package websocket

import (
	"sync"

	"github.com/coder/websocket"
)

// ClientManager tracks live connections, grouped by visitor.
type ClientManager struct {
	clients  map[string]*Client
	visitors map[string]map[string]bool // Maps visitorID to a set of client IDs
	mu       sync.RWMutex
}

// NewClientManager creates a new ClientManager.
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients:  make(map[string]*Client),
		visitors: make(map[string]map[string]bool),
	}
}

// Add registers a new client.
func (m *ClientManager) Add(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clients[client.ID] = client

	if client.VisitorID != "" {
		if _, ok := m.visitors[client.VisitorID]; !ok {
			m.visitors[client.VisitorID] = make(map[string]bool)
		}
		m.visitors[client.VisitorID][client.ID] = true
	}
}

// Remove unregisters a client and closes its send queue.
func (m *ClientManager) Remove(clientID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[clientID]
	if !ok {
		return
	}
	delete(m.clients, clientID)

	if set := m.visitors[client.VisitorID]; set != nil {
		delete(set, clientID)
		if len(set) == 0 {
			delete(m.visitors, client.VisitorID)
		}
	}
	client.Close()
}

// GetByVisitor returns all clients opened by one visitor.
func (m *ClientManager) GetByVisitor(visitorID string) []*Client {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Client
	for id := range m.visitors[visitorID] {
		if client, ok := m.clients[id]; ok {
			out = append(out, client)
		}
	}
	return out
}

// Count returns the number of connected clients.
func (m *ClientManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// CloseAll closes every client's queue and connection, e.g. on shutdown.
func (m *ClientManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, client := range m.clients {
		client.Close()
		if client.Conn != nil {
			client.Conn.Close(websocket.StatusGoingAway, "server shutting down")
		}
		delete(m.clients, id)
	}
	m.visitors = make(map[string]map[string]bool)
}
