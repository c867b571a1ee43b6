package websocket

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 10 * time.Second

// Client represents a single connected WebSocket client.
type Client struct {
	ID        string
	VisitorID string
	Conn      *websocket.Conn
	Send      chan []byte
	mu        sync.RWMutex
}

// NewClient wraps conn with a buffered outbound queue.
func NewClient(id, visitorID string, conn *websocket.Conn) *Client {
	return &Client{
		ID:        id,
		VisitorID: visitorID,
		Conn:      conn,
		Send:      make(chan []byte, 16),
	}
}

// SendMessage safely sends a message to the client's send channel.
// It uses a read lock to ensure the channel is not closed concurrently.
func (c *Client) SendMessage(msg []byte) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// If the channel is nil, it means the client is disconnected.
	if c.Send == nil {
		return
	}

	select {
	case c.Send <- msg:
	default:
		slog.Warn("Client send channel full, dropping message", "clientID", c.ID)
	}
}

// Close safely closes the client's send channel, ending WritePump.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Send != nil {
		close(c.Send)
		c.Send = nil
	}
}

// ReadPump passes every text frame to handle until the connection closes.
func (c *Client) ReadPump(ctx context.Context, handle func([]byte)) {
	for {
		_, message, err := c.Conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				slog.Debug("WebSocket closed normally by client", "clientID", c.ID)
			} else if err != io.EOF && ctx.Err() == nil {
				slog.Warn("WebSocket read error", "clientID", c.ID, "error", err)
			}
			return
		}
		handle(message)
	}
}

// WritePump writes queued messages until Close is called or a write fails.
func (c *Client) WritePump(ctx context.Context) {
	c.mu.RLock()
	send := c.Send
	c.mu.RUnlock()
	if send == nil {
		return
	}

	for message := range send {
		writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := c.Conn.Write(writeCtx, websocket.MessageText, message)
		cancel()
		if err != nil {
			slog.Warn("WebSocket write error", "clientID", c.ID, "error", err)
			return
		}
	}
}
