// Package wshub carries the browser host's input and render messages over
// WebSocket connections, one connection per play session.
package wshub

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
)

// ClientMessage is the JSON structure received from clients. Pointer
// coordinates are pixels with a top-left origin.
type ClientMessage struct {
	Type string  `json:"t"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
	Key  string  `json:"k,omitempty"`
	W    float64 `json:"w,omitempty"`
	H    float64 `json:"h,omitempty"`
}

const (
	MsgClick = "click"
	MsgKey   = "key"
	MsgSize  = "size"

	KeyStart = "start"
	KeyStop  = "stop"
)

// ServerMessage is the JSON structure sent to clients. Positions are world
// units with the origin at the viewport centre and +Y up.
type ServerMessage struct {
	Type     string  `json:"t"`
	Session  string  `json:"g,omitempty"`
	ID       int     `json:"id,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"s,omitempty"`
	Color    string  `json:"c,omitempty"`
	Reaction int64   `json:"r,omitempty"` // ms
	Interval int64   `json:"i,omitempty"` // ms
	Active   bool    `json:"a,omitempty"`
}

const (
	MsgHello  = "hello"
	MsgTarget = "target"
	MsgClear  = "clear"
	MsgHit    = "hit"
	MsgState  = "state"
)

// Client represents a single WebSocket connection in the hub.
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
}

func NewClient(sessionID string, conn *websocket.Conn) *Client {
	return &Client{SessionID: sessionID, Conn: conn, Send: make(chan []byte, 32)}
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub tracks the connected clients by session.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	logger  *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients: make(map[string]*Client),
		logger:  logger.WithPrefix("hub"),
	}
}

// Register adds a client, replacing any earlier client of the same session.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[c.SessionID]; ok && old != c {
		close(old.Send)
	}
	h.clients[c.SessionID] = c
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[sessionID]; ok {
		close(c.Send)
		delete(h.clients, sessionID)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send queues msg for one session. Non-blocking: reports false and drops
// the message when the client is gone or its channel is full.
func (h *Hub) Send(sessionID string, msg ServerMessage) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal error", "err", err)
		return false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	c, ok := h.clients[sessionID]
	if !ok {
		return false
	}
	select {
	case c.Send <- data:
		return true
	default:
		h.logger.Warn("client send buffer full, dropping", "session", sessionID, "type", msg.Type)
		return false
	}
}
