package ws

import (
	"context"
	"encoding/json"
	"sync"

	"aimaturity/pkg/logger"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSessionStarted MessageType = "session_started"
	MsgUserMessage    MessageType = "user_message"
	MsgReply          MessageType = "reply"
	MsgError          MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// UserMessage is the payload of an inbound user_message
type UserMessage struct {
	Text string `json:"text"`
}

// Hub tracks the open chat connections by session
type Hub struct {
	conns map[string]*Connection // sessionID -> connection
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	log logger.Logger
}

// Connection represents one chat client
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

// NewHub creates a new WebSocket hub
func NewHub(log logger.Logger) *Hub {
	h := &Hub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		log:        log.Named("ws"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	ctx := context.Background()
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn.SessionID] = conn
			h.mu.Unlock()
			h.log.Debug(ctx, "chat client connected", logger.String("session", conn.SessionID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.conns[conn.SessionID]; ok && existing == conn {
				delete(h.conns, conn.SessionID)
				close(conn.Send)
				h.log.Debug(ctx, "chat client disconnected", logger.String("session", conn.SessionID))
			}
			h.mu.Unlock()
		}
	}
}

// Register adds a connection to the hub
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection from the hub
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// SendToSession pushes a message to the session's connection, if any.
// A slow client that has filled its buffer just misses the message.
func (h *Hub) SendToSession(sessionID string, msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	conn, ok := h.conns[sessionID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case conn.Send <- data:
	default:
	}
}

// enqueue marshals an envelope onto the connection's send queue,
// bypassing the hub's session lookup.
func (c *Connection) enqueue(msgType MessageType, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	data, err := json.Marshal(&Message{Type: msgType, Payload: body})
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

// ActiveConnections reports how many chat clients are connected
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
