package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"aimaturity/internal/model"
	"aimaturity/internal/service"
	"aimaturity/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles WebSocket chat connections
type Handler struct {
	hub *Hub
	svc *service.AssessmentService
	log logger.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, svc *service.AssessmentService, log logger.Logger) *Handler {
	return &Handler{
		hub: hub,
		svc: svc,
		log: log.Named("ws"),
	}
}

// ChatWS handles GET /v1/ws/chat. Each connection is one assessment
// session; the opening greeting is pushed immediately after upgrade.
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	session, greeting, err := h.svc.StartSession(r.Context(), model.ChannelChat)
	if err != nil {
		http.Error(w, "could not start session", http.StatusInternalServerError)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn(r.Context(), "websocket upgrade failed", logger.Err(err))
		return
	}

	conn := &Connection{
		SessionID: session.ID,
		Send:      make(chan []byte, 256),
		Hub:       h.hub,
	}
	h.hub.Register(conn)

	// The hub's run loop may not have the connection in its map yet, so
	// the initial frames go straight onto the send queue.
	conn.enqueue(MsgSessionStarted, map[string]string{"sessionId": session.ID})
	conn.enqueue(MsgReply, greeting)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn(context.Background(), "websocket read error",
					logger.String("session", conn.SessionID), logger.Err(err))
			}
			return
		}
		h.handleInbound(conn, data)
	}
}

// handleInbound advances the session with the user's message and pushes
// the flow reply back. A bare text frame is accepted as a user message.
func (h *Handler) handleInbound(conn *Connection, data []byte) {
	ctx := context.Background()

	var envelope Message
	text := string(data)
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Type == MsgUserMessage {
		var um UserMessage
		if err := json.Unmarshal(envelope.Payload, &um); err == nil {
			text = um.Text
		}
	}

	reply, err := h.svc.HandleMessage(ctx, conn.SessionID, text)
	if err != nil {
		h.sendEnvelope(conn.SessionID, MsgError, map[string]string{"error": err.Error()})
		return
	}
	h.sendEnvelope(conn.SessionID, MsgReply, reply)
}

func (h *Handler) sendEnvelope(sessionID string, msgType MessageType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.hub.SendToSession(sessionID, &Message{Type: msgType, Payload: data})
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
