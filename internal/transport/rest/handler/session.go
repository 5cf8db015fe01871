package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"aimaturity/internal/model"
	"aimaturity/internal/service"
)

// SessionHandler handles conversational session endpoints
type SessionHandler struct {
	svc *service.AssessmentService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc *service.AssessmentService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

type startSessionRequest struct {
	Channel model.Channel `json:"channel"`
}

type startSessionResponse struct {
	SessionID string      `json:"sessionId"`
	Reply     model.Reply `json:"reply"`
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	// An empty body means a chat session
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Channel != model.ChannelVoice {
		req.Channel = model.ChannelChat
	}

	session, reply, err := h.svc.StartSession(r.Context(), req.Channel)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not start session")
		return
	}

	writeJSON(w, http.StatusCreated, startSessionResponse{
		SessionID: session.ID,
		Reply:     reply,
	})
}

type messageRequest struct {
	Text string `json:"text"`
}

// Message handles POST /v1/sessions/{sessionId}/messages
func (h *SessionHandler) Message(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.svc.HandleMessage(r.Context(), sessionID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "could not process message")
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

// Get handles GET /v1/sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "could not load session")
		return
	}

	writeJSON(w, http.StatusOK, session)
}
