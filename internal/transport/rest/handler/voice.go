package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"aimaturity/internal/model"
	"aimaturity/internal/service"
)

// VoiceHandler adapts the voice provider's webhook events onto the same
// flow driver the chat channel uses. The provider speaks the returned
// text back to the caller.
type VoiceHandler struct {
	svc *service.AssessmentService
}

// NewVoiceHandler creates a new voice webhook handler
func NewVoiceHandler(svc *service.AssessmentService) *VoiceHandler {
	return &VoiceHandler{svc: svc}
}

const (
	voiceCallStarted = "call_started"
	voiceTranscript  = "transcript"
	voiceCallEnded   = "call_ended"
)

type voiceEvent struct {
	Event     string `json:"event"`
	SessionID string `json:"sessionId"`
	CallID    string `json:"callId"`
	Text      string `json:"text"`
}

type voiceResponse struct {
	SessionID string `json:"sessionId"`
	Speech    string `json:"speech,omitempty"`
	Done      bool   `json:"done"`
}

// Webhook handles POST /v1/voice/webhook
func (h *VoiceHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var event voiceEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch event.Event {
	case voiceCallStarted:
		session, reply, err := h.svc.StartSession(r.Context(), model.ChannelVoice)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not start session")
			return
		}
		writeJSON(w, http.StatusOK, voiceResponse{
			SessionID: session.ID,
			Speech:    reply.Message,
		})

	case voiceTranscript:
		reply, err := h.svc.HandleMessage(r.Context(), event.SessionID, event.Text)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "could not process transcript")
			return
		}
		writeJSON(w, http.StatusOK, voiceResponse{
			SessionID: event.SessionID,
			Speech:    reply.Message,
			Done:      reply.State == model.StateCompleted,
		})

	case voiceCallEnded:
		// Nothing to tear down; the session expires from the cache.
		writeJSON(w, http.StatusOK, voiceResponse{SessionID: event.SessionID, Done: true})

	default:
		writeError(w, http.StatusBadRequest, "unknown event")
	}
}
