package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"aimaturity/internal/model"
	"aimaturity/internal/orchestrator"
	"aimaturity/internal/service"
)

// AssessmentHandler handles direct assessment runs and report retrieval
type AssessmentHandler struct {
	svc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// Run handles POST /v1/assessments. The body carries a complete answer
// map from a direct-entry client; no conversation is involved.
func (h *AssessmentHandler) Run(w http.ResponseWriter, r *http.Request) {
	var data model.AssessmentData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(data.Responses) == 0 {
		writeError(w, http.StatusBadRequest, "responses must not be empty")
		return
	}

	result, err := h.svc.RunAssessment(r.Context(), data)
	if err != nil {
		if errors.Is(err, orchestrator.ErrAssessmentUnavailable) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "assessment failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /v1/assessments/{organizationId}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	organizationID := mux.Vars(r)["organizationId"]

	result, err := h.svc.GetResult(r.Context(), organizationID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not load result")
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "no assessment found for organization")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// List handles GET /v1/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	results, err := h.svc.ListResults(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list results")
		return
	}

	writeJSON(w, http.StatusOK, results)
}
