package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"aimaturity/internal/catalog"
	"aimaturity/internal/model"
)

// CatalogHandler serves the read-only dimension and maturity catalogs
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListDimensions handles GET /v1/catalog/dimensions, optionally filtered
// by ?category=
func (h *CatalogHandler) ListDimensions(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		dims := catalog.DimensionsByCategory(model.Category(category))
		if len(dims) == 0 {
			writeError(w, http.StatusNotFound, "unknown category")
			return
		}
		writeJSON(w, http.StatusOK, dims)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Dimensions)
}

// GetDimension handles GET /v1/catalog/dimensions/{dimensionId}
func (h *CatalogHandler) GetDimension(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["dimensionId"]
	dim, ok := catalog.DimensionByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown dimension")
		return
	}
	writeJSON(w, http.StatusOK, dim)
}

// ListMaturityLevels handles GET /v1/catalog/maturity-levels
func (h *CatalogHandler) ListMaturityLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.MaturityLevels)
}

// GetMaturityLevel handles GET /v1/catalog/maturity-levels/{level}
func (h *CatalogHandler) GetMaturityLevel(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(mux.Vars(r)["level"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "level must be an integer")
		return
	}
	ml, ok := catalog.MaturityLevel(level)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown maturity level")
		return
	}
	writeJSON(w, http.StatusOK, ml)
}
