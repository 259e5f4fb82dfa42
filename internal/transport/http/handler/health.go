package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler handles health-check endpoints.
type HealthHandler struct {
	info HealthInfo
}

// HealthInfo is the non-secret runtime description returned by the "info" action.
type HealthInfo struct {
	Env        string `json:"env"`
	Store      string `json:"store"`
	TTLSeconds int64  `json:"ttl_seconds"`
}

func NewHealthHandler(info HealthInfo) *HealthHandler { return &HealthHandler{info: info} }

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "ping":
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
	case "info":
		writeJSON(w, http.StatusOK, h.info)
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}
