package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-token-issuer/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

// IssueEnvelope mirrors the invocation result: statusCode and body, plus the
// issued record for clients that want it without parsing body.
type IssueEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
	Token      string `json:"token"`
	ExpiryTime int64  `json:"expiry_time"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg, ErrorCode: status})
}

// httpError maps domain sentinel errors to status codes. Storage failures
// and anything unrecognised become 500 without leaking the cause.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrStorageWrite):
		writeError(w, http.StatusInternalServerError, domain.ErrStorageWrite.Error())
	default:
		slog.Error("unhandled error", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
