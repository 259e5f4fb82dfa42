package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apptoken "github.com/go-token-issuer/internal/application/token"
	"github.com/go-token-issuer/internal/domain"
)

// TokenHandler exposes token issuance and listing.
type TokenHandler struct {
	svc apptoken.Service
}

func NewTokenHandler(svc apptoken.Service) *TokenHandler { return &TokenHandler{svc: svc} }

// Issue handles POST /tokens with body {"user_id": "..."}.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req domain.IssueTokenRequest
	if err := decodeSingle(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.IssueToken(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, res.StatusCode, IssueEnvelope{
		StatusCode: res.StatusCode,
		Body:       res.Body,
		Token:      res.Token.Token,
		ExpiryTime: res.Token.ExpiryTime,
	})
}

// List handles GET /tokens, returning the bare array the browser client renders.
func (h *TokenHandler) List(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.svc.ListTokens(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokens)
}

// decodeSingle decodes exactly one JSON value from body. An empty body leaves v
// untouched; anything after the first value is rejected.
func decodeSingle(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after request body")
	}
	return nil
}
