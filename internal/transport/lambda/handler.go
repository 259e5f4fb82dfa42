package lambda

import (
	"context"

	apptoken "github.com/go-token-issuer/internal/application/token"
	"github.com/go-token-issuer/internal/domain"
)

// Event is the Lambda invocation payload.
type Event struct {
	UserID *string `json:"user_id"`
}

// Response is returned to the Lambda runtime (and API Gateway) on success.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler adapts the token service to the Lambda runtime. Errors are
// returned as-is so the runtime records the invocation as failed.
type Handler struct {
	svc apptoken.Service
}

func NewHandler(svc apptoken.Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) Handle(ctx context.Context, ev Event) (Response, error) {
	res, err := h.svc.IssueToken(ctx, domain.IssueTokenRequest{UserID: ev.UserID})
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: res.StatusCode, Body: res.Body}, nil
}
