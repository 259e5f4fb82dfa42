package token

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-token-issuer/internal/domain"
	"github.com/go-token-issuer/internal/pkg/validate"
)

// TTL is how long an issued token stays valid. Verifiers rely on it; it is not configurable.
const TTL = 300 * time.Second

// Store persists issued tokens. Implementations must honor ExpiryTime as an item TTL.
type Store interface {
	Put(ctx context.Context, t *domain.Token) error
	List(ctx context.Context) ([]domain.Token, error)
}

// Generator produces token strings.
type Generator interface {
	New() (string, error)
}

// Result is the outcome of a successful issuance.
type Result struct {
	StatusCode int
	Body       string
	Token      domain.Token
}

type Service interface {
	IssueToken(ctx context.Context, req domain.IssueTokenRequest) (*Result, error)
	ListTokens(ctx context.Context) ([]domain.Token, error)
}

// ServiceDeps wires the issuer. Now and Logger are optional.
type ServiceDeps struct {
	Store     Store
	Generator Generator
	Now       func() time.Time
	Logger    *slog.Logger
}

type service struct {
	store     Store
	generator Generator
	now       func() time.Time
	log       *slog.Logger
}

func NewService(deps ServiceDeps) Service {
	s := &service{
		store:     deps.Store,
		generator: deps.Generator,
		now:       deps.Now,
		log:       deps.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// IssueToken generates a token for req.UserID and writes it unconditionally.
// A failed write is logged and returned wrapping domain.ErrStorageWrite; it is not retried.
func (s *service) IssueToken(ctx context.Context, req domain.IssueTokenRequest) (*Result, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	userID := *req.UserID

	tok, err := s.generator.New()
	if err != nil {
		return nil, err
	}

	t := domain.Token{
		UserID:     userID,
		Token:      tok,
		ExpiryTime: s.now().UTC().Add(TTL).Unix(),
	}
	if err := s.store.Put(ctx, &t); err != nil {
		s.log.Error("error saving token", "user_id", userID, "err", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}

	return &Result{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf("Token generated successfully. Token#: '%s' expires in %s", tok, humanDuration(TTL)),
		Token:      t,
	}, nil
}

func (s *service) ListTokens(ctx context.Context) ([]domain.Token, error) {
	return s.store.List(ctx)
}

// humanDuration renders whole minutes as "5 minutes" and anything else with time.Duration's format.
func humanDuration(d time.Duration) string {
	if d%time.Minute != 0 {
		return d.String()
	}
	n := int(d / time.Minute)
	if n == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", n)
}
