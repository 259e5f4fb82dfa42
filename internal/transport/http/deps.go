package http

import (
	apptoken "github.com/go-token-issuer/internal/application/token"
	"github.com/go-token-issuer/internal/transport/http/handler"
	appmiddleware "github.com/go-token-issuer/internal/transport/http/middleware"
)

// Deps holds the dependencies the router needs.
type Deps struct {
	TokenService apptoken.Service
	// Verifier guards the token listing. Nil leaves it open, which is only
	// appropriate when the API is not publicly reachable.
	Verifier appmiddleware.TokenVerifier
	Health   handler.HealthInfo
}
