package main

import (
	"context"
	"log"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	apptoken "github.com/go-token-issuer/internal/application/token"
	"github.com/go-token-issuer/internal/config"
	"github.com/go-token-issuer/internal/infrastructure/tokenstore"
	pkgtoken "github.com/go-token-issuer/internal/pkg/token"
	"github.com/go-token-issuer/internal/transport/lambda"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Built once per cold start and reused across warm invocations.
	store, closeStore, err := tokenstore.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("token store: %v", err)
	}
	gen, err := pkgtoken.NewGenerator(nil, cfg.TokenLength)
	if err != nil {
		log.Fatalf("token generator: %v", err)
	}

	h := lambda.NewHandler(apptoken.NewService(apptoken.ServiceDeps{
		Store:     store,
		Generator: gen,
	}))
	// Start never returns; the runtime sends SIGTERM before shutting the
	// execution environment down, which is the only chance to close the store.
	awslambda.StartWithOptions(h.Handle, awslambda.WithEnableSIGTERM(func() {
		if err := closeStore(); err != nil {
			log.Printf("close token store: %v", err)
		}
	}))
}
