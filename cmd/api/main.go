package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apptoken "github.com/go-token-issuer/internal/application/token"
	"github.com/go-token-issuer/internal/config"
	jwtinfra "github.com/go-token-issuer/internal/infrastructure/jwt"
	"github.com/go-token-issuer/internal/infrastructure/tokenstore"
	pkgtoken "github.com/go-token-issuer/internal/pkg/token"
	transporthttp "github.com/go-token-issuer/internal/transport/http"
	"github.com/go-token-issuer/internal/transport/http/handler"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, closeStore, err := tokenstore.Open(context.Background(), cfg)
	if err != nil {
		log.Fatalf("token store: %v", err)
	}
	defer closeStore()

	gen, err := pkgtoken.NewGenerator(nil, cfg.TokenLength)
	if err != nil {
		log.Fatalf("token generator: %v", err)
	}

	deps := &transporthttp.Deps{
		TokenService: apptoken.NewService(apptoken.ServiceDeps{
			Store:     store,
			Generator: gen,
		}),
		Health: handler.HealthInfo{
			Env:        cfg.AppEnv,
			Store:      cfg.TokenStore,
			TTLSeconds: int64(apptoken.TTL / time.Second),
		},
	}

	// JWT verifier (optional — token listing is left open without it).
	if cfg.JWTPublicKeyPath != "" {
		p, err := jwtinfra.NewProvider(cfg.JWTPublicKeyPath)
		if err != nil {
			log.Fatalf("jwt: %v", err)
		}
		deps.Verifier = p
	} else {
		log.Printf("WARN: JWT_PUBLIC_KEY_PATH not set, GET /v1/tokens is unauthenticated")
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, store=%s)", cfg.AppPort, cfg.AppEnv, cfg.TokenStore)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
