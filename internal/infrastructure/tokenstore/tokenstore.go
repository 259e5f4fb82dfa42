package tokenstore

import (
	"context"
	"fmt"
	"log/slog"

	apptoken "github.com/go-token-issuer/internal/application/token"
	"github.com/go-token-issuer/internal/config"
	"github.com/go-token-issuer/internal/infrastructure/dynamo"
	"github.com/go-token-issuer/internal/infrastructure/redisstore"
)

// Open builds the store selected by cfg.TokenStore. The returned close func
// releases backend connections and is never nil.
func Open(ctx context.Context, cfg *config.Config) (apptoken.Store, func() error, error) {
	switch cfg.TokenStore {
	case config.StoreRedis:
		client, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		s := redisstore.NewTokenStore(client, cfg.RedisKeyPrefix, cfg.TokenTable)
		slog.Info("token store ready", "backend", config.StoreRedis, "namespace", cfg.TokenTable)
		return s, s.Close, nil
	case config.StoreDynamo:
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if cfg.DynamoBootstrap {
			dynamo.Bootstrap(ctx, client, cfg.TokenTable)
		}
		slog.Info("token store ready", "backend", config.StoreDynamo, "table", cfg.TokenTable)
		return dynamo.NewTokenRepo(client, cfg.TokenTable), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q", cfg.TokenStore)
	}
}
