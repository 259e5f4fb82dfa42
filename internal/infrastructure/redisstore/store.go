package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-token-issuer/internal/domain"
	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// TokenStore keeps one hash per user under <prefix><namespace>:<user_id>.
// Redis expires the key at expiry_time, so a new token replaces the previous one.
type TokenStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// Connect parses redisURL, pings the server and returns a ready client.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func NewTokenStore(client redis.UniversalClient, prefix, namespace string) *TokenStore {
	return &TokenStore{client: client, keyPrefix: prefix + namespace + ":"}
}

func (s *TokenStore) key(userID string) string {
	return s.keyPrefix + userID
}

// Put writes the token hash and its absolute expiry in one transaction.
func (s *TokenStore) Put(ctx context.Context, t *domain.Token) error {
	key := s.key(t.UserID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"user_id":     t.UserID,
			"token":       t.Token,
			"expiry_time": strconv.FormatInt(t.ExpiryTime, 10),
		})
		pipe.ExpireAt(ctx, key, time.Unix(t.ExpiryTime, 0))
		return nil
	})
	return err
}

// List returns every token still held by Redis.
func (s *TokenStore) List(ctx context.Context) ([]domain.Token, error) {
	tokens := []domain.Token{}
	iter := s.client.Scan(ctx, 0, s.keyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		var t domain.Token
		if err := s.client.HGetAll(ctx, iter.Val()).Scan(&t); err != nil {
			return nil, fmt.Errorf("read token %s: %w", iter.Val(), err)
		}
		// Expired between SCAN and HGETALL.
		if t.UserID == "" {
			continue
		}
		tokens = append(tokens, t)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Close closes the underlying client.
func (s *TokenStore) Close() error {
	return s.client.Close()
}
