package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hanifradityo/auth-service/internal/auth/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "access_token:"

// TokenCache stores sanitized users keyed by the literal access-token string.
// Entries self-expire with the token, so normal expiry needs no invalidation.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

// Get returns nil, nil when the key is absent.
func (c *TokenCache) Get(ctx context.Context, token string) (*domain.SanitizedUser, error) {
	data, err := c.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached token: %w", err)
	}

	var user domain.SanitizedUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached user: %w", err)
	}

	return &user, nil
}

func (c *TokenCache) Set(ctx context.Context, token string, user *domain.SanitizedUser, ttl time.Duration) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := c.client.Set(ctx, keyPrefix+token, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}

	return nil
}

func (c *TokenCache) Delete(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete cached token: %w", err)
	}

	return nil
}
