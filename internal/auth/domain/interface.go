package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/hanifradityo/auth-service/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_token_cache.go -package=mocks github.com/hanifradityo/auth-service/internal/auth/domain TokenCache

// UserRepository is the persistent store for users and their refresh tokens.
// It is authoritative for refresh-token validity.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)

	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	// GetLiveRefreshToken returns nil, nil when the token is absent or already
	// expired; expiry is enforced in the query, not by lazy cleanup.
	GetLiveRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteRefreshTokensByUserID(ctx context.Context, userID string) error
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}

// TokenCache is a TTL key-value accelerator for access-token validation.
// It is never the source of truth; a miss or a failure always falls back to
// cryptographic verification.
type TokenCache interface {
	Get(ctx context.Context, token string) (*SanitizedUser, error)
	Set(ctx context.Context, token string, user *SanitizedUser, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}
