package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanifradityo/auth-service/config"
	"github.com/hanifradityo/auth-service/internal/auth/crypto"
	"github.com/hanifradityo/auth-service/internal/auth/domain"
	"github.com/hanifradityo/auth-service/internal/auth/dto"
	"github.com/hanifradityo/auth-service/internal/auth/token"
	autherror "github.com/hanifradityo/auth-service/internal/errors"
)

// AuthService orchestrates the credential/session lifecycle: signup, signin,
// refresh, signout and access-token validation. The postgres repository is
// authoritative for users and refresh tokens; the cache only accelerates
// validation and is never required for correctness.
type AuthService struct {
	repo   domain.UserRepository
	cache  domain.TokenCache
	hasher *crypto.Hasher
	codec  *token.Codec
	cfg    *config.Config
	logger *zap.Logger
}

func NewAuthService(
	repo domain.UserRepository,
	cache domain.TokenCache,
	hasher *crypto.Hasher,
	codec *token.Codec,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		repo:   repo,
		cache:  cache,
		hasher: hasher,
		codec:  codec,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) (*dto.AuthOutput, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		Name:         input.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthOutput{User: user.Sanitize(), TokenPair: *pair}, nil
}

// Signin returns the same generic error whether the user is absent or the
// password is wrong.
func (s *AuthService) Signin(ctx context.Context, input dto.SigninInput) (*dto.AuthOutput, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthOutput{User: user.Sanitize(), TokenPair: *pair}, nil
}

// Refresh exchanges a live refresh token for a fresh pair. The presented
// token stays valid unless strict rotation is configured, so two concurrent
// refreshes on one token both succeed and yield independent sessions.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	rt, err := s.repo.GetLiveRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	user, err := s.repo.GetByID(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if s.cfg.RotateRefreshTokens {
		if err := s.repo.DeleteRefreshToken(ctx, refreshToken); err != nil {
			return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
		}
	}

	return s.issueTokenPair(ctx, user)
}

// Validate resolves an access token to its sanitized user. Cache hits are
// trusted without re-verifying the MAC; entries are only ever written right
// after a successful sign or verification. Cache failures degrade to a miss.
func (s *AuthService) Validate(ctx context.Context, accessToken string) (*domain.SanitizedUser, error) {
	cached, err := s.cache.Get(ctx, accessToken)
	if err != nil {
		s.logger.Warn("token cache unavailable, falling back to verification", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	claims, err := s.codec.Verify(accessToken)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidToken
	}

	sanitized := user.Sanitize()

	if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
		if err := s.cache.Set(ctx, accessToken, sanitized, remaining); err != nil {
			s.logger.Warn("failed to re-prime token cache", zap.Error(err))
		}
	}

	return sanitized, nil
}

// Signout revokes whichever credentials are presented; both are optional and
// independent. Other live sessions for the same user are untouched.
func (s *AuthService) Signout(ctx context.Context, refreshToken, accessToken string) error {
	if refreshToken != "" {
		if err := s.repo.DeleteRefreshToken(ctx, refreshToken); err != nil {
			return err
		}
	}

	if accessToken != "" {
		if err := s.cache.Delete(ctx, accessToken); err != nil {
			s.logger.Warn("failed to evict cached access token", zap.Error(err))
		}
	}

	return nil
}

// GetUserByID is a direct lookup outside the credential flow.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.SanitizedUser, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return user.Sanitize(), nil
}

// issueTokenPair is the single issuance path shared by signup, signin and
// refresh: a signed short-lived access token, a persisted opaque refresh
// token, and a primed cache entry for the access token's validity window.
func (s *AuthService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.TokenPair, error) {
	accessToken, _, err := s.codec.Sign(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := crypto.GenerateOpaqueToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rt := &domain.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: now.Add(time.Duration(s.cfg.RefreshTokenTTL) * time.Second),
		CreatedAt: now,
	}

	if err := s.repo.StoreRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, accessToken, user.Sanitize(), s.codec.TTL()); err != nil {
		s.logger.Warn("failed to prime token cache", zap.Error(err))
	}

	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
