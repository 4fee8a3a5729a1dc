package service

import (
	"context"

	"go.uber.org/zap"
)

// SweepExpiredRefreshTokens garbage-collects refresh-token rows past their
// expiry. Live-only queries already exclude them, so the sweep only reclaims
// storage and can run on any schedule.
func (s *AuthService) SweepExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := s.repo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		s.logger.Error("refresh token sweep failed", zap.Error(err))
		return err
	}

	if deleted > 0 {
		s.logger.Info("swept expired refresh tokens", zap.Int64("deleted", deleted))
	}

	return nil
}
