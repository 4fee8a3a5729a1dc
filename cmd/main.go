package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/hanifradityo/auth-service/config"
	"github.com/hanifradityo/auth-service/db"
	"github.com/hanifradityo/auth-service/internal/auth/crypto"
	"github.com/hanifradityo/auth-service/internal/auth/handler"
	repo "github.com/hanifradityo/auth-service/internal/auth/repository/postgres"
	cache "github.com/hanifradityo/auth-service/internal/auth/repository/redis"
	"github.com/hanifradityo/auth-service/internal/auth/service"
	"github.com/hanifradityo/auth-service/internal/auth/token"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient, err := db.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenCache := cache.NewTokenCache(redisClient)
	hasher := crypto.NewHasher(cfg.HashIterations)
	codec := token.NewCodec(cfg.AccessTokenSecret, time.Duration(cfg.AccessTokenTTL)*time.Second)
	authService := service.NewAuthService(userRepo, tokenCache, hasher, codec, cfg, logger)
	authHandler := handler.NewAuthHandler(authService)

	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@hourly", func() {
		_ = authService.SweepExpiredRefreshTokens(context.Background())
	}); err != nil {
		logger.Fatal("failed to schedule refresh token sweep", zap.Error(err))
	}
	sweeper.Start()
	defer sweeper.Stop()

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("auth service listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
