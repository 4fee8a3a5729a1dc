package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env           string
	Port          string
	DBURL         string
	RedisAddr     string
	RedisPassword string

	AccessTokenSecret string
	// TTLs are in seconds.
	AccessTokenTTL  int
	RefreshTokenTTL int

	HashIterations int

	// RotateRefreshTokens deletes the presented refresh token when a new pair
	// is minted. Off by default: rotation without revocation is the reference
	// behavior, and concurrent refreshes on one token are tolerated.
	RotateRefreshTokens bool
}

func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DBURL:               mustGetEnv("DB_URL"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		AccessTokenSecret:   mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessTokenTTL:      getEnvAsInt("ACCESS_TOKEN_TTL", 900),
		RefreshTokenTTL:     getEnvAsInt("REFRESH_TOKEN_TTL", 604800),
		HashIterations:      getEnvAsInt("HASH_ITERATIONS", 10000),
		RotateRefreshTokens: getEnvAsBool("ROTATE_REFRESH_TOKENS", false),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
