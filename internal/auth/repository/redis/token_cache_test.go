package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanifradityo/auth-service/internal/auth/domain"
	cache "github.com/hanifradityo/auth-service/internal/auth/repository/redis"
)

func newTestCache(t *testing.T) (*cache.TokenCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewTokenCache(client), mr
}

func testUser() *domain.SanitizedUser {
	return &domain.SanitizedUser{
		ID:        "user-123",
		Email:     "a@x.com",
		Name:      "Alice",
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func TestTokenCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	user := testUser()

	require.NoError(t, c.Set(ctx, "some-access-token", user, 15*time.Minute))

	got, err := c.Get(ctx, "some-access-token")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Name, got.Name)
}

func TestTokenCache_KeyConvention(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "some-access-token", testUser(), 15*time.Minute))

	assert.True(t, mr.Exists("access_token:some-access-token"))
}

func TestTokenCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "never-stored")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTokenCache_EntryExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "some-access-token", testUser(), time.Minute))

	mr.FastForward(2 * time.Minute)

	got, err := c.Get(ctx, "some-access-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTokenCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "some-access-token", testUser(), 15*time.Minute))
	require.NoError(t, c.Delete(ctx, "some-access-token"))

	got, err := c.Get(ctx, "some-access-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTokenCache_DeleteMissingIsNoError(t *testing.T) {
	c, _ := newTestCache(t)

	assert.NoError(t, c.Delete(context.Background(), "never-stored"))
}

func TestTokenCache_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	c := cache.NewTokenCache(client)
	mr.Close()

	_, err := c.Get(context.Background(), "some-access-token")
	assert.Error(t, err)
}
