package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRedisCache(client, ttl), mr
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache, _ := setupTestRedis(t, time.Minute)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	lines := []domain.CartLine{
		{ID: "line-1", UserID: "u1", ProductID: "tee-classic", Quantity: 2, Size: "M", Color: "black", CreatedAt: now, UpdatedAt: now},
		{ID: "line-2", UserID: "u1", ProductID: "cap-logo", Quantity: 1, CreatedAt: now, UpdatedAt: now},
	}

	require.NoError(t, cache.Set(ctx, "u1", lines))

	got, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].UserID)
	assert.Equal(t, "tee-classic", got[0].ProductID)
	assert.EqualValues(t, 2, got[0].Quantity)
	assert.True(t, got[0].CreatedAt.Equal(now))
	assert.Equal(t, "", got[1].Size)
}

func TestRedisCache_EmptyCartIsCached(t *testing.T) {
	cache, _ := setupTestRedis(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "u1", nil))

	got, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisCache_Miss(t *testing.T) {
	cache, _ := setupTestRedis(t, time.Minute)

	_, err := cache.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_InvalidPayload(t *testing.T) {
	cache, mr := setupTestRedis(t, time.Minute)

	require.NoError(t, mr.Set(cacheKey("u1"), `[{"id":`))

	_, err := cache.Get(context.Background(), "u1")
	require.ErrorContains(t, err, "unmarshal cart failed")
}

func TestRedisCache_TTLWithJitter(t *testing.T) {
	cache, mr := setupTestRedis(t, 10*time.Minute)

	require.NoError(t, cache.Set(context.Background(), "u1", []domain.CartLine{{ID: "line-1"}}))

	ttl := mr.TTL(cacheKey("u1"))
	assert.GreaterOrEqual(t, ttl, 10*time.Minute)
	assert.Less(t, ttl, 12*time.Minute)

	mr.FastForward(13 * time.Minute)
	_, err := cache.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr := setupTestRedis(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "u1", []domain.CartLine{{ID: "line-1"}}))
	require.NoError(t, cache.Delete(ctx, "u1"))
	assert.False(t, mr.Exists(cacheKey("u1")))

	// Удаление отсутствующего ключа не ошибка.
	require.NoError(t, cache.Delete(ctx, "u1"))
}

func TestRedisCache_UnavailableServer(t *testing.T) {
	cache, mr := setupTestRedis(t, time.Minute)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cache.Get(ctx, "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	require.Error(t, cache.Ping(ctx))
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c CartCache = Nop{}

	require.NoError(t, c.Set(ctx, "u1", []domain.CartLine{{ID: "x"}}))
	_, err := c.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	require.NoError(t, c.Delete(ctx, "u1"))
}
