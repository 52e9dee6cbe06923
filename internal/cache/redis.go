package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	defaultTTL = 15 * time.Minute
	keyPrefix  = "storefront:cart:"
)

// RedisCache — CartCache поверх Redis. К базовому TTL добавляется джиттер,
// чтобы записи разных пользователей не истекали одновременно.
type RedisCache struct {
	client  redis.UniversalClient
	baseTTL time.Duration
	jitter  time.Duration
}

// NewRedisCache создаёт кэш; ttl<=0 означает значение по умолчанию.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{
		client:  client,
		baseTTL: ttl,
		jitter:  ttl / 5,
	}
}

type cachedLine struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *RedisCache) Get(ctx context.Context, userID string) ([]domain.CartLine, error) {
	data, err := r.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cached []cachedLine
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(cached))
	for _, c := range cached {
		lines = append(lines, domain.CartLine{
			ID:        c.ID,
			UserID:    userID,
			ProductID: c.ProductID,
			Quantity:  c.Quantity,
			Size:      c.Size,
			Color:     c.Color,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return lines, nil
}

func (r *RedisCache) Set(ctx context.Context, userID string, lines []domain.CartLine) error {
	cached := make([]cachedLine, 0, len(lines))
	for _, l := range lines {
		cached = append(cached, cachedLine{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		})
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := r.client.Set(ctx, cacheKey(userID), payload, r.ttl()).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// Ping проверяет доступность Redis для readiness-проверки.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) ttl() time.Duration {
	if r.jitter <= 0 {
		return r.baseTTL
	}
	return r.baseTTL + time.Duration(rand.Int63n(int64(r.jitter)))
}

func cacheKey(userID string) string {
	return keyPrefix + userID
}

var (
	_ CartCache = (*RedisCache)(nil)
	_ CartCache = Nop{}
)
