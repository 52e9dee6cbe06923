package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/cache"
)

// initCartCache подключает Redis-кэш листинга корзины. Пустой адрес выключает кэш.
// Недоступный Redis не мешает старту: ошибки кэша только логируются.
func initCartCache(ctx context.Context, addr string, ttl time.Duration, logger *log.Entry) (*cache.RedisCache, *redis.Client) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	redisCache := cache.NewRedisCache(client, ttl)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		logger.WithError(err).WithField("addr", addr).Warn("redis is not reachable, cart cache will retry on demand")
	} else {
		logger.WithField("addr", addr).Info("redis cart cache initialized")
	}

	return redisCache, client
}

func closeRedis(client *redis.Client, logger *log.Entry) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.WithError(err).Warn("failed to close redis client")
	}
}
