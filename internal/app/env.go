package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix — общий префикс переменных окружения сервиса.
const EnvPrefix = "STOREFRONT_"

// envBinding связывает переменную окружения с полем Config.
type envBinding struct {
	name  string
	apply func(cfg *Config, raw string) error
}

func text(field func(*Config) *string) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		*field(cfg) = raw
		return nil
	}
}

func lowerText(field func(*Config) *string) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		*field(cfg) = strings.ToLower(raw)
		return nil
	}
}

func boolean(field func(*Config) *bool) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		switch strings.ToLower(raw) {
		case "1", "true", "yes", "on":
			*field(cfg) = true
		case "0", "false", "no", "off":
			*field(cfg) = false
		default:
			return fmt.Errorf("invalid bool value %q", raw)
		}
		return nil
	}
}

func atLeast(field func(*Config) *int, lowest int) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		if v < lowest {
			return fmt.Errorf("must be >= %d", lowest)
		}
		*field(cfg) = v
		return nil
	}
}

func span(field func(*Config) *time.Duration, allowZero bool) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		switch {
		case v < 0:
			return errors.New("must be >= 0")
		case v == 0 && !allowZero:
			return errors.New("must be > 0")
		}
		*field(cfg) = v
		return nil
	}
}

var envBindings = []envBinding{
	{"GRPC_ADDR", text(func(c *Config) *string { return &c.GRPCAddr })},
	{"METRICS_ADDR", text(func(c *Config) *string { return &c.MetricsAddr })},
	{"LOG_LEVEL", lowerText(func(c *Config) *string { return &c.LogLevel })},
	{"LOG_FORMAT", lowerText(func(c *Config) *string { return &c.LogFormat })},
	{"STORAGE_DRIVER", lowerText(func(c *Config) *string { return &c.StorageDriver })},
	{"POSTGRES_DSN", text(func(c *Config) *string { return &c.PostgresDSN })},
	{"POSTGRES_AUTO_MIGRATE", boolean(func(c *Config) *bool { return &c.PostgresAutoMigrate })},
	{"SEED_DEMO_CATALOG", boolean(func(c *Config) *bool { return &c.SeedDemoCatalog })},
	{"REDIS_ADDR", text(func(c *Config) *string { return &c.RedisAddr })},
	{"CART_CACHE_TTL", span(func(c *Config) *time.Duration { return &c.CartCacheTTL }, false)},
	{"KAFKA_BROKERS", text(func(c *Config) *string { return &c.KafkaBrokers })},
	{"KAFKA_CONSUMER_GROUP", text(func(c *Config) *string { return &c.KafkaConsumerGroup })},
	{"OUTBOX_POLL_INTERVAL", span(func(c *Config) *time.Duration { return &c.OutboxPollInterval }, false)},
	{"OUTBOX_BATCH_SIZE", atLeast(func(c *Config) *int { return &c.OutboxBatchSize }, 1)},
	{"OUTBOX_MAX_ATTEMPTS", atLeast(func(c *Config) *int { return &c.OutboxMaxAttempts }, 1)},
	{"OUTBOX_RETRY_DELAY", span(func(c *Config) *time.Duration { return &c.OutboxRetryDelay }, true)},
	{"OUTBOX_MAX_PENDING", atLeast(func(c *Config) *int { return &c.OutboxMaxPending }, 0)},
	{"IDEMPOTENCY_TTL", span(func(c *Config) *time.Duration { return &c.IdempotencyTTL }, false)},
	{"IDEMPOTENCY_CLEANUP_INTERVAL", span(func(c *Config) *time.Duration { return &c.IdempotencyCleanupInterval }, false)},
	{"IDEMPOTENCY_CLEANUP_BATCH_SIZE", atLeast(func(c *Config) *int { return &c.IdempotencyCleanupBatchSize }, 1)},
	{"CHECKOUT_MAX_ATTEMPTS", atLeast(func(c *Config) *int { return &c.CheckoutMaxAttempts }, 1)},
}

// LoadConfig накладывает переменные окружения STOREFRONT_* на DefaultConfig.
// Некорректное значение не прерывает загрузку: поле сохраняет значение по умолчанию,
// а в warnings попадает описание проблемы.
func LoadConfig(lookup func(string) (string, bool)) (cfg Config, warnings []string) {
	cfg = DefaultConfig()
	for _, b := range envBindings {
		key := EnvPrefix + b.name
		raw, ok := lookup(key)
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			continue
		}
		if err := b.apply(&cfg, raw); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s=%q ignored: %v", key, raw, err))
		}
	}
	return cfg, warnings
}
