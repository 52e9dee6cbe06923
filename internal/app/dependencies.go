package app

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
)

// runtimeDependencies — репозитории выбранного хранилища и его health-проверка.
type runtimeDependencies struct {
	cartRepo        domain.CartRepository
	catalog         domain.ProductCatalog
	repo            domain.OrderRepository
	outboxRepo      domain.OutboxRepository
	timelineRepo    domain.TimelineRepository
	idempotencyRepo domain.IdempotencyRepository
	storageChecker  healthcheck.Checker
	closeFn         func() error
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch driver {
	case "", StorageDriverMemory:
		return initMemoryDependencies(cfg, logger), nil
	case StorageDriverPostgres:
		return initPostgresDependencies(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func initMemoryDependencies(cfg Config, logger *log.Entry) *runtimeDependencies {
	store := memory.NewStore()

	var products []domain.Product
	if cfg.SeedDemoCatalog {
		products = memory.DemoProducts()
	}
	logger.WithField("products", len(products)).Info("using in-memory storage")

	return &runtimeDependencies{
		cartRepo:        memory.NewCartRepository(store),
		catalog:         memory.NewCatalog(products...),
		repo:            memory.NewOrderRepository(store),
		outboxRepo:      memory.NewOutboxRepository(store),
		timelineRepo:    memory.NewTimelineRepository(store),
		idempotencyRepo: memory.NewIdempotencyRepository(),
		storageChecker: healthcheck.NewSimpleChecker("storage", func(context.Context) error {
			return nil
		}),
	}
}

func initPostgresDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	dsn := strings.TrimSpace(cfg.PostgresDSN)
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required for storage driver %q", StorageDriverPostgres)
	}

	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if cfg.PostgresAutoMigrate {
		if err := store.MigrateUp(ctx, 0); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("postgres migrations applied")
	}

	catalog := postgres.NewCatalog(store)
	if cfg.SeedDemoCatalog {
		for _, p := range memory.DemoProducts() {
			if err := catalog.Upsert(ctx, p); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("seed demo catalog: %w", err)
			}
		}
	}
	logger.Info("using postgres storage")

	return &runtimeDependencies{
		cartRepo:        postgres.NewCartRepository(store),
		catalog:         catalog,
		repo:            postgres.NewOrderRepository(store),
		outboxRepo:      postgres.NewOutboxRepository(store),
		timelineRepo:    postgres.NewTimelineRepository(store),
		idempotencyRepo: postgres.NewIdempotencyRepository(store),
		storageChecker:  healthcheck.NewSimpleChecker("storage", store.Ping),
		closeFn:         store.Close,
	}, nil
}

func (d *runtimeDependencies) close(logger *log.Entry) {
	if d == nil || d.closeFn == nil {
		return
	}
	if err := d.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close storage")
	}
}
