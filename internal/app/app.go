package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/vladislavdragonenkov/storefront/internal/cache"
	"github.com/vladislavdragonenkov/storefront/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/cart"
	grpcsvc "github.com/vladislavdragonenkov/storefront/internal/service/grpc"
	"github.com/vladislavdragonenkov/storefront/internal/service/idempotency"
	"github.com/vladislavdragonenkov/storefront/internal/service/ordering"
	"github.com/vladislavdragonenkov/storefront/internal/service/outbox"
	"github.com/vladislavdragonenkov/storefront/internal/version"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

const grpcStopTimeout = 5 * time.Second

// Run поднимает сервис и блокируется до отмены ctx или остановки gRPC-сервера.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := log.WithFields(version.Fields()).WithField("component", "app")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close(logger)

	checkoutMetrics := metrics.NewCheckoutMetrics()

	cartOptions := []cart.Option{
		cart.WithMetrics(checkoutMetrics),
		cart.WithLogger(logger.WithField("layer", "cart")),
	}
	redisCache, redisClient := initCartCache(ctx, cfg.RedisAddr, cfg.CartCacheTTL, logger)
	defer closeRedis(redisClient, logger)
	if redisCache != nil {
		cartOptions = append(cartOptions, cart.WithCache(redisCache))
	}
	carts := cart.NewStore(deps.cartRepo, deps.catalog, cartOptions...)

	retryCfg := ordering.DefaultRetryConfig()
	retryCfg.MaxAttempts = cfg.CheckoutMaxAttempts
	workflow := ordering.NewWorkflow(deps.repo, carts, deps.catalog,
		ordering.WithRetry(retryCfg),
		ordering.WithMetrics(checkoutMetrics),
		ordering.WithLogger(logger.WithField("layer", "ordering")),
	)

	kafkaProducer, kafkaErr := initKafkaProducer(cfg.KafkaBrokers, logger)
	defer closeKafka(kafkaProducer, logger)

	var invalidationConsumer *kafka.Consumer
	if kafkaProducer != nil {
		invalidationConsumer, err = startCacheInvalidationConsumer(ctx, cfg.KafkaBrokers, cfg.KafkaConsumerGroup, carts, kafkaProducer, logger)
		if err != nil {
			logger.WithError(err).Warn("cart cache invalidation consumer is disabled")
		}
	}
	defer stopConsumer(invalidationConsumer, logger)

	publisher, dlqPublisher := outboxPublishers(kafkaProducer, logger)
	outboxWorker := outbox.NewWorker(deps.outboxRepo, publisher,
		outbox.WithLogger(logger.WithField("worker", "outbox")),
		outbox.WithDLQPublisher(dlqPublisher),
		outbox.WithMetrics(checkoutMetrics),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
	)
	outboxRunner := startWorker(ctx, "outbox", outboxWorker.Run, logger)
	defer outboxRunner.stop(logger)

	sweeper := idempotency.NewSweeper(deps.idempotencyRepo, idempotency.SweeperConfig{
		Interval:  cfg.IdempotencyCleanupInterval,
		BatchSize: cfg.IdempotencyCleanupBatchSize,
	}, logger.WithField("worker", "idempotency-sweeper"))
	cleanupRunner := startWorker(ctx, "idempotency-sweeper", sweeper.Run, logger)
	defer cleanupRunner.stop(logger)

	guard := idempotency.NewGuard(deps.idempotencyRepo,
		idempotency.WithTTL(cfg.IdempotencyTTL),
		idempotency.WithGuardLogger(logger.WithField("layer", "idempotency")),
	)
	service := grpcsvc.NewStorefrontService(carts, workflow,
		grpcsvc.WithTimeline(deps.timelineRepo),
		grpcsvc.WithIdempotency(guard),
		grpcsvc.WithLogger(logger.WithField("layer", "grpc")),
	)

	grpcServer, healthServer := newGRPCServer(service, logger)

	healthHandler := newHealthHandler(cfg, deps, redisCache, kafkaProducer, kafkaErr)
	ops, err := startOpsServer(cfg.MetricsAddr, healthHandler, logger.WithField("server", "ops"))
	if err != nil {
		return err
	}
	defer ops.Shutdown()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", lis.Addr())
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		stopGRPCServer(grpcServer, logger)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// newGRPCServer создаёт сервер с prometheus-интерсепторами, health и reflection.
func newGRPCServer(service storefrontv1.StorefrontServiceServer, logger *log.Entry) (*grpc.Server, *health.Server) {
	grpcMetrics := promgrpc.NewServerMetrics()
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	storefrontv1.RegisterStorefrontServiceServer(grpcServer, service)
	grpcMetrics.InitializeMetrics(grpcServer)

	// reflection отдаёт дескриптор storefront.proto для grpcurl.
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(storefrontv1.StorefrontService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return grpcServer, healthServer
}

func stopGRPCServer(grpcServer *grpc.Server, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(grpcStopTimeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		grpcServer.Stop()
	}
}

// newHealthHandler регистрирует проверки компонентов: хранилище критично, остальное деградирует сервис.
func newHealthHandler(cfg Config, deps *runtimeDependencies, redisCache *cache.RedisCache, producer *kafka.Producer, kafkaErr error) *healthcheck.Handler {
	handler := healthcheck.NewHandler(version.GetVersion())
	handler.RegisterChecker("storage", deps.storageChecker)

	if redisCache != nil {
		handler.RegisterOptional("redis", healthcheck.NewSimpleChecker("redis", redisCache.Ping))
	}
	if cfg.KafkaBrokers != "" {
		handler.RegisterOptional("kafka", healthcheck.NewSimpleChecker("kafka", func(context.Context) error {
			if producer == nil && kafkaErr != nil {
				return fmt.Errorf("kafka producer unavailable: %w", kafkaErr)
			}
			return nil
		}))
	}
	if cfg.OutboxMaxPending > 0 {
		handler.RegisterOptional("outbox", outboxBacklogChecker(deps.outboxRepo, cfg.OutboxMaxPending))
	}
	return handler
}

// outboxBacklogChecker сообщает о накоплении неопубликованных событий.
func outboxBacklogChecker(repo domain.OutboxRepository, maxPending int) healthcheck.Checker {
	return healthcheck.NewSimpleChecker("outbox", func(ctx context.Context) error {
		stats, err := repo.Stats(ctx)
		if err != nil {
			return err
		}
		if stats.PendingCount > maxPending {
			return fmt.Errorf("outbox backlog %d exceeds %d", stats.PendingCount, maxPending)
		}
		return nil
	})
}
