package app

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
)

// consumerMaxRetries — попытки обработки события до отправки в DLQ.
const consumerMaxRetries = 3

func parseBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// initKafkaProducer инициализирует Kafka producer если brokers не пустой.
// Возвращает nil, nil если brokers пустой.
func initKafkaProducer(brokers string, logger *log.Entry) (*kafka.Producer, error) {
	brokerList := parseBrokers(brokers)
	if len(brokerList) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(brokerList)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return nil, err
	}

	logger.WithField("brokers", brokerList).Info("kafka producer initialized")
	return producer, nil
}

// outboxPublishers выбирает публикаторы outbox: Kafka при наличии producer, иначе журнал.
func outboxPublishers(producer *kafka.Producer, logger *log.Entry) (publisher, dlq domain.OutboxPublisher) {
	if producer == nil {
		logPublisher := kafka.NewLogPublisher(logger.WithField("publisher", "log"))
		return logPublisher, logPublisher
	}
	return kafka.NewOutboxPublisher(producer, ""), kafka.NewDLQPublisher(producer)
}

// cartInvalidator сбрасывает кэш корзины пользователя.
type cartInvalidator interface {
	Invalidate(ctx context.Context, userID string)
}

// cacheInvalidationHandler сбрасывает кэш корзины по событию order.created,
// чтобы реплики без локального оформления не отдавали устаревший листинг.
func cacheInvalidationHandler(carts cartInvalidator) kafka.MessageHandler {
	return kafka.HandleOrderEvents(func(ctx context.Context, event domain.OrderEvent) error {
		if event.EventType != domain.EventOrderCreated || event.UserID == "" {
			return nil
		}
		carts.Invalidate(ctx, event.UserID)
		return nil
	})
}

// startCacheInvalidationConsumer подписывается на order.created; обработка идёт в фоне до отмены ctx.
func startCacheInvalidationConsumer(
	ctx context.Context,
	brokers, groupID string,
	carts cartInvalidator,
	dlqProducer *kafka.Producer,
	logger *log.Entry,
) (*kafka.Consumer, error) {
	consumer, err := kafka.NewConsumer(
		parseBrokers(brokers),
		groupID,
		[]string{kafka.TopicOrdersCreated},
		cacheInvalidationHandler(carts),
		kafka.WithDeadLetters(dlqProducer),
		kafka.WithMaxRetries(consumerMaxRetries),
		kafka.WithConsumerLogger(logger.WithField("group", groupID)),
	)
	if err != nil {
		return nil, err
	}

	if err := consumer.Start(ctx); err != nil {
		_ = consumer.Stop()
		return nil, err
	}
	logger.WithField("group", groupID).Info("cart cache invalidation consumer started")
	return consumer, nil
}

// closeKafka закрывает Kafka producer если он не nil.
func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}

	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}

func stopConsumer(consumer *kafka.Consumer, logger *log.Entry) {
	if consumer == nil {
		return
	}
	if err := consumer.Stop(); err != nil {
		logger.WithError(err).Warn("failed to stop kafka consumer")
	}
}
