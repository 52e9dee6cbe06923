package kafka

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	defaultConsumerRetries    = 3
	defaultConsumerRetryDelay = 100 * time.Millisecond
)

// Исходы обработки сообщения для метрики storefront_kafka_consumed_total.
const (
	outcomeHandled = "handled"
	outcomeDLQ     = "dlq"
	outcomeFailed  = "failed"
)

var consumedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_kafka_consumed_total",
	Help: "Consumed Kafka messages grouped by topic and outcome.",
}, []string{"topic", "outcome"})

// ErrPermanent помечает ошибку, повтор которой бессмысленен: сообщение сразу уходит в DLQ.
var ErrPermanent = errors.New("permanent message failure")

// Permanent оборачивает err в ErrPermanent.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// MessageHandler обрабатывает сообщение из Kafka.
type MessageHandler func(ctx context.Context, message *sarama.ConsumerMessage) error

// HandleOrderEvents адаптирует обработчик событий заказа к MessageHandler.
// Нераспознанное сообщение считается постоянной ошибкой.
func HandleOrderEvents(fn func(ctx context.Context, event domain.OrderEvent) error) MessageHandler {
	return func(ctx context.Context, message *sarama.ConsumerMessage) error {
		event, err := ParseOrderEvent(message)
		if err != nil {
			return Permanent(err)
		}
		return fn(ctx, event)
	}
}

// ConsumerOption настраивает Consumer.
type ConsumerOption func(*Consumer)

// WithDeadLetters включает отправку необработанных сообщений в TopicDeadLetterQueue.
func WithDeadLetters(producer *Producer) ConsumerOption {
	return func(c *Consumer) { c.dlq = producer }
}

// WithMaxRetries задаёт общее число попыток обработки, включая ранее сделанные (заголовок x-retry-count).
func WithMaxRetries(n int) ConsumerOption {
	return func(c *Consumer) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryDelay задаёт базовую паузу; перед k-й повторной попыткой ждём delay*2^(k-1).
func WithRetryDelay(delay time.Duration) ConsumerOption {
	return func(c *Consumer) {
		if delay >= 0 {
			c.retryDelay = delay
		}
	}
}

// WithConsumerLogger задаёт logger.
func WithConsumerLogger(logger *log.Entry) ConsumerOption {
	return func(c *Consumer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Consumer читает топики в составе consumer group и повторяет неудачную обработку.
type Consumer struct {
	group      sarama.ConsumerGroup
	topics     []string
	handler    MessageHandler
	dlq        *Producer
	maxRetries int
	retryDelay time.Duration
	logger     *log.Entry
	wg         sync.WaitGroup
}

// NewConsumer подключается к consumer group groupID.
func NewConsumer(brokers []string, groupID string, topics []string, handler MessageHandler, opts ...ConsumerOption) (*Consumer, error) {
	config := sarama.NewConfig()
	config.ClientID = defaultClientID
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer group %s: %w", groupID, err)
	}
	return newConsumer(group, topics, handler, opts...), nil
}

func newConsumer(group sarama.ConsumerGroup, topics []string, handler MessageHandler, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		group:      group,
		topics:     topics,
		handler:    handler,
		maxRetries: defaultConsumerRetries,
		retryDelay: defaultConsumerRetryDelay,
		logger:     log.WithField("component", "kafka-consumer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start запускает чтение в фоне до отмены ctx или Stop.
func (c *Consumer) Start(ctx context.Context) error {
	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		// Consume возвращается при каждом rebalance.
		for ctx.Err() == nil {
			if err := c.group.Consume(ctx, c.topics, c); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				c.logger.WithError(err).Error("consumer group session failed")
			}
		}
	}()
	go func() {
		defer c.wg.Done()
		for err := range c.group.Errors() {
			c.logger.WithError(err).Error("consumer group error")
		}
	}()

	c.logger.WithField("topics", c.topics).Info("kafka consumer started")
	return nil
}

// Stop закрывает группу и ждёт фоновые горутины.
func (c *Consumer) Stop() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("close kafka consumer group: %w", err)
	}
	c.wg.Wait()
	c.logger.Info("kafka consumer stopped")
	return nil
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim обрабатывает сообщения партиции. Offset фиксируется после успешной
// обработки или отправки в DLQ; иначе сообщение будет перечитано после rebalance.
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}

			outcome, err := c.process(ctx, message)
			consumedTotal.WithLabelValues(message.Topic, outcome).Inc()
			if err != nil {
				c.logger.WithError(err).WithFields(log.Fields{
					"topic":     message.Topic,
					"partition": message.Partition,
					"offset":    message.Offset,
				}).Error("message left uncommitted")
				continue
			}
			session.MarkMessage(message, "")
		}
	}
}

// process возвращает исход обработки; ошибка означает, что offset фиксировать нельзя.
func (c *Consumer) process(ctx context.Context, message *sarama.ConsumerMessage) (string, error) {
	done := retryCount(message)
	err := c.handler(ctx, message)

	for attempt := 1; err != nil && !errors.Is(err, ErrPermanent) && done+attempt < c.maxRetries; attempt++ {
		c.logger.WithError(err).WithFields(log.Fields{
			"topic":   message.Topic,
			"attempt": done + attempt,
			"max":     c.maxRetries,
		}).Warn("message processing failed, retrying")

		if waitErr := c.backoff(ctx, attempt); waitErr != nil {
			return outcomeFailed, waitErr
		}
		err = c.handler(ctx, message)
	}
	if err == nil {
		return outcomeHandled, nil
	}

	if c.dlq == nil {
		return outcomeFailed, err
	}
	if dlqErr := c.deadLetter(message, err); dlqErr != nil {
		return outcomeFailed, fmt.Errorf("send to dlq: %w", dlqErr)
	}
	c.logger.WithError(err).WithField("topic", message.Topic).Warn("message moved to dlq")
	return outcomeDLQ, nil
}

func (c *Consumer) backoff(ctx context.Context, attempt int) error {
	if c.retryDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.retryDelay << (attempt - 1))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryCount читает число уже сделанных попыток из заголовка x-retry-count.
func retryCount(message *sarama.ConsumerMessage) int {
	n, err := strconv.Atoi(headerValue(message.Headers, HeaderRetryCount))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ConsumerDLQPayload — формат записи, которую consumer отправляет в DLQ.
type ConsumerDLQPayload struct {
	OriginalTopic     string `json:"original_topic"`
	OriginalPartition int32  `json:"original_partition"`
	OriginalOffset    int64  `json:"original_offset"`
	OriginalKey       string `json:"original_key"`
	OriginalValue     string `json:"original_value"`
	ErrorMessage      string `json:"error_message"`
	FailedAt          string `json:"failed_at"`
	RetryCount        int    `json:"retry_count"`
	Permanent         bool   `json:"permanent,omitempty"`
}

func (c *Consumer) deadLetter(message *sarama.ConsumerMessage, cause error) error {
	failedAt := time.Now().UTC().Format(time.RFC3339)
	attempts := max(retryCount(message), c.maxRetries)
	permanent := errors.Is(cause, ErrPermanent)
	if permanent {
		attempts = retryCount(message) + 1
	}

	return c.dlq.PublishEvent(TopicDeadLetterQueue, string(message.Key), ConsumerDLQPayload{
		OriginalTopic:     message.Topic,
		OriginalPartition: message.Partition,
		OriginalOffset:    message.Offset,
		OriginalKey:       string(message.Key),
		OriginalValue:     string(message.Value),
		ErrorMessage:      cause.Error(),
		FailedAt:          failedAt,
		RetryCount:        attempts,
		Permanent:         permanent,
	},
		sarama.RecordHeader{Key: []byte(HeaderOriginalTopic), Value: []byte(message.Topic)},
		sarama.RecordHeader{Key: []byte(HeaderErrorMessage), Value: []byte(cause.Error())},
		sarama.RecordHeader{Key: []byte(HeaderFailedAt), Value: []byte(failedAt)},
		sarama.RecordHeader{Key: []byte(HeaderRetryCount), Value: []byte(strconv.Itoa(attempts))},
	)
}
