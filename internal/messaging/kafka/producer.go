package kafka

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/version"
)

const (
	defaultClientID = "storefront"
	// HeaderProducer указывает сборку сервиса, записавшую сообщение.
	HeaderProducer = "x-producer"

	outcomeSent = "sent"
)

var producedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_kafka_produced_total",
	Help: "Kafka messages sent by the service grouped by topic and outcome.",
}, []string{"topic", "outcome"})

// Producer публикует сообщения синхронно: ошибка возвращается, пока брокер не подтвердил запись.
type Producer struct {
	sync   sarama.SyncProducer
	logger *log.Entry
	now    func() time.Time
	origin []byte
}

// NewProducer подключается к брокерам с конфигурацией NewProducerConfig.
func NewProducer(brokers []string) (*Producer, error) {
	sync, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer to %v: %w", brokers, err)
	}
	return NewProducerFromSync(sync, nil), nil
}

// NewProducerConfig: подтверждение всеми ISR, идемпотентная запись, один запрос в полёте.
func NewProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = defaultClientID
	cfg.Version = sarama.V2_8_0_0

	cfg.Producer.Idempotent = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

// NewProducerFromSync оборачивает готовый sarama.SyncProducer (в тестах mocks.SyncProducer).
func NewProducerFromSync(sync sarama.SyncProducer, logger *log.Entry) *Producer {
	if logger == nil {
		logger = log.WithField("component", "kafka-producer")
	}
	return &Producer{
		sync:   sync,
		logger: logger,
		now:    time.Now,
		origin: []byte(version.UserAgent("service")),
	}
}

// PublishEvent кодирует event в JSON и отправляет его.
func (p *Producer) PublishEvent(topic, key string, event any, headers ...sarama.RecordHeader) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %T for %s: %w", event, topic, err)
	}
	return p.PublishRaw(topic, key, value, headers...)
}

// PublishRaw отправляет готовое значение. Заголовок x-producer добавляется, если его нет.
func (p *Producer) PublishRaw(topic, key string, value []byte, headers ...sarama.RecordHeader) error {
	msg := p.message(topic, key, value, headers)
	fields := log.Fields{"topic": topic, "key": key}

	partition, offset, err := p.sync.SendMessage(msg)
	if err != nil {
		producedTotal.WithLabelValues(topic, outcomeFailed).Inc()
		p.logger.WithError(err).WithFields(fields).Error("kafka send failed")
		return fmt.Errorf("send to %s: %w", topic, err)
	}

	producedTotal.WithLabelValues(topic, outcomeSent).Inc()
	fields["partition"], fields["offset"] = partition, offset
	p.logger.WithFields(fields).Debug("kafka message sent")
	return nil
}

func (p *Producer) message(topic, key string, value []byte, headers []sarama.RecordHeader) *sarama.ProducerMessage {
	all := make([]sarama.RecordHeader, 0, len(headers)+1)
	all = append(all, headers...)
	if !hasHeader(all, HeaderProducer) {
		all = append(all, sarama.RecordHeader{Key: []byte(HeaderProducer), Value: p.origin})
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Value:     sarama.ByteEncoder(value),
		Headers:   all,
		Timestamp: p.now().UTC(),
	}
	// Пустой ключ отдаёт выбор партиции partitioner'у.
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	return msg
}

func hasHeader(headers []sarama.RecordHeader, key string) bool {
	for _, h := range headers {
		if bytes.Equal(h.Key, []byte(key)) {
			return true
		}
	}
	return false
}

// Close дожидается отправки буфера и закрывает соединения.
func (p *Producer) Close() error {
	if err := p.sync.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}
