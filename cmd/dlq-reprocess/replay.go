package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
)

// Причины пропуска записи DLQ.
const (
	skipForeign    = "foreign"
	skipMalformed  = "malformed"
	skipUnroutable = "unroutable"
	skipFiltered   = "filtered"
)

// offsetReader реализуется sarama.Client.
type offsetReader interface {
	Partitions(topic string) ([]int32, error)
	GetOffset(topic string, partition int32, at int64) (int64, error)
}

// partitionOpener реализуется sarama.Consumer.
type partitionOpener interface {
	ConsumePartition(topic string, partition int32, offset int64) (sarama.PartitionConsumer, error)
}

// sink получает восстановленные события.
type sink interface {
	deliver(rec replayRecord) error
}

// logSink используется в dry-run: печатает кандидатов и ничего не публикует.
type logSink struct {
	logger *log.Entry
}

func (s logSink) deliver(rec replayRecord) error {
	s.logger.WithFields(log.Fields{
		"origin":     rec.origin,
		"topic":      rec.topic,
		"key":        rec.key,
		"event_type": rec.eventType,
	}).Info("dlq replay candidate")
	return nil
}

// producerSink публикует события обратно в рабочие топики.
type producerSink struct {
	producer sarama.SyncProducer
}

func (s producerSink) deliver(rec replayRecord) error {
	msg := &sarama.ProducerMessage{
		Topic:     rec.topic,
		Key:       sarama.StringEncoder(rec.key),
		Value:     sarama.ByteEncoder(rec.value),
		Timestamp: time.Now().UTC(),
	}
	if rec.eventType != "" {
		msg.Headers = []sarama.RecordHeader{{Key: []byte(kafka.HeaderEventType), Value: []byte(rec.eventType)}}
	}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("publish to %s: %w", rec.topic, err)
	}
	return nil
}

// report — итог прохода по DLQ.
type report struct {
	scanned  int
	replayed map[string]int
	skipped  map[string]int
}

func newReport() *report {
	return &report{replayed: make(map[string]int), skipped: make(map[string]int)}
}

func (r *report) total(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

func (r *report) fields() log.Fields {
	fields := log.Fields{
		"scanned":  r.scanned,
		"replayed": r.total(r.replayed),
		"skipped":  r.total(r.skipped),
	}
	for topic, n := range r.replayed {
		fields["to."+topic] = n
	}
	for reason, n := range r.skipped {
		fields["skip."+reason] = n
	}
	return fields
}

type replayer struct {
	cfg     config
	offsets offsetReader
	opener  partitionOpener
	sink    sink
	logger  *log.Entry
	now     func() time.Time
}

// run проходит партиции DLQ по возрастанию номера, пока не исчерпан cfg.limit.
func (r *replayer) run(ctx context.Context) (*report, error) {
	rep := newReport()

	partitions, err := r.offsets.Partitions(r.cfg.sourceTopic)
	if err != nil {
		return rep, fmt.Errorf("list partitions of %s: %w", r.cfg.sourceTopic, err)
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i] < partitions[j] })

	for _, partition := range partitions {
		budget := r.cfg.limit - rep.scanned
		if budget <= 0 {
			break
		}
		if err := r.drain(ctx, partition, budget, rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// drain читает партицию от начала окна до offset, который был последним на момент запуска.
// Сообщения, записанные в DLQ во время прохода, не читаются.
func (r *replayer) drain(ctx context.Context, partition int32, budget int, rep *report) error {
	first, end, err := r.window(partition, budget)
	if err != nil || first >= end {
		return err
	}

	pc, err := r.opener.ConsumePartition(r.cfg.sourceTopic, partition, first)
	if err != nil {
		return fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer func() { _ = pc.Close() }()

	idle := time.NewTimer(r.cfg.idleTimeout)
	defer idle.Stop()

	for read := 0; read < budget; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle.C:
			r.logger.WithField("partition", partition).Warn("dlq partition went idle before reaching its end offset")
			return nil
		case cerr, ok := <-pc.Errors():
			if ok && cerr != nil {
				return fmt.Errorf("partition %d: %w", partition, cerr)
			}
		case msg, ok := <-pc.Messages():
			if !ok || msg == nil || msg.Offset >= end {
				return nil
			}
			resetTimer(idle, r.cfg.idleTimeout)

			read++
			rep.scanned++
			if err := r.handle(msg, rep); err != nil {
				return err
			}
			if msg.Offset+1 >= end {
				return nil
			}
		}
	}
	return nil
}

func (r *replayer) window(partition int32, budget int) (int64, int64, error) {
	oldest, err := r.offsets.GetOffset(r.cfg.sourceTopic, partition, sarama.OffsetOldest)
	if err != nil {
		return 0, 0, fmt.Errorf("oldest offset of partition %d: %w", partition, err)
	}
	newest, err := r.offsets.GetOffset(r.cfg.sourceTopic, partition, sarama.OffsetNewest)
	if err != nil {
		return 0, 0, fmt.Errorf("newest offset of partition %d: %w", partition, err)
	}

	first := oldest
	if r.cfg.fromNewest && newest-int64(budget) > oldest {
		first = newest - int64(budget)
	}
	return first, newest, nil
}

func (r *replayer) handle(msg *sarama.ConsumerMessage, rep *report) error {
	entry := r.logger.WithFields(log.Fields{"partition": msg.Partition, "offset": msg.Offset})

	rec, err := decodeDLQ(msg.Value, r.cfg.targetTopic, r.now())
	switch {
	case errors.Is(err, errNotDLQRecord):
		rep.skipped[skipForeign]++
		return nil
	case errors.Is(err, kafka.ErrUnknownEventType):
		rep.skipped[skipUnroutable]++
		entry.WithError(err).Warn("skip dlq record without a route")
		return nil
	case err != nil:
		rep.skipped[skipMalformed]++
		entry.WithError(err).Warn("skip malformed dlq record")
		return nil
	}

	if len(r.cfg.eventTypes) > 0 && !r.cfg.eventTypes[rec.eventType] {
		rep.skipped[skipFiltered]++
		return nil
	}

	if err := r.sink.deliver(rec); err != nil {
		return fmt.Errorf("replay offset %d of partition %d: %w", msg.Offset, msg.Partition, err)
	}
	rep.replayed[rec.topic]++
	return nil
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
