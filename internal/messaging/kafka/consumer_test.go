package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type stubGroup struct {
	sarama.ConsumerGroup

	mu       sync.Mutex
	sessions int
	consume  func(ctx context.Context, handler sarama.ConsumerGroupHandler) error
	errs     chan error
	closed   bool
}

func newStubGroup(consume func(context.Context, sarama.ConsumerGroupHandler) error) *stubGroup {
	return &stubGroup{consume: consume, errs: make(chan error, 1)}
}

func (g *stubGroup) Consume(ctx context.Context, _ []string, handler sarama.ConsumerGroupHandler) error {
	g.mu.Lock()
	g.sessions++
	closed := g.closed
	g.mu.Unlock()
	if closed {
		return sarama.ErrClosedConsumerGroup
	}
	return g.consume(ctx, handler)
}

func (g *stubGroup) Errors() <-chan error { return g.errs }

func (g *stubGroup) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.closed {
		g.closed = true
		close(g.errs)
	}
	return nil
}

type stubSession struct {
	sarama.ConsumerGroupSession

	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *stubSession) Context() context.Context { return s.ctx }

func (s *stubSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	s.marked = append(s.marked, msg.Offset)
	s.mu.Unlock()
}

type stubClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *stubClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

// consumeAll прогоняет сообщения через ConsumeClaim и возвращает зафиксированные offset'ы.
func consumeAll(t *testing.T, c *Consumer, messages ...*sarama.ConsumerMessage) []int64 {
	t.Helper()

	claim := &stubClaim{messages: make(chan *sarama.ConsumerMessage, len(messages))}
	for _, m := range messages {
		claim.messages <- m
	}
	close(claim.messages)

	session := &stubSession{ctx: context.Background()}
	require.NoError(t, c.ConsumeClaim(session, claim))
	return session.marked
}

func orderMessage(offset int64, headers ...*sarama.RecordHeader) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{
		Topic:     TopicOrdersCreated,
		Partition: 2,
		Offset:    offset,
		Key:       []byte("order-1"),
		Value:     []byte(`{"id":"m-1","event_type":"order.created","payload":{"order_id":"order-1","user_id":"u-1","status":"PENDING"}}`),
		Headers:   headers,
	}
}

func testLogger() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return log.NewEntry(logger)
}

func TestNewConsumerFailsWithoutBrokers(t *testing.T) {
	_, err := NewConsumer([]string{"127.0.0.1:1"}, "group", []string{TopicOrdersCreated},
		func(context.Context, *sarama.ConsumerMessage) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create kafka consumer group")
}

func TestConsumerOptions(t *testing.T) {
	c := newConsumer(newStubGroup(nil), nil, nil,
		WithMaxRetries(0),
		WithRetryDelay(-time.Second),
		WithConsumerLogger(nil),
	)
	assert.Equal(t, defaultConsumerRetries, c.maxRetries)
	assert.Equal(t, defaultConsumerRetryDelay, c.retryDelay)
	assert.NotNil(t, c.logger)

	c = newConsumer(newStubGroup(nil), nil, nil, WithMaxRetries(5), WithRetryDelay(0))
	assert.Equal(t, 5, c.maxRetries)
	assert.Zero(t, c.retryDelay)
}

func TestConsumeClaimCommitsHandledMessages(t *testing.T) {
	var seen []int64
	c := newConsumer(newStubGroup(nil), nil, func(_ context.Context, m *sarama.ConsumerMessage) error {
		seen = append(seen, m.Offset)
		return nil
	}, WithConsumerLogger(testLogger()))

	marked := consumeAll(t, c, orderMessage(10), orderMessage(11))

	assert.Equal(t, []int64{10, 11}, seen)
	assert.Equal(t, []int64{10, 11}, marked)
}

func TestConsumeClaimRetriesUntilSuccess(t *testing.T) {
	calls := 0
	c := newConsumer(newStubGroup(nil), nil, func(context.Context, *sarama.ConsumerMessage) error {
		calls++
		if calls < 3 {
			return errors.New("cache unavailable")
		}
		return nil
	}, WithMaxRetries(3), WithRetryDelay(0), WithConsumerLogger(testLogger()))

	marked := consumeAll(t, c, orderMessage(7))

	assert.Equal(t, 3, calls)
	assert.Equal(t, []int64{7}, marked)
}

func TestConsumeClaimLeavesFailedMessageUncommittedWithoutDLQ(t *testing.T) {
	calls := 0
	c := newConsumer(newStubGroup(nil), nil, func(context.Context, *sarama.ConsumerMessage) error {
		calls++
		return errors.New("still down")
	}, WithMaxRetries(2), WithRetryDelay(0), WithConsumerLogger(testLogger()))

	marked := consumeAll(t, c, orderMessage(3))

	assert.Equal(t, 2, calls)
	assert.Empty(t, marked)
}

func TestConsumeClaimMovesExhaustedMessageToDLQ(t *testing.T) {
	dlq := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, dlq.Close()) }()

	dlq.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != TopicDeadLetterQueue {
			return errors.New("unexpected topic " + msg.Topic)
		}
		raw, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var payload ConsumerDLQPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
		if payload.OriginalTopic != TopicOrdersCreated || payload.OriginalOffset != 4 || payload.OriginalPartition != 2 {
			return errors.New("unexpected origin in dlq payload")
		}
		if payload.RetryCount != 3 || payload.Permanent || payload.ErrorMessage != "redis timeout" {
			return errors.New("unexpected failure details in dlq payload")
		}
		for _, h := range msg.Headers {
			if string(h.Key) == HeaderRetryCount && string(h.Value) != "3" {
				return errors.New("unexpected retry header " + string(h.Value))
			}
		}
		return nil
	})

	calls := 0
	c := newConsumer(newStubGroup(nil), nil, func(context.Context, *sarama.ConsumerMessage) error {
		calls++
		return errors.New("redis timeout")
	},
		WithDeadLetters(NewProducerFromSync(dlq, testLogger())),
		WithMaxRetries(3),
		WithRetryDelay(0),
		WithConsumerLogger(testLogger()),
	)

	marked := consumeAll(t, c, orderMessage(4))

	assert.Equal(t, 3, calls)
	assert.Equal(t, []int64{4}, marked)
}

func TestConsumeClaimHonoursPriorRetryCount(t *testing.T) {
	dlq := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, dlq.Close()) }()
	dlq.ExpectSendMessageAndSucceed()

	calls := 0
	c := newConsumer(newStubGroup(nil), nil, func(context.Context, *sarama.ConsumerMessage) error {
		calls++
		return errors.New("boom")
	},
		WithDeadLetters(NewProducerFromSync(dlq, testLogger())),
		WithMaxRetries(3),
		WithRetryDelay(0),
		WithConsumerLogger(testLogger()),
	)

	retried := &sarama.RecordHeader{Key: []byte(HeaderRetryCount), Value: []byte("2")}
	marked := consumeAll(t, c, orderMessage(5, retried))

	assert.Equal(t, 1, calls)
	assert.Equal(t, []int64{5}, marked)
}

func TestConsumeClaimSendsPermanentFailuresStraightToDLQ(t *testing.T) {
	dlq := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, dlq.Close()) }()

	dlq.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		raw, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var payload ConsumerDLQPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return err
		}
		if !payload.Permanent || payload.RetryCount != 1 || payload.OriginalValue != "not json" {
			return errors.New("unexpected permanent dlq payload")
		}
		return nil
	})

	calls := 0
	handler := HandleOrderEvents(func(context.Context, domain.OrderEvent) error {
		calls++
		return nil
	})
	c := newConsumer(newStubGroup(nil), nil, handler,
		WithDeadLetters(NewProducerFromSync(dlq, testLogger())),
		WithRetryDelay(time.Hour),
		WithConsumerLogger(testLogger()),
	)

	broken := orderMessage(9)
	broken.Value = []byte("not json")
	marked := consumeAll(t, c, broken)

	assert.Zero(t, calls)
	assert.Equal(t, []int64{9}, marked)
}

func TestConsumeClaimKeepsOffsetWhenDLQFails(t *testing.T) {
	dlq := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, dlq.Close()) }()
	dlq.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	c := newConsumer(newStubGroup(nil), nil, func(context.Context, *sarama.ConsumerMessage) error {
		return Permanent(errors.New("bad payload"))
	},
		WithDeadLetters(NewProducerFromSync(dlq, testLogger())),
		WithConsumerLogger(testLogger()),
	)

	assert.Empty(t, consumeAll(t, c, orderMessage(12)))
}

func TestConsumeClaimStopsOnCancelledSession(t *testing.T) {
	c := newConsumer(newStubGroup(nil), nil, func(context.Context, *sarama.ConsumerMessage) error { return nil },
		WithConsumerLogger(testLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	claim := &stubClaim{messages: make(chan *sarama.ConsumerMessage)}
	done := make(chan error, 1)
	go func() { done <- c.ConsumeClaim(&stubSession{ctx: ctx}, claim) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ConsumeClaim did not return after cancellation")
	}
}

func TestBackoffRespectsContext(t *testing.T) {
	c := newConsumer(newStubGroup(nil), nil, nil, WithRetryDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.backoff(ctx, 1), context.Canceled)

	c = newConsumer(newStubGroup(nil), nil, nil, WithRetryDelay(time.Millisecond))
	assert.NoError(t, c.backoff(context.Background(), 2))
}

func TestRetryCountHeader(t *testing.T) {
	header := func(v string) *sarama.RecordHeader {
		return &sarama.RecordHeader{Key: []byte(HeaderRetryCount), Value: []byte(v)}
	}
	assert.Equal(t, 0, retryCount(&sarama.ConsumerMessage{}))
	assert.Equal(t, 4, retryCount(&sarama.ConsumerMessage{Headers: []*sarama.RecordHeader{header("4")}}))
	assert.Equal(t, 0, retryCount(&sarama.ConsumerMessage{Headers: []*sarama.RecordHeader{header("-1")}}))
	assert.Equal(t, 0, retryCount(&sarama.ConsumerMessage{Headers: []*sarama.RecordHeader{header("x")}}))
}

func TestConsumerStartAndStop(t *testing.T) {
	handled := make(chan int64, 1)
	group := newStubGroup(func(ctx context.Context, handler sarama.ConsumerGroupHandler) error {
		session := &stubSession{ctx: ctx}
		claim := &stubClaim{messages: make(chan *sarama.ConsumerMessage, 1)}
		claim.messages <- orderMessage(21)
		close(claim.messages)
		if err := handler.ConsumeClaim(session, claim); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	})
	group.errs <- errors.New("rebalance hiccup")

	c := newConsumer(group, []string{TopicOrdersCreated}, func(_ context.Context, m *sarama.ConsumerMessage) error {
		select {
		case handled <- m.Offset:
		default:
		}
		return nil
	}, WithConsumerLogger(testLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Start(ctx))

	select {
	case offset := <-handled:
		assert.Equal(t, int64(21), offset)
	case <-time.After(time.Second):
		t.Fatal("message was not handled")
	}

	cancel()
	require.NoError(t, c.Stop())
}

func TestHandleOrderEvents(t *testing.T) {
	var got domain.OrderEvent
	handler := HandleOrderEvents(func(_ context.Context, event domain.OrderEvent) error {
		got = event
		return nil
	})

	require.NoError(t, handler(context.Background(), orderMessage(1)))
	assert.Equal(t, "order-1", got.OrderID)
	assert.Equal(t, "u-1", got.UserID)

	err := handler(context.Background(), &sarama.ConsumerMessage{Value: []byte("{")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermanent)
}

func TestPermanentNil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
	assert.ErrorIs(t, Permanent(errors.New("x")), ErrPermanent)
}
