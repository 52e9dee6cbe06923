package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func enqueueForTest(t *testing.T, store *Store, msgs ...domain.OutboxMessage) {
	t.Helper()

	err := NewOrderRepository(store).RunInTransaction(context.Background(), func(ctx context.Context, tx domain.OrderTx) error {
		for _, msg := range msgs {
			if err := tx.EnqueueOutbox(ctx, msg); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestOutboxRepository_PostgresClaimAndSettle(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOutboxRepository(store)
	ctx := context.Background()

	enqueueForTest(t, store,
		domain.OutboxMessage{
			AggregateType: domain.AggregateOrder,
			AggregateID:   "order-1",
			EventType:     domain.EventOrderCreated,
			Payload:       []byte(`{"order_id":"order-1"}`),
		},
		domain.OutboxMessage{
			ID:            "outbox-fixed-id",
			AggregateType: domain.AggregateOrder,
			AggregateID:   "order-2",
			EventType:     domain.EventOrderStatusChanged,
			Payload:       []byte(`{"order_id":"order-2"}`),
		},
	)

	claimed, err := repo.PullPending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, claimed, 2)
	assert.NotEmpty(t, claimed[0].ID)
	assert.False(t, claimed[0].CreatedAt.IsZero())

	again, err := repo.PullPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, again, "claimed rows stay hidden until the lease expires")

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingCount)
	assert.False(t, stats.OldestPendingAt.IsZero())

	for _, msg := range claimed {
		if msg.ID == "outbox-fixed-id" {
			require.NoError(t, repo.MarkFailed(ctx, msg.ID))
			continue
		}
		require.NoError(t, repo.MarkSent(ctx, msg.ID))
	}

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.PendingCount)
}

func TestOutboxRepository_PostgresExpiredLeaseIsReclaimed(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOutboxRepository(store).(*outboxRepository)
	ctx := context.Background()

	enqueueForTest(t, store, domain.OutboxMessage{
		ID:            "lease-1",
		AggregateType: domain.AggregateOrder,
		AggregateID:   "order-1",
		EventType:     domain.EventOrderCreated,
		Payload:       []byte(`{}`),
	})

	first, err := repo.PullPending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Реплика, забравшая сообщение, «упала»; другая видит его после истечения аренды.
	later := time.Now().UTC().Add(outboxClaimTTL + time.Second)
	repo.now = func() time.Time { return later }

	second, err := repo.PullPending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "lease-1", second[0].ID)
}

func TestOutboxRepository_PostgresSettleUnknownID(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOutboxRepository(store)
	ctx := context.Background()

	assert.ErrorIs(t, repo.MarkSent(ctx, "missing-outbox"), domain.ErrOutboxPublish)
	assert.ErrorIs(t, repo.MarkFailed(ctx, "missing-outbox"), domain.ErrOutboxPublish)
}
