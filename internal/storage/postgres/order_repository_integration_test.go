package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestOrderRepository_PostgresInsertFindAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	now := time.Now().UTC().Round(time.Microsecond)
	older := sampleOrder("order-1", "customer-1", now.Add(-2*time.Minute))
	newer := sampleOrder("order-2", "customer-1", now.Add(-time.Minute))
	foreign := sampleOrder("order-3", "customer-2", now)
	insertOrderForTest(t, repo, older)
	insertOrderForTest(t, repo, newer)
	insertOrderForTest(t, repo, foreign)

	got, err := repo.FindOrderByID(ctx, older.ID)
	require.NoError(t, err)
	require.Equal(t, older.UserID, got.UserID)
	require.Equal(t, domain.OrderStatusPending, got.Status)
	require.True(t, got.Total.Equal(decimal.RequireFromString("39.98")), "total: %s", got.Total)
	require.Equal(t, older.ShippingAddress, got.ShippingAddress)
	require.Len(t, got.Items, 1)
	require.Equal(t, "Classic Tee", got.Items[0].Product.Name)
	require.Equal(t, "tee.jpg", got.Items[0].Product.Image)
	require.True(t, got.Items[0].Price.Equal(decimal.RequireFromString("19.99")))

	mine, err := repo.ListOrdersForUser(ctx, "customer-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, newer.ID, mine[0].ID)
	require.Equal(t, older.ID, mine[1].ID)

	all, err := repo.ListAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, foreign.ID, all[0].ID)

	_, err = repo.FindOrderByID(ctx, "missing-order")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepository_PostgresDuplicateOrderRollsBack(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	order := sampleOrder("order-dup", "customer-1", time.Now().UTC())
	insertOrderForTest(t, repo, order)

	err := repo.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
		return tx.InsertOrder(ctx, order)
	})
	require.ErrorIs(t, err, domain.ErrDuplicateID)

	orders, err := repo.ListOrdersForUser(ctx, "customer-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestOrderRepository_PostgresStatusUpdateWithTimelineAndOutbox(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)
	timeline := NewTimelineRepository(store)
	outbox := NewOutboxRepository(store)
	ctx := context.Background()

	order := sampleOrder("order-status", "customer-1", time.Now().UTC().Round(time.Microsecond))
	insertOrderForTest(t, repo, order)

	at := order.CreatedAt.Add(time.Minute)
	err := repo.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
		locked, err := tx.LockOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if err := domain.ValidateTransition(locked.Status, domain.OrderStatusProcessing); err != nil {
			return err
		}
		if err := tx.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusProcessing, at); err != nil {
			return err
		}
		if err := tx.AppendTimeline(ctx, domain.TimelineEvent{
			OrderID: order.ID,
			Type:    domain.TimelineStatusChanged,
			Reason:  "PENDING -> PROCESSING",
		}); err != nil {
			return err
		}
		return tx.EnqueueOutbox(ctx, domain.OutboxMessage{
			AggregateType: domain.AggregateOrder,
			AggregateID:   order.ID,
			EventType:     domain.EventOrderStatusChanged,
			Payload:       []byte(`{"order_id":"order-status"}`),
		})
	})
	require.NoError(t, err)

	got, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusProcessing, got.Status)
	require.True(t, got.UpdatedAt.Equal(at))

	events, err := timeline.List(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, domain.TimelineStatusChanged, events[0].Type)

	pending, err := outbox.PullPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, domain.EventOrderStatusChanged, pending[0].EventType)

	err = repo.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
		return tx.UpdateOrderStatus(ctx, "missing-order", domain.OrderStatusShipped, at)
	})
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepository_PostgresFailedTransactionLeavesNoTrace(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedProducts(t, store, sampleProduct("tee-classic", "19.99"))
	carts := NewCartRepository(store)
	repo := NewOrderRepository(store)
	outbox := NewOutboxRepository(store)
	ctx := context.Background()

	line, err := carts.Merge(ctx, domain.CartLine{UserID: "customer-1", ProductID: "tee-classic", Quantity: 1})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
		order := sampleOrder("order-rollback", "customer-1", time.Now().UTC())
		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}
		if _, err := tx.DeleteCartLinesByIDs(ctx, "customer-1", []string{line.ID}); err != nil {
			return err
		}
		if err := tx.EnqueueOutbox(ctx, domain.OutboxMessage{
			AggregateType: domain.AggregateOrder,
			AggregateID:   order.ID,
			EventType:     domain.EventOrderCreated,
			Payload:       []byte(`{}`),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.FindOrderByID(ctx, "order-rollback")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	lines, err := carts.ListByUser(ctx, "customer-1")
	require.NoError(t, err)
	require.Len(t, lines, 1)

	pending, err := outbox.PullPending(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestOrderRepository_PostgresLockCartLinesIsOwnerScoped(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedProducts(t, store, sampleProduct("tee-classic", "19.99"))
	carts := NewCartRepository(store)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	mine, err := carts.Merge(ctx, domain.CartLine{UserID: "owner", ProductID: "tee-classic", Quantity: 1})
	require.NoError(t, err)
	theirs, err := carts.Merge(ctx, domain.CartLine{UserID: "other", ProductID: "tee-classic", Quantity: 1})
	require.NoError(t, err)

	err = repo.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
		locked, err := tx.LockCartLines(ctx, "owner", []string{mine.ID, theirs.ID})
		if err != nil {
			return err
		}
		require.Len(t, locked, 1)
		require.Equal(t, mine.ID, locked[0].ID)

		deleted, err := tx.DeleteCartLinesByIDs(ctx, "owner", []string{mine.ID, theirs.ID})
		if err != nil {
			return err
		}
		require.EqualValues(t, 1, deleted)
		return nil
	})
	require.NoError(t, err)

	left, err := carts.ListByUser(ctx, "other")
	require.NoError(t, err)
	require.Len(t, left, 1)
}

// Две транзакции конкурируют за одни и те же строки корзины: заказ создаётся ровно один,
// проигравшая сторона видит пустую выборку или конфликт сериализации.
func TestOrderRepository_PostgresConcurrentCheckoutSingleWinner(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedProducts(t, store, sampleProduct("tee-classic", "19.99"))
	carts := NewCartRepository(store)
	repo := NewOrderRepository(store)
	ctx := context.Background()

	line, err := carts.Merge(ctx, domain.CartLine{UserID: "racer", ProductID: "tee-classic", Quantity: 2})
	require.NoError(t, err)

	errEmpty := errors.New("nothing locked")
	checkout := func() error {
		return repo.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
			locked, err := tx.LockCartLines(ctx, "racer", []string{line.ID})
			if err != nil {
				return err
			}
			if len(locked) == 0 {
				return errEmpty
			}
			order := sampleOrder(uuid.NewString(), "racer", time.Now().UTC())
			for i := range order.Items {
				order.Items[i].ID = ""
				order.Items[i].OrderID = order.ID
			}
			if err := tx.InsertOrder(ctx, order); err != nil {
				return err
			}
			if err := tx.InsertOrderItems(ctx, order.Items); err != nil {
				return err
			}
			deleted, err := tx.DeleteCartLinesByIDs(ctx, "racer", []string{line.ID})
			if err != nil {
				return err
			}
			if deleted != 1 {
				return domain.ErrCartConflict
			}
			return nil
		})
	}

	const racers = 4
	var wg sync.WaitGroup
	results := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- checkout()
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, errEmpty), domain.IsRetriable(err):
		default:
			t.Fatalf("unexpected checkout error: %v", err)
		}
	}
	require.Equal(t, 1, winners)

	orders, err := repo.ListOrdersForUser(ctx, "racer")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	lines, err := carts.ListByUser(ctx, "racer")
	require.NoError(t, err)
	require.Empty(t, lines)
}
