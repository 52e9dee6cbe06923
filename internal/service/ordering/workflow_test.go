package ordering_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/cart"
	"github.com/vladislavdragonenkov/storefront/internal/service/ordering"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

var admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}

type fixture struct {
	store    *memory.Store
	catalog  *memory.Catalog
	carts    *cart.Store
	orders   domain.OrderRepository
	outbox   *memory.OutboxRepository
	timeline domain.TimelineRepository
	workflow *ordering.Workflow
}

func newFixture(t *testing.T, options ...ordering.Option) *fixture {
	t.Helper()

	st := memory.NewStore()
	f := &fixture{
		store: st,
		catalog: memory.NewCatalog(
			domain.Product{ID: "p1", Name: "Tee", Price: decimal.RequireFromString("10.00"), Images: []string{"tee.jpg"}},
			domain.Product{ID: "p2", Name: "Cap", Price: decimal.RequireFromString("25.00")},
			domain.Product{ID: "p3", Name: "Sticker", Price: decimal.RequireFromString("0.125")},
		),
		orders:   memory.NewOrderRepository(st),
		outbox:   memory.NewOutboxRepository(st),
		timeline: memory.NewTimelineRepository(st),
	}
	f.carts = cart.NewStore(memory.NewCartRepository(st), f.catalog)
	f.workflow = ordering.NewWorkflow(f.orders, f.carts, f.catalog, options...)
	return f
}

func (f *fixture) add(t *testing.T, userID, productID string, qty int32, size, color string) domain.CartLine {
	t.Helper()

	line, err := f.carts.AddItem(context.Background(), cart.AddItemRequest{
		UserID: userID, ProductID: productID, Quantity: qty, Size: size, Color: color,
	})
	require.NoError(t, err)
	return line
}

func checkoutRequest(userID string) ordering.CreateOrderRequest {
	return ordering.CreateOrderRequest{
		UserID: userID,
		ShippingAddress: domain.ShippingAddress{
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Address:    "12 Analytical St",
			City:       "London",
			PostalCode: "N1 9GU",
			Country:    "GB",
			Phone:      "+44 20 0000 0000",
		},
		PaymentMethod: "card",
	}
}

func TestCreateOrder_PricesAtCheckoutAndEmptiesCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "u1", "p1", 2, "M", "black")
	f.add(t, "u1", "p2", 1, "", "")

	order, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("45.00")), "total %s", order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Tee", order.Items[0].Product.Name)
	assert.Equal(t, "tee.jpg", order.Items[0].Product.Image)
	assert.Equal(t, "M", order.Items[0].Size)
	assert.Empty(t, order.ValidateInvariants())

	lines, err := f.carts.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)

	mine, err := f.workflow.ListOrdersForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, order.ID, mine[0].ID)
	assert.Len(t, mine[0].Items, 2)
}

func TestCreateOrder_UsesCurrentPriceNotAddTimePrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "u1", "p1", 3, "", "")
	require.NoError(t, f.catalog.SetPrice("p1", decimal.RequireFromString("12.34")))

	order, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("37.02")))
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("12.34")))
}

func TestCreateOrder_RoundsTotalOnceHalfUp(t *testing.T) {
	f := newFixture(t)

	// 0.125 × 3 = 0.375 → 0.38
	f.add(t, "u1", "p3", 3, "", "")

	order, err := f.workflow.CreateOrder(context.Background(), checkoutRequest("u1"))
	require.NoError(t, err)
	assert.Equal(t, "0.38", order.Total.StringFixed(2))
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("0.125")))
}

func TestCreateOrder_ItemPriceImmutableAfterCatalogChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "u1", "p2", 2, "", "")
	order, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.NoError(t, err)

	require.NoError(t, f.catalog.SetPrice("p2", decimal.RequireFromString("99.99")))

	stored, err := f.workflow.GetOrder(ctx, order.ID, "u1")
	require.NoError(t, err)
	assert.True(t, stored.Items[0].Price.Equal(decimal.RequireFromString("25.00")))
	assert.True(t, stored.Total.Equal(decimal.RequireFromString("50.00")))
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.workflow.CreateOrder(context.Background(), checkoutRequest("u1"))
	require.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.False(t, domain.IsRetriable(err))
}

func TestCreateOrder_Validation(t *testing.T) {
	f := newFixture(t)
	f.add(t, "u1", "p1", 1, "", "")

	noUser := checkoutRequest("")
	_, err := f.workflow.CreateOrder(context.Background(), noUser)
	require.ErrorIs(t, err, domain.ErrUserRequired)

	badAddress := checkoutRequest("u1")
	badAddress.ShippingAddress.City = "   "
	_, err = f.workflow.CreateOrder(context.Background(), badAddress)
	require.ErrorIs(t, err, domain.ErrShippingAddressInvalid)

	noPayment := checkoutRequest("u1")
	noPayment.PaymentMethod = ""
	_, err = f.workflow.CreateOrder(context.Background(), noPayment)
	require.ErrorIs(t, err, domain.ErrPaymentMethodRequired)

	lines, err := f.carts.Lines(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCreateOrder_UnknownProductAbortsWithoutSideEffects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "u1", "p1", 1, "", "")
	f.add(t, "u1", "p2", 1, "", "")
	f.catalog.Remove("p2")

	_, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	lines, err := f.carts.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	orders, err := f.workflow.ListOrdersForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, f.outbox.AllPending())
}

func TestCreateOrder_ConcurrentCheckoutSingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "u1", "p1", 1, "S", "")
	f.add(t, "u1", "p1", 1, "M", "")
	f.add(t, "u1", "p2", 2, "", "")

	const callers = 2
	var (
		wg      sync.WaitGroup
		wins    atomic.Int32
		results = make(chan error, callers)
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
			if err == nil {
				wins.Add(1)
			}
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	for err := range results {
		if err != nil {
			assert.True(t, errors.Is(err, domain.ErrEmptyCart) || domain.IsRetriable(err), "unexpected error: %v", err)
		}
	}
	assert.EqualValues(t, 1, wins.Load())

	orders, err := f.workflow.ListOrdersForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 3)

	lines, err := f.carts.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCreateOrder_DoesNotTouchOtherUsersCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "alice", "p1", 1, "", "")
	f.add(t, "bob", "p1", 4, "", "")

	_, err := f.workflow.CreateOrder(ctx, checkoutRequest("alice"))
	require.NoError(t, err)

	bobLines, err := f.carts.Lines(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobLines, 1)
	assert.EqualValues(t, 4, bobLines[0].Quantity)
}

func TestCreateOrder_WritesOutboxAndTimeline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "u1", "p1", 2, "", "")
	order, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.NoError(t, err)

	pending := f.outbox.AllPending()
	require.Len(t, pending, 1)
	assert.Equal(t, domain.EventOrderCreated, pending[0].EventType)
	assert.Equal(t, order.ID, pending[0].AggregateID)

	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(pending[0].Payload, &event))
	assert.Equal(t, "20.00", event.Total)
	require.Len(t, event.Items, 1)
	assert.Equal(t, "p1", event.Items[0].ProductID)

	events, err := f.timeline.List(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.TimelineOrderCreated, events[0].Type)
}

// failingRepo подменяет транзакцию, чтобы проверить откат и повторы.
type failingRepo struct {
	domain.OrderRepository
	failures atomic.Int32
	failWith func(attempt int32) error
	attempts atomic.Int32
}

func (r *failingRepo) RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx domain.OrderTx) error) error {
	attempt := r.attempts.Add(1)
	return r.OrderRepository.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		if err := r.failWith(attempt); err != nil {
			r.failures.Add(1)
			return err
		}
		return nil
	})
}

func TestCreateOrder_TransactionFailureLeavesNoTrace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	repo := &failingRepo{
		OrderRepository: f.orders,
		failWith: func(int32) error {
			return domain.NewTxError("commit", errors.New("disk full"))
		},
	}
	workflow := ordering.NewWorkflow(repo, f.carts, f.catalog, ordering.WithRetry(ordering.RetryConfig{
		MaxAttempts: 2,
	}))

	f.add(t, "u1", "p1", 1, "", "")
	_, err := workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.ErrorIs(t, err, domain.ErrTransaction)
	assert.True(t, domain.IsRetriable(err))
	assert.EqualValues(t, 2, repo.attempts.Load())

	lines, err := f.carts.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	orders, err := f.orders.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, f.outbox.AllPending())
}

func TestCreateOrder_RetriesConflictThenSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	repo := &failingRepo{
		OrderRepository: f.orders,
		failWith: func(attempt int32) error {
			if attempt == 1 {
				return domain.NewTxConflict("lock cart lines", errors.New("could not serialize access"))
			}
			return nil
		},
	}
	m := metrics.NewCheckoutMetricsWithRegisterer(prometheus.NewRegistry())
	workflow := ordering.NewWorkflow(repo, f.carts, f.catalog,
		ordering.WithMetrics(m),
		ordering.WithRetry(ordering.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}),
	)

	f.add(t, "u1", "p2", 1, "", "")
	order, err := workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, repo.attempts.Load())

	orders, err := f.orders.ListAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCreateOrder_CartChangedBetweenSnapshotAndLockIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	line := f.add(t, "u1", "p1", 1, "", "")

	// Первая попытка: между снимком и транзакцией строку изменили.
	var once sync.Once
	repo := &mutatingRepo{
		OrderRepository: f.orders,
		before: func() {
			once.Do(func() {
				_, err := f.carts.UpdateQuantity(ctx, line.ID, "u1", 5)
				require.NoError(t, err)
			})
		},
	}
	workflow := ordering.NewWorkflow(repo, f.carts, f.catalog, ordering.WithRetry(ordering.RetryConfig{MaxAttempts: 2}))

	order, err := workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.EqualValues(t, 5, order.Items[0].Quantity, "retry must re-snapshot the cart")
	assert.EqualValues(t, 2, repo.calls.Load())
}

type mutatingRepo struct {
	domain.OrderRepository
	before func()
	calls  atomic.Int32
}

func (r *mutatingRepo) RunInTransaction(ctx context.Context, fn func(ctx context.Context, tx domain.OrderTx) error) error {
	r.calls.Add(1)
	r.before()
	return r.OrderRepository.RunInTransaction(ctx, fn)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	newOrder := func() domain.Order {
		f.add(t, "u1", "p1", 1, "", "")
		order, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
		require.NoError(t, err)
		return order
	}

	order := newOrder()
	_, err := f.workflow.UpdateStatus(ctx, order.ID, "SHIPPED", admin)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)

	var transitionErr *domain.TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, domain.OrderStatusPending, transitionErr.From)

	for _, next := range []string{"PROCESSING", "shipped", " Delivered "} {
		order, err = f.workflow.UpdateStatus(ctx, order.ID, next, admin)
		require.NoError(t, err, next)
	}
	assert.Equal(t, domain.OrderStatusDelivered, order.Status)

	for _, next := range []string{"CANCELLED", "PENDING", "PROCESSING"} {
		_, err = f.workflow.UpdateStatus(ctx, order.ID, next, admin)
		require.ErrorIs(t, err, domain.ErrInvalidTransition, next)
	}

	cancelled := newOrder()
	cancelled, err = f.workflow.UpdateStatus(ctx, cancelled.ID, "CANCELLED", admin)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, cancelled.Status)

	stored, err := f.workflow.GetOrder(ctx, cancelled.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, stored.Status)
}

func TestUpdateStatus_RecordsTimelineAndOutbox(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "u1", "p1", 1, "", "")
	order, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.NoError(t, err)

	_, err = f.workflow.UpdateStatus(ctx, order.ID, "PROCESSING", admin)
	require.NoError(t, err)

	events, err := f.timeline.List(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.TimelineStatusChanged, events[1].Type)

	pending := f.outbox.AllPending()
	require.Len(t, pending, 2)
	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(pending[1].Payload, &event))
	assert.Equal(t, domain.OrderStatusPending, event.PrevStatus)
	assert.Equal(t, domain.OrderStatusProcessing, event.Status)
}

func TestUpdateStatus_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "u1", "p1", 1, "", "")
	order, err := f.workflow.CreateOrder(ctx, checkoutRequest("u1"))
	require.NoError(t, err)

	_, err = f.workflow.UpdateStatus(ctx, order.ID, "PROCESSING", domain.Actor{UserID: "u1", Role: domain.RoleCustomer})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.workflow.UpdateStatus(ctx, order.ID, "LOST", admin)
	require.ErrorIs(t, err, domain.ErrUnknownStatus)

	_, err = f.workflow.UpdateStatus(ctx, "missing", "PROCESSING", admin)
	require.ErrorIs(t, err, domain.ErrNotFound)

	stored, err := f.workflow.GetOrder(ctx, order.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, stored.Status)
}

func TestGetOrder_HidesForeignOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "alice", "p1", 1, "", "")
	order, err := f.workflow.CreateOrder(ctx, checkoutRequest("alice"))
	require.NoError(t, err)

	_, err = f.workflow.GetOrder(ctx, order.ID, "bob")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = f.workflow.GetOrder(ctx, order.ID, "alice")
	require.NoError(t, err)

	_, err = f.workflow.GetOrder(ctx, order.ID, "")
	require.NoError(t, err)
}

func TestListAllOrders_AdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.add(t, "alice", "p1", 1, "", "")
	_, err := f.workflow.CreateOrder(ctx, checkoutRequest("alice"))
	require.NoError(t, err)
	f.add(t, "bob", "p2", 1, "", "")
	_, err = f.workflow.CreateOrder(ctx, checkoutRequest("bob"))
	require.NoError(t, err)

	_, err = f.workflow.ListAllOrders(ctx, domain.Actor{UserID: "alice", Role: domain.RoleCustomer})
	require.ErrorIs(t, err, domain.ErrForbidden)

	all, err := f.workflow.ListAllOrders(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	aliceOrders, err := f.workflow.ListOrdersForUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, aliceOrders, 1)
}
