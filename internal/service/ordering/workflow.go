package ordering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
)

// CartSource — источник снимка корзины для оформления заказа.
type CartSource interface {
	// Lines возвращает текущие строки корзины пользователя.
	Lines(ctx context.Context, userID string) ([]domain.CartLine, error)
	// Invalidate сбрасывает производные представления корзины после её изменения.
	Invalidate(ctx context.Context, userID string)
}

// CreateOrderRequest — данные для оформления заказа из корзины.
type CreateOrderRequest struct {
	UserID          string
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
}

// Options задаёт необязательные зависимости Workflow.
type Options struct {
	Retry   RetryConfig
	Metrics *metrics.CheckoutMetrics
	Logger  *log.Entry
	Now     func() time.Time
	NewID   func() string
}

// Option настраивает Workflow.
type Option func(*Options)

// WithRetry задаёт политику повторов при конфликтах транзакции.
func WithRetry(cfg RetryConfig) Option {
	return func(opts *Options) {
		opts.Retry = cfg
	}
}

// WithMetrics подключает метрики оформления.
func WithMetrics(m *metrics.CheckoutMetrics) Option {
	return func(opts *Options) {
		opts.Metrics = m
	}
}

// WithLogger задаёт logger.
func WithLogger(logger *log.Entry) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(opts *Options) {
		opts.Now = now
	}
}

// WithIDGenerator подменяет генератор идентификаторов заказов и позиций.
func WithIDGenerator(newID func() string) Option {
	return func(opts *Options) {
		opts.NewID = newID
	}
}

// Workflow превращает корзину в заказ и управляет жизненным циклом заказа.
type Workflow struct {
	orders  domain.OrderRepository
	carts   CartSource
	catalog domain.ProductCatalog
	retry   RetryConfig
	metrics *metrics.CheckoutMetrics
	logger  *log.Entry
	now     func() time.Time
	newID   func() string
}

// NewWorkflow конструирует Workflow с зависимостями.
func NewWorkflow(orders domain.OrderRepository, carts CartSource, catalog domain.ProductCatalog, options ...Option) *Workflow {
	opts := Options{Retry: DefaultRetryConfig()}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}
	if opts.Logger == nil {
		opts.Logger = log.New().WithField("component", "order-workflow")
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &Workflow{
		orders:  orders,
		carts:   carts,
		catalog: catalog,
		retry:   opts.Retry,
		metrics: opts.Metrics,
		logger:  opts.Logger,
		now:     opts.Now,
		newID:   opts.NewID,
	}
}

// CreateOrder оформляет заказ из текущей корзины пользователя.
// Итог считается по текущим ценам каталога; заказ, его позиции, удаление строк корзины,
// событие outbox и запись timeline фиксируются одной транзакцией.
// Повторяемые сбои (конфликт за строки корзины, сбой транзакции) повторяются согласно RetryConfig;
// повтор после успешного оформления конкурента видит пустую корзину и возвращает ErrEmptyCart.
func (w *Workflow) CreateOrder(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	if err := validateCreateOrder(req); err != nil {
		return domain.Order{}, err
	}

	started := time.Now()
	w.metrics.RecordCheckoutStarted()

	order, err := retry(ctx, w.retry, w.logger.WithField("user_id", req.UserID), "create_order", w.metrics.RecordCheckoutRetry,
		func(ctx context.Context) (domain.Order, error) {
			return w.createOnce(ctx, req)
		})

	w.metrics.RecordCheckoutFinished(failureReason(err), time.Since(started))
	if err != nil {
		return domain.Order{}, err
	}

	w.carts.Invalidate(ctx, order.UserID)
	w.metrics.RecordTimelineEvent()
	w.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"items":    len(order.Items),
		"total":    order.Total.StringFixed(2),
	}).Info("order created from cart")

	return order, nil
}

func (w *Workflow) createOnce(ctx context.Context, req CreateOrderRequest) (domain.Order, error) {
	snapshot, err := w.carts.Lines(ctx, req.UserID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("load cart: %w", err)
	}
	if len(snapshot) == 0 {
		return domain.Order{}, domain.ErrEmptyCart
	}

	now := w.now()
	order := domain.Order{
		ID:              w.newID(),
		UserID:          req.UserID,
		Status:          domain.OrderStatusPending,
		ShippingAddress: normalizeAddress(req.ShippingAddress),
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	order.Items = make([]domain.OrderItem, 0, len(snapshot))
	lineIDs := make([]string, 0, len(snapshot))
	for _, line := range snapshot {
		product, err := w.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("price product %s: %w", line.ProductID, err)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:       w.newID(),
			OrderID:  order.ID,
			Product:  product.Ref(),
			Quantity: line.Quantity,
			Price:    product.Price,
			Size:     line.Size,
			Color:    line.Color,
		})
		lineIDs = append(lineIDs, line.ID)
	}
	order.Total = domain.ComputeTotal(order.Items)

	created, err := domain.NewOrderCreatedMessage(order)
	if err != nil {
		return domain.Order{}, err
	}

	err = w.orders.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
		locked, err := tx.LockCartLines(ctx, req.UserID, lineIDs)
		if err != nil {
			return err
		}
		if err := verifySnapshot(snapshot, locked); err != nil {
			return err
		}

		if err := tx.InsertOrder(ctx, order); err != nil {
			return err
		}
		if err := tx.InsertOrderItems(ctx, order.Items); err != nil {
			return err
		}

		deleted, err := tx.DeleteCartLinesByIDs(ctx, req.UserID, lineIDs)
		if err != nil {
			return err
		}
		if deleted != int64(len(lineIDs)) {
			return domain.ErrCartConflict
		}

		if err := tx.EnqueueOutbox(ctx, created); err != nil {
			return err
		}
		return tx.AppendTimeline(ctx, domain.OrderCreatedEvent(order, now))
	})
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}

// verifySnapshot сверяет строки, заблокированные в транзакции, со снимком корзины.
// Если все строки исчезли, корзину уже оформил конкурент; любое другое расхождение — конфликт.
func verifySnapshot(snapshot, locked []domain.CartLine) error {
	if len(locked) == 0 {
		return domain.ErrEmptyCart
	}
	if len(locked) != len(snapshot) {
		return domain.ErrCartConflict
	}

	byID := make(map[string]domain.CartLine, len(locked))
	for _, line := range locked {
		byID[line.ID] = line
	}
	for _, want := range snapshot {
		got, ok := byID[want.ID]
		if !ok || got.Quantity != want.Quantity || got.Key() != want.Key() {
			return domain.ErrCartConflict
		}
	}
	return nil
}

// UpdateStatus переводит заказ в новый статус. Доступно только администратору.
func (w *Workflow) UpdateStatus(ctx context.Context, orderID, newStatus string, actor domain.Actor) (domain.Order, error) {
	if !actor.IsAdmin() {
		return domain.Order{}, domain.ErrForbidden
	}
	target, err := domain.ParseOrderStatus(newStatus)
	if err != nil {
		return domain.Order{}, err
	}

	var (
		updated domain.Order
		prev    domain.OrderStatus
	)
	err = w.orders.RunInTransaction(ctx, func(ctx context.Context, tx domain.OrderTx) error {
		order, err := tx.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if err := domain.ValidateTransition(order.Status, target); err != nil {
			return err
		}

		at := w.now()
		if err := tx.UpdateOrderStatus(ctx, orderID, target, at); err != nil {
			return err
		}

		prev = order.Status
		order.Status = target
		order.UpdatedAt = at

		msg, err := domain.NewStatusChangedMessage(order, prev, at)
		if err != nil {
			return err
		}
		if err := tx.EnqueueOutbox(ctx, msg); err != nil {
			return err
		}
		if err := tx.AppendTimeline(ctx, domain.StatusChangedEvent(orderID, prev, target, actor.UserID, at)); err != nil {
			return err
		}

		updated = order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	w.metrics.RecordStatusTransition(string(target))
	w.metrics.RecordTimelineEvent()
	w.logger.WithFields(log.Fields{
		"order_id": orderID,
		"from":     prev,
		"to":       target,
		"actor":    actor.UserID,
	}).Info("order status changed")

	return updated, nil
}

// GetOrder возвращает заказ. Пустой requestingUserID означает административный доступ;
// чужой заказ не отличим от отсутствующего.
func (w *Workflow) GetOrder(ctx context.Context, orderID, requestingUserID string) (domain.Order, error) {
	order, err := w.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if requestingUserID != "" && order.UserID != requestingUserID {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersForUser возвращает заказы пользователя, новые первыми.
func (w *Workflow) ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUserRequired
	}
	return w.orders.ListOrdersForUser(ctx, userID)
}

// ListAllOrders возвращает все заказы. Доступно только администратору.
func (w *Workflow) ListAllOrders(ctx context.Context, actor domain.Actor) ([]domain.Order, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return w.orders.ListAllOrders(ctx)
}

func validateCreateOrder(req CreateOrderRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return domain.ErrUserRequired
	}
	if err := req.ShippingAddress.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return domain.ErrPaymentMethodRequired
	}
	return nil
}

func normalizeAddress(a domain.ShippingAddress) domain.ShippingAddress {
	return domain.ShippingAddress{
		FirstName:  strings.TrimSpace(a.FirstName),
		LastName:   strings.TrimSpace(a.LastName),
		Address:    strings.TrimSpace(a.Address),
		City:       strings.TrimSpace(a.City),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.TrimSpace(a.Country),
		Phone:      strings.TrimSpace(a.Phone),
	}
}

// failureReason возвращает метку причины для метрик; пустая строка — успех.
func failureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrCartConflict):
		return "conflict"
	case errors.Is(err, domain.ErrTransaction):
		return "transaction"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}
