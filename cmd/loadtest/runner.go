package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

// errDuplicateOrders — параллельные оформления одной корзины дали не ровно один заказ.
var errDuplicateOrders = errors.New("checkout race produced unexpected order count")

type runner struct {
	cfg     config
	clients []storefrontv1.StorefrontServiceClient
	rec     *recorder
	runID   string
}

func newRunner(cfg config, clients []storefrontv1.StorefrontServiceClient, rec *recorder, runID string) *runner {
	return &runner{cfg: cfg, clients: clients, rec: rec, runID: runID}
}

// run запускает сценарии с ограничением cfg.concurrency. В режиме по времени новые
// сценарии перестают стартовать по истечении duration, начатые доигрываются.
func (r *runner) run(ctx context.Context) {
	var g errgroup.Group
	g.SetLimit(r.cfg.concurrency)

	deadline := ctx
	if r.cfg.duration > 0 {
		var cancel context.CancelFunc
		deadline, cancel = context.WithTimeout(ctx, r.cfg.duration)
		defer cancel()
	}

	for i := 0; r.more(i); i++ {
		if deadline.Err() != nil {
			break
		}
		g.Go(func() error {
			_ = r.scenario(ctx, i)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *runner) more(i int) bool {
	if r.cfg.duration <= 0 || r.cfg.totalSet {
		return i < r.cfg.total
	}
	return true
}

func (r *runner) client(i int) storefrontv1.StorefrontServiceClient {
	return r.clients[i%len(r.clients)]
}

// scenario выполняет один сценарий выбранного режима и записывает его итог как метод "scenario".
func (r *runner) scenario(ctx context.Context, i int) (err error) {
	started := time.Now()
	defer func() {
		code := grpcCode(err)
		if errors.Is(err, errDuplicateOrders) {
			code = codes.DataLoss
		} else if err != nil && code == codes.Unknown {
			code = codes.Internal
		}
		r.rec.record(scenarioMethod, time.Since(started), code)
	}()

	client := r.client(i)
	userID := fmt.Sprintf("%s-%s-%d", r.cfg.userTag, r.runID, i)
	if err := r.fillCart(ctx, client, userID); err != nil {
		return err
	}

	if r.cfg.mode == modeCheckoutRace {
		return r.race(ctx, client, userID)
	}

	order, err := r.createOrder(ctx, client, userID, fmt.Sprintf("lt-checkout-%s-%d", r.runID, i))
	if err != nil {
		return err
	}
	if order.GetId() == "" {
		return errors.New("create response returned empty order id")
	}
	if r.cfg.mode == modeCheckout {
		return nil
	}

	steps := []string{"PROCESSING", "SHIPPED"}
	if cancelled(i, r.cfg.cancelRate) {
		steps = []string{"CANCELLED"}
	}
	for _, next := range steps {
		err := r.call(ctx, "UpdateOrderStatus", loadAdminID, roleAdmin, "", func(ctx context.Context) error {
			_, err := client.UpdateOrderStatus(ctx, &storefrontv1.UpdateOrderStatusRequest{OrderId: order.GetId(), Status: next})
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) fillCart(ctx context.Context, client storefrontv1.StorefrontServiceClient, userID string) error {
	for _, productID := range r.cfg.products {
		err := r.call(ctx, "AddCartItem", userID, "", "", func(ctx context.Context) error {
			_, err := client.AddCartItem(ctx, &storefrontv1.AddCartItemRequest{ProductId: productID, Quantity: int32(r.cfg.quantity)})
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) createOrder(ctx context.Context, client storefrontv1.StorefrontServiceClient, userID, key string) (*storefrontv1.Order, error) {
	var order *storefrontv1.Order
	err := r.call(ctx, "CreateOrder", userID, "", key, func(ctx context.Context) error {
		resp, err := client.CreateOrder(ctx, &storefrontv1.CreateOrderRequest{
			ShippingAddress: &storefrontv1.ShippingAddress{
				FirstName:  "Load",
				LastName:   "Test",
				Address:    "1 Benchmark Way",
				City:       "Berlin",
				PostalCode: "10115",
				Country:    "DE",
				Phone:      "+490000000",
			},
			PaymentMethod: "card",
		})
		order = resp.GetOrder()
		return err
	})
	return order, err
}

// race отправляет cfg.duplicates параллельных CreateOrder по одной корзине.
// Успешен ровно один; остальные видят пустую корзину или конфликт.
func (r *runner) race(ctx context.Context, client storefrontv1.StorefrontServiceClient, userID string) error {
	var (
		g         errgroup.Group
		succeeded atomic.Int32
	)
	for i := 0; i < r.cfg.duplicates; i++ {
		g.Go(func() error {
			_, err := r.createOrder(ctx, client, userID, "")
			switch status.Code(err) {
			case codes.OK:
				succeeded.Add(1)
				return nil
			case codes.FailedPrecondition, codes.Aborted:
				return nil
			default:
				return err
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if n := succeeded.Load(); n != 1 {
		return fmt.Errorf("%w: user=%s succeeded=%d", errDuplicateOrders, userID, n)
	}

	var listed int
	err := r.call(ctx, "ListOrders", userID, "", "", func(ctx context.Context) error {
		resp, err := client.ListOrders(ctx, &storefrontv1.ListOrdersRequest{})
		listed = len(resp.GetOrders())
		return err
	})
	if err != nil {
		return err
	}
	if listed != 1 {
		return fmt.Errorf("%w: user=%s orders=%d", errDuplicateOrders, userID, listed)
	}
	return nil
}

// call выполняет RPC с таймаутом и metadata актора и записывает задержку и код.
func (r *runner) call(ctx context.Context, method, userID, role, key string, fn func(context.Context) error) error {
	pairs := []string{userIDHeader, userID}
	if role != "" {
		pairs = append(pairs, userRoleHeader, role)
	}
	if key != "" {
		pairs = append(pairs, idempotencyHeader, key)
	}

	ctx, cancel := context.WithTimeout(metadata.AppendToOutgoingContext(ctx, pairs...), r.cfg.timeout)
	defer cancel()

	started := time.Now()
	err := fn(ctx)
	r.rec.record(method, time.Since(started), grpcCode(err))
	return err
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}

func cancelled(i, rate int) bool {
	switch {
	case rate <= 0:
		return false
	case rate >= 100:
		return true
	default:
		return i%100 < rate
	}
}
