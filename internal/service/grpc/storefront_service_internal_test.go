package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/idempotency"
	"github.com/vladislavdragonenkov/storefront/internal/service/ordering"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   codes.Code
		reason string
	}{
		{"empty cart", domain.ErrEmptyCart, codes.FailedPrecondition, reasonEmptyCart},
		{"product", fmt.Errorf("price line: %w", domain.ErrProductNotFound), codes.NotFound, reasonProductNotFound},
		{"order", domain.ErrOrderNotFound, codes.NotFound, reasonNotFound},
		{"cart line", domain.ErrCartLineNotFound, codes.NotFound, reasonNotFound},
		{"forbidden", domain.ErrForbidden, codes.PermissionDenied, reasonForbidden},
		{"transition", &domain.TransitionError{From: domain.OrderStatusDelivered, To: domain.OrderStatusPending}, codes.FailedPrecondition, reasonInvalidTransition},
		{"tx", domain.NewTxError("commit", errors.New("connection reset")), codes.Aborted, reasonTransaction},
		{"conflict", domain.ErrCartConflict, codes.Aborted, reasonCartConflict},
		{"quantity", domain.ErrQuantityInvalid, codes.InvalidArgument, reasonInvalidArgument},
		{"status", domain.ErrUnknownStatus, codes.InvalidArgument, reasonInvalidArgument},
		{"hash mismatch", domain.ErrIdempotencyHashMismatch, codes.InvalidArgument, reasonIdempotency},
		{"in flight", idempotency.ErrInFlight, codes.Aborted, reasonInFlight},
		{"canceled", context.Canceled, codes.Canceled, ""},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded, ""},
		{"unknown", errors.New("boom"), codes.Internal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toStatus(tt.err)
			assert.Equal(t, tt.code, status.Code(err))
			assert.Equal(t, tt.reason, errorReason(err))
		})
	}
}

func TestToStatusHidesStorageDetails(t *testing.T) {
	err := toStatus(domain.NewTxConflict("lock cart lines", errors.New("pq: could not serialize access")))

	st := status.Convert(err)
	assert.Equal(t, domain.ErrTransaction.Error(), st.Message())

	var retry *errdetails.RetryInfo
	for _, d := range st.Details() {
		if r, ok := d.(*errdetails.RetryInfo); ok {
			retry = r
		}
	}
	require.NotNil(t, retry)
	assert.Equal(t, retryAfter, retry.GetRetryDelay().AsDuration())
}

func TestToStatusPassesThroughStatus(t *testing.T) {
	in := status.Error(codes.Unauthenticated, "who are you")
	assert.Equal(t, in, toStatus(in))
	assert.NoError(t, toStatus(nil))
}

func TestActorFromContext(t *testing.T) {
	incoming := func(kv ...string) context.Context {
		return metadata.NewIncomingContext(context.Background(), metadata.Pairs(kv...))
	}

	actor, err := actorFromContext(incoming("x-user-id", " u1 "))
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{UserID: "u1", Role: domain.RoleCustomer}, actor)

	actor, err = actorFromContext(incoming("x-user-id", "ops", "x-user-role", "ADMIN"))
	require.NoError(t, err)
	assert.True(t, actor.IsAdmin())

	_, err = actorFromContext(incoming("x-user-role", "admin"))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = actorFromContext(incoming("x-user-id", "u1", "x-user-role", "superuser"))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReadIdempotencyKey(t *testing.T) {
	assert.Empty(t, readIdempotencyKey(context.Background()))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("idempotency-key", "k-1"))
	assert.Equal(t, "k-1", readIdempotencyKey(ctx))

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("idempotency-key", "  k-2  "))
	assert.Equal(t, "k-2", readIdempotencyKey(ctx))
}

func TestMetadataIgnoresOutgoingContext(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(),
		"x-user-id", "u1", "idempotency-key", "k-1")

	assert.Empty(t, readIdempotencyKey(ctx))

	_, err := actorFromContext(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

// flakyOrders падает заданной ошибкой первые failures вызовов CreateOrder.
type flakyOrders struct {
	OrderService
	failures int
	err      error
	calls    int
}

func (f *flakyOrders) CreateOrder(_ context.Context, req ordering.CreateOrderRequest) (domain.Order, error) {
	f.calls++
	if f.calls <= f.failures {
		return domain.Order{}, f.err
	}
	return domain.Order{ID: fmt.Sprintf("order-%d", f.calls), UserID: req.UserID, Status: domain.OrderStatusPending}, nil
}

func checkoutCtx(key string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-user-id", "u1", "idempotency-key", key))
}

func TestCreateOrderReleasesKeyOnRetriableFailure(t *testing.T) {
	orders := &flakyOrders{failures: 1, err: domain.NewTxConflict("commit", errors.New("serialization failure"))}
	svc := NewStorefrontService(nil, orders, WithIdempotency(idempotency.NewGuard(memory.NewIdempotencyRepository())))

	_, err := svc.CreateOrder(checkoutCtx("k"), &storefrontv1.CreateOrderRequest{PaymentMethod: "card"})
	assert.Equal(t, codes.Aborted, status.Code(err))

	resp, err := svc.CreateOrder(checkoutCtx("k"), &storefrontv1.CreateOrderRequest{PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, "order-2", resp.GetOrder().GetId())

	replayed, err := svc.CreateOrder(checkoutCtx("k"), &storefrontv1.CreateOrderRequest{PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, "order-2", replayed.GetOrder().GetId())
	assert.Equal(t, 2, orders.calls)
}

func TestCreateOrderStoresPermanentFailure(t *testing.T) {
	orders := &flakyOrders{failures: 1, err: domain.ErrEmptyCart}
	svc := NewStorefrontService(nil, orders, WithIdempotency(idempotency.NewGuard(memory.NewIdempotencyRepository())))

	_, err := svc.CreateOrder(checkoutCtx("k"), &storefrontv1.CreateOrderRequest{})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = svc.CreateOrder(checkoutCtx("k"), &storefrontv1.CreateOrderRequest{})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Equal(t, domain.ErrEmptyCart.Error(), status.Convert(err).Message())
	assert.Equal(t, 1, orders.calls)
}

func TestCreateOrderIdempotencyKeyIsScopedToUser(t *testing.T) {
	orders := &flakyOrders{}
	svc := NewStorefrontService(nil, orders, WithIdempotency(idempotency.NewGuard(memory.NewIdempotencyRepository())))

	_, err := svc.CreateOrder(checkoutCtx("shared"), &storefrontv1.CreateOrderRequest{PaymentMethod: "card"})
	require.NoError(t, err)

	other := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-user-id", "u2", "idempotency-key", "shared"))
	_, err = svc.CreateOrder(other, &storefrontv1.CreateOrderRequest{PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Equal(t, 2, orders.calls)
}

func TestCreateOrderRejectsOversizedIdempotencyKey(t *testing.T) {
	orders := &flakyOrders{}
	svc := NewStorefrontService(nil, orders, WithIdempotency(idempotency.NewGuard(memory.NewIdempotencyRepository())))

	_, err := svc.CreateOrder(checkoutCtx(strings.Repeat("k", 129)), &storefrontv1.CreateOrderRequest{PaymentMethod: "card"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Zero(t, orders.calls)
}

func TestDecodeIdempotencyFailure(t *testing.T) {
	err := decodeIdempotencyFailure(&idempotency.Replay{Status: domain.IdempotencyStatusFailed, Code: int(codes.NotFound)})
	assert.Equal(t, codes.NotFound, status.Code(err))

	err = decodeIdempotencyFailure(&idempotency.Replay{Status: domain.IdempotencyStatusFailed, Body: []byte("{broken"), Code: 99})
	assert.Equal(t, codes.Internal, status.Code(err))

	body := encodeIdempotencyFailure(status.Error(codes.PermissionDenied, "nope"))
	err = decodeIdempotencyFailure(&idempotency.Replay{Status: domain.IdempotencyStatusFailed, Body: body})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, "nope", status.Convert(err).Message())
}

func TestReplayIdempotencyDecodesStoredResponse(t *testing.T) {
	svc := NewStorefrontService(nil, &flakyOrders{})
	key := domain.IdempotencyKey{UserID: "u1", Key: "k-1"}
	newResponse := func() *storefrontv1.CreateOrderResponse { return &storefrontv1.CreateOrderResponse{} }

	body, err := protojson.Marshal(&storefrontv1.CreateOrderResponse{Order: &storefrontv1.Order{Id: "order-1", Total: "31.50"}})
	require.NoError(t, err)

	resp, err := replayIdempotency(svc, key, &idempotency.Replay{Status: domain.IdempotencyStatusDone, Body: body}, newResponse)
	require.NoError(t, err)
	assert.Equal(t, "order-1", resp.GetOrder().GetId())
	assert.Equal(t, "31.50", resp.GetOrder().GetTotal())

	_, err = replayIdempotency(svc, key, &idempotency.Replay{Status: domain.IdempotencyStatusDone, Body: []byte("{broken")}, newResponse)
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = replayIdempotency(svc, key, &idempotency.Replay{Status: domain.IdempotencyStatusDone}, newResponse)
	assert.Equal(t, codes.Internal, status.Code(err))
}
