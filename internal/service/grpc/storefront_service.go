package grpcsvc

import (
	"context"
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/cart"
	"github.com/vladislavdragonenkov/storefront/internal/service/idempotency"
	"github.com/vladislavdragonenkov/storefront/internal/service/ordering"
	storefrontv1 "github.com/vladislavdragonenkov/storefront/proto/storefront/v1"
)

// CartService — операции корзины, которые использует gRPC-слой.
type CartService interface {
	AddItem(ctx context.Context, req cart.AddItemRequest) (domain.CartLine, error)
	UpdateQuantity(ctx context.Context, lineID, userID string, qty int32) (domain.CartLine, error)
	RemoveItem(ctx context.Context, lineID, userID string) error
	Clear(ctx context.Context, userID string) error
	ListItems(ctx context.Context, userID string) ([]domain.CartItemView, error)
}

// OrderService — операции оформления и управления заказами.
type OrderService interface {
	CreateOrder(ctx context.Context, req ordering.CreateOrderRequest) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, newStatus string, actor domain.Actor) (domain.Order, error)
	GetOrder(ctx context.Context, orderID, requestingUserID string) (domain.Order, error)
	ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context, actor domain.Actor) ([]domain.Order, error)
}

// StorefrontService реализует gRPC API корзины и заказов.
type StorefrontService struct {
	storefrontv1.UnimplementedStorefrontServiceServer

	carts    CartService
	orders   OrderService
	timeline domain.TimelineRepository
	guard    *idempotency.Guard
	logger   *log.Entry
}

// ServiceOption настраивает StorefrontService.
type ServiceOption func(*StorefrontService)

// WithTimeline подключает журнал событий заказа для GetOrderTimeline.
func WithTimeline(timeline domain.TimelineRepository) ServiceOption {
	return func(s *StorefrontService) {
		s.timeline = timeline
	}
}

// WithIdempotency включает защиту CreateOrder от повторной отправки.
func WithIdempotency(guard *idempotency.Guard) ServiceOption {
	return func(s *StorefrontService) {
		s.guard = guard
	}
}

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) ServiceOption {
	return func(s *StorefrontService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStorefrontService конструирует сервис с зависимостями.
func NewStorefrontService(carts CartService, orders OrderService, options ...ServiceOption) *StorefrontService {
	s := &StorefrontService{
		carts:  carts,
		orders: orders,
		logger: log.New().WithField("component", "storefront-grpc"),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// AddCartItem добавляет товар в корзину, сливая одинаковые конфигурации.
func (s *StorefrontService) AddCartItem(ctx context.Context, req *storefrontv1.AddCartItemRequest) (*storefrontv1.AddCartItemResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	line, err := s.carts.AddItem(ctx, cart.AddItemRequest{
		UserID:    actor.UserID,
		ProductID: req.GetProductId(),
		Quantity:  req.GetQuantity(),
		Size:      req.GetSize(),
		Color:     req.GetColor(),
	})
	if err != nil {
		return nil, s.fail(ctx, "AddCartItem", err)
	}
	return &storefrontv1.AddCartItemResponse{Item: toProtoCartLine(line)}, nil
}

// UpdateCartItem задаёт новое количество для строки корзины.
func (s *StorefrontService) UpdateCartItem(ctx context.Context, req *storefrontv1.UpdateCartItemRequest) (*storefrontv1.UpdateCartItemResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetItemId() == "" {
		return nil, status.Error(codes.InvalidArgument, "item_id is required")
	}

	line, err := s.carts.UpdateQuantity(ctx, req.GetItemId(), actor.UserID, req.GetQuantity())
	if err != nil {
		return nil, s.fail(ctx, "UpdateCartItem", err)
	}
	return &storefrontv1.UpdateCartItemResponse{Item: toProtoCartLine(line)}, nil
}

// RemoveCartItem удаляет строку корзины владельца.
func (s *StorefrontService) RemoveCartItem(ctx context.Context, req *storefrontv1.RemoveCartItemRequest) (*storefrontv1.RemoveCartItemResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetItemId() == "" {
		return nil, status.Error(codes.InvalidArgument, "item_id is required")
	}

	if err := s.carts.RemoveItem(ctx, req.GetItemId(), actor.UserID); err != nil {
		return nil, s.fail(ctx, "RemoveCartItem", err)
	}
	return &storefrontv1.RemoveCartItemResponse{}, nil
}

// ClearCart удаляет все строки корзины вызывающего.
func (s *StorefrontService) ClearCart(ctx context.Context, _ *storefrontv1.ClearCartRequest) (*storefrontv1.ClearCartResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, actor.UserID); err != nil {
		return nil, s.fail(ctx, "ClearCart", err)
	}
	return &storefrontv1.ClearCartResponse{}, nil
}

// ListCartItems возвращает корзину с актуальными ценами каталога.
func (s *StorefrontService) ListCartItems(ctx context.Context, _ *storefrontv1.ListCartItemsRequest) (*storefrontv1.ListCartItemsResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	views, err := s.carts.ListItems(ctx, actor.UserID)
	if err != nil {
		return nil, s.fail(ctx, "ListCartItems", err)
	}

	items := make([]*storefrontv1.CartItem, 0, len(views))
	for _, v := range views {
		items = append(items, toProtoCartItem(v))
	}
	return &storefrontv1.ListCartItemsResponse{
		Items:    items,
		Subtotal: cartSubtotal(views).StringFixed(2),
	}, nil
}

// CreateOrder превращает корзину вызывающего в заказ.
// С metadata idempotency-key повторная отправка возвращает первый результат.
func (s *StorefrontService) CreateOrder(ctx context.Context, req *storefrontv1.CreateOrderRequest) (*storefrontv1.CreateOrderResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	run := func(ctx context.Context) (*storefrontv1.CreateOrderResponse, error) {
		order, err := s.orders.CreateOrder(ctx, ordering.CreateOrderRequest{
			UserID:          actor.UserID,
			ShippingAddress: fromProtoAddress(req.GetShippingAddress()),
			PaymentMethod:   req.GetPaymentMethod(),
		})
		if err != nil {
			return nil, s.fail(ctx, "CreateOrder", err)
		}
		return &storefrontv1.CreateOrderResponse{Order: toProtoOrder(order)}, nil
	}

	rawKey := readIdempotencyKey(ctx)
	if s.guard == nil || rawKey == "" {
		return run(ctx)
	}

	key, err := domain.NewIdempotencyKey(actor.UserID, rawKey)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	hash, err := idempotency.HashRequest(storefrontv1.StorefrontService_CreateOrder_FullMethodName, req)
	if err != nil {
		s.logger.WithError(err).Warn("failed to build idempotency request hash")
		return nil, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	return withIdempotency(ctx, s, key, hash, func() *storefrontv1.CreateOrderResponse {
		return &storefrontv1.CreateOrderResponse{}
	}, run)
}

// GetOrder возвращает заказ владельцу или администратору.
func (s *StorefrontService) GetOrder(ctx context.Context, req *storefrontv1.GetOrderRequest) (*storefrontv1.GetOrderResponse, error) {
	order, err := s.loadVisibleOrder(ctx, req.GetOrderId())
	if err != nil {
		return nil, err
	}
	return &storefrontv1.GetOrderResponse{Order: toProtoOrder(order)}, nil
}

// ListOrders возвращает заказы вызывающего, новые первыми.
func (s *StorefrontService) ListOrders(ctx context.Context, _ *storefrontv1.ListOrdersRequest) (*storefrontv1.ListOrdersResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrdersForUser(ctx, actor.UserID)
	if err != nil {
		return nil, s.fail(ctx, "ListOrders", err)
	}
	return &storefrontv1.ListOrdersResponse{Orders: toProtoOrders(orders)}, nil
}

// ListAllOrders возвращает заказы всех пользователей; только для администратора.
func (s *StorefrontService) ListAllOrders(ctx context.Context, _ *storefrontv1.ListAllOrdersRequest) (*storefrontv1.ListOrdersResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListAllOrders(ctx, actor)
	if err != nil {
		return nil, s.fail(ctx, "ListAllOrders", err)
	}
	return &storefrontv1.ListOrdersResponse{Orders: toProtoOrders(orders)}, nil
}

// UpdateOrderStatus переводит заказ по таблице статусов; только для администратора.
func (s *StorefrontService) UpdateOrderStatus(ctx context.Context, req *storefrontv1.UpdateOrderStatusRequest) (*storefrontv1.UpdateOrderStatusResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.orders.UpdateStatus(ctx, req.GetOrderId(), req.GetStatus(), actor)
	if err != nil {
		return nil, s.fail(ctx, "UpdateOrderStatus", err)
	}
	return &storefrontv1.UpdateOrderStatusResponse{Order: toProtoOrder(order)}, nil
}

// GetOrderTimeline возвращает журнал событий заказа с той же проверкой владельца, что и GetOrder.
func (s *StorefrontService) GetOrderTimeline(ctx context.Context, req *storefrontv1.GetOrderTimelineRequest) (*storefrontv1.GetOrderTimelineResponse, error) {
	order, err := s.loadVisibleOrder(ctx, req.GetOrderId())
	if err != nil {
		return nil, err
	}
	if s.timeline == nil {
		return &storefrontv1.GetOrderTimelineResponse{Events: []*storefrontv1.TimelineEvent{}}, nil
	}

	events, err := s.timeline.List(ctx, order.ID)
	if err != nil {
		return nil, s.fail(ctx, "GetOrderTimeline", err)
	}
	return &storefrontv1.GetOrderTimelineResponse{Events: toProtoTimeline(events)}, nil
}

func (s *StorefrontService) loadVisibleOrder(ctx context.Context, orderID string) (domain.Order, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	if orderID == "" {
		return domain.Order{}, status.Error(codes.InvalidArgument, "order_id is required")
	}

	owner := actor.UserID
	if actor.IsAdmin() {
		owner = ""
	}
	order, err := s.orders.GetOrder(ctx, orderID, owner)
	if err != nil {
		return domain.Order{}, s.fail(ctx, "GetOrder", err)
	}
	return order, nil
}

// fail переводит ошибку в статус и логирует внутренние сбои.
func (s *StorefrontService) fail(ctx context.Context, method string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.WithContext(ctx).WithError(err).WithField("method", method).Error("request failed")
	}
	return st
}

type idempotencyErrorPayload struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func withIdempotency[R proto.Message](
	ctx context.Context,
	s *StorefrontService,
	key domain.IdempotencyKey,
	hash string,
	newResponse func() R,
	handler func(context.Context) (R, error),
) (R, error) {
	var zero R

	replay, err := s.guard.Begin(ctx, key, hash)
	if err != nil {
		if errors.Is(err, domain.ErrIdempotencyHashMismatch) || errors.Is(err, idempotency.ErrInFlight) {
			return zero, toStatus(err)
		}
		s.logger.WithError(err).WithField("idempotency_key", key.String()).Warn("failed to reserve idempotency key")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}
	if replay != nil {
		return replayIdempotency(s, key, replay, newResponse)
	}

	resp, runErr := handler(ctx)
	if runErr != nil {
		// Ретраябельная ошибка освобождает ключ, окончательная сохраняется для повторов.
		if isRetriableStatus(runErr) {
			s.guard.Release(context.WithoutCancel(ctx), key)
		} else {
			s.guard.Fail(context.WithoutCancel(ctx), key, encodeIdempotencyFailure(runErr), int(status.Code(runErr)))
		}
		return zero, runErr
	}

	body, err := protojson.Marshal(resp)
	if err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key.String()).Warn("failed to encode idempotent response")
		s.guard.Release(context.WithoutCancel(ctx), key)
		return resp, nil
	}
	s.guard.Complete(context.WithoutCancel(ctx), key, body)
	return resp, nil
}

func replayIdempotency[R proto.Message](s *StorefrontService, key domain.IdempotencyKey, replay *idempotency.Replay, newResponse func() R) (R, error) {
	var zero R
	if replay.Failed() {
		return zero, decodeIdempotencyFailure(replay)
	}
	if len(replay.Body) == 0 {
		return zero, status.Error(codes.Internal, "idempotency cache is empty")
	}

	resp := newResponse()
	if err := protojson.Unmarshal(replay.Body, resp); err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key.String()).Warn("failed to decode cached idempotency response")
		return zero, status.Error(codes.Internal, "failed to decode cached idempotency response")
	}
	return resp, nil
}

func encodeIdempotencyFailure(runErr error) []byte {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}
	payload, err := json.Marshal(idempotencyErrorPayload{
		Code:    int32(code), //nolint:gosec // codes.Code is a bounded enum value.
		Message: st.Message(),
	})
	if err != nil {
		return nil
	}
	return payload
}

func decodeIdempotencyFailure(replay *idempotency.Replay) error {
	const fallback = "previous request with the same idempotency key failed"

	if len(replay.Body) > 0 {
		var payload idempotencyErrorPayload
		if err := json.Unmarshal(replay.Body, &payload); err == nil {
			if code, ok := grpcCodeFromInt(int(payload.Code)); ok && code != codes.OK {
				if payload.Message == "" {
					payload.Message = fallback
				}
				return status.Error(code, payload.Message)
			}
		}
	}

	if code, ok := grpcCodeFromInt(replay.Code); ok && code != codes.OK {
		return status.Error(code, fallback)
	}
	return status.Error(codes.Internal, fallback)
}

func grpcCodeFromInt(value int) (codes.Code, bool) {
	if value < int(codes.OK) || value > int(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true //nolint:gosec // bounded above.
}

var _ storefrontv1.StorefrontServiceServer = (*StorefrontService)(nil)
