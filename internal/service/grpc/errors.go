package grpcsvc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/idempotency"
)

const (
	errorDomain = "storefront"
	// retryAfter — подсказка клиенту для повторов после конфликта оформления.
	retryAfter = 200 * time.Millisecond
)

// Причины ошибок в ErrorInfo.
const (
	reasonEmptyCart         = "EMPTY_CART"
	reasonProductNotFound   = "PRODUCT_NOT_FOUND"
	reasonNotFound          = "NOT_FOUND"
	reasonForbidden         = "FORBIDDEN"
	reasonInvalidTransition = "INVALID_TRANSITION"
	reasonTransaction       = "TRANSACTION_FAILED"
	reasonCartConflict      = "CART_CONFLICT"
	reasonInvalidArgument   = "INVALID_ARGUMENT"
	reasonIdempotency       = "IDEMPOTENCY_KEY_REUSED"
	reasonInFlight          = "REQUEST_IN_FLIGHT"
)

var invalidArgumentErrors = []error{
	domain.ErrUserRequired,
	domain.ErrProductRequired,
	domain.ErrQuantityInvalid,
	domain.ErrShippingAddressInvalid,
	domain.ErrPaymentMethodRequired,
	domain.ErrUnknownStatus,
}

// toStatus переводит доменную ошибку в gRPC-статус. Уже готовый статус возвращается как есть.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return withInfo(codes.FailedPrecondition, err.Error(), reasonEmptyCart, false)
	case errors.Is(err, domain.ErrProductNotFound):
		return withInfo(codes.NotFound, err.Error(), reasonProductNotFound, false)
	case errors.Is(err, domain.ErrNotFound):
		return withInfo(codes.NotFound, err.Error(), reasonNotFound, false)
	case errors.Is(err, domain.ErrForbidden):
		return withInfo(codes.PermissionDenied, err.Error(), reasonForbidden, false)
	case errors.Is(err, domain.ErrInvalidTransition):
		return withInfo(codes.FailedPrecondition, err.Error(), reasonInvalidTransition, false)
	case errors.Is(err, domain.ErrCartConflict):
		return withInfo(codes.Aborted, err.Error(), reasonCartConflict, true)
	case errors.Is(err, domain.ErrTransaction):
		// Детали хранилища наружу не отдаются.
		return withInfo(codes.Aborted, domain.ErrTransaction.Error(), reasonTransaction, true)
	case errors.Is(err, domain.ErrIdempotencyHashMismatch):
		return withInfo(codes.InvalidArgument, err.Error(), reasonIdempotency, false)
	case errors.Is(err, idempotency.ErrInFlight):
		return withInfo(codes.Aborted, err.Error(), reasonInFlight, true)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	for _, target := range invalidArgumentErrors {
		if errors.Is(err, target) {
			return withInfo(codes.InvalidArgument, err.Error(), reasonInvalidArgument, false)
		}
	}

	return status.Error(codes.Internal, "internal error")
}

func withInfo(code codes.Code, msg, reason string, retriable bool) error {
	st := status.New(code, msg)

	details := []*errdetails.ErrorInfo{{Reason: reason, Domain: errorDomain}}
	var err error
	if retriable {
		st, err = st.WithDetails(details[0], &errdetails.RetryInfo{RetryDelay: durationpb.New(retryAfter)})
	} else {
		st, err = st.WithDetails(details[0])
	}
	if err != nil {
		return status.Error(code, msg)
	}
	return st.Err()
}

// errorReason извлекает ErrorInfo.Reason из статуса.
func errorReason(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}

// isRetriableStatus сообщает, что повтор запроса с тем же ключом идемпотентности допустим.
func isRetriableStatus(err error) bool {
	switch status.Code(err) {
	case codes.Aborted, codes.Unavailable, codes.Canceled, codes.DeadlineExceeded, codes.Internal:
		return true
	default:
		return false
	}
}
