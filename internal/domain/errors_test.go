package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRetriable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "transaction error",
			err:  NewTxError("commit", errors.New("connection reset")),
			want: true,
		},
		{
			name: "wrapped cart conflict",
			err:  fmt.Errorf("checkout: %w", ErrCartConflict),
			want: true,
		},
		{
			name: "empty cart",
			err:  ErrEmptyCart,
			want: false,
		},
		{
			name: "invalid transition",
			err:  &TransitionError{From: OrderStatusPending, To: OrderStatusShipped},
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetriable(tt.err); got != tt.want {
				t.Errorf("IsRetriable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNotFoundHierarchy(t *testing.T) {
	if !errors.Is(ErrCartLineNotFound, ErrNotFound) {
		t.Fatal("cart line not found must match ErrNotFound")
	}
	if !errors.Is(ErrOrderNotFound, ErrNotFound) {
		t.Fatal("order not found must match ErrNotFound")
	}
	if errors.Is(ErrOrderNotFound, ErrCartLineNotFound) {
		t.Fatal("order not found must not match cart line not found")
	}
}

func TestTxErrorUnwrap(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := NewTxError("insert order", cause)

	if !errors.Is(err, ErrTransaction) {
		t.Fatal("expected ErrTransaction")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
	var txErr *TxError
	if !errors.As(err, &txErr) || txErr.Op != "insert order" {
		t.Fatalf("unexpected tx error: %#v", err)
	}
}

func TestTransitionErrorMessage(t *testing.T) {
	err := &TransitionError{From: OrderStatusDelivered, To: OrderStatusCancelled}
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatal("expected ErrInvalidTransition")
	}
	want := "invalid order status transition: DELIVERED -> CANCELLED"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
