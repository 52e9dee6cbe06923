package grpcsvc

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Заголовки, которые выставляет внешний шлюз аутентификации.
const (
	userIDHeader         = "x-user-id"
	userRoleHeader       = "x-user-role"
	idempotencyKeyHeader = "idempotency-key"
)

// actorFromContext читает личность и роль вызывающего из metadata.
// Отсутствующая роль означает покупателя.
func actorFromContext(ctx context.Context) (domain.Actor, error) {
	userID := firstMetadataValue(ctx, userIDHeader)
	if userID == "" {
		return domain.Actor{}, status.Error(codes.Unauthenticated, "x-user-id metadata is required")
	}

	role := domain.RoleCustomer
	switch strings.ToLower(firstMetadataValue(ctx, userRoleHeader)) {
	case "", string(domain.RoleCustomer):
	case string(domain.RoleAdmin):
		role = domain.RoleAdmin
	default:
		return domain.Actor{}, status.Error(codes.InvalidArgument, "x-user-role must be customer or admin")
	}

	return domain.Actor{UserID: userID, Role: role}, nil
}

// readIdempotencyKey возвращает ключ идемпотентности; пустая строка означает, что клиент его не передал.
func readIdempotencyKey(ctx context.Context) string {
	return firstMetadataValue(ctx, idempotencyKeyHeader)
}

// firstMetadataValue читает только входящую metadata: исходящая принадлежит самому серверу.
func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}
