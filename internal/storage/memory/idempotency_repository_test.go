package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func idemKey(userID, key string) domain.IdempotencyKey {
	return domain.IdempotencyKey{UserID: userID, Key: key}
}

func TestIdempotencyRepository_ReserveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	ttl := time.Now().UTC().Add(2 * time.Hour).Round(time.Second)

	created, err := repo.Reserve(ctx, idemKey("user-1", "checkout-1"), " hash-1 ", ttl)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusProcessing, created.Status)
	assert.Equal(t, "user-1", created.UserID)

	got, err := repo.Get(ctx, idemKey("user-1", "checkout-1"))
	require.NoError(t, err)
	assert.Equal(t, "hash-1", got.RequestHash)
	assert.True(t, got.TTLAt.Equal(ttl))
}

func TestIdempotencyRepository_Validation(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()

	_, err := repo.Reserve(ctx, idemKey("user-1", ""), "hash", time.Time{})
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyRequired)

	_, err = repo.Reserve(ctx, idemKey("", "key"), "hash", time.Time{})
	assert.ErrorIs(t, err, domain.ErrUserRequired)

	_, err = repo.Reserve(ctx, idemKey("user-1", "key"), "", time.Time{})
	assert.ErrorIs(t, err, domain.ErrIdempotencyRequestHashRequired)

	err = repo.Finish(ctx, idemKey("user-1", "missing"), domain.IdempotencyStatusDone, nil, 0)
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)

	_, err = repo.Reserve(ctx, idemKey("user-1", "key"), "hash", time.Time{})
	require.NoError(t, err)
	err = repo.Finish(ctx, idemKey("user-1", "key"), domain.IdempotencyStatusProcessing, nil, 0)
	assert.ErrorIs(t, err, domain.ErrIdempotencyStatusNotFinal)
}

func TestIdempotencyRepository_ConflictIsScopedByUser(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	ttl := time.Now().UTC().Add(time.Hour)

	_, err := repo.Reserve(ctx, idemKey("user-1", "checkout-2"), "hash-a", ttl)
	require.NoError(t, err)

	_, err = repo.Reserve(ctx, idemKey("user-1", "checkout-2"), "hash-a", ttl)
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyAlreadyExists)

	_, err = repo.Reserve(ctx, idemKey("user-1", "checkout-2"), "hash-b", ttl)
	assert.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)

	other, err := repo.Reserve(ctx, idemKey("user-2", "checkout-2"), "hash-b", ttl)
	require.NoError(t, err, "тот же ключ другого пользователя не конфликтует")
	assert.Equal(t, "user-2", other.UserID)
}

func TestIdempotencyRepository_ExpiredRecordIsTakenOver(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	key := idemKey("user-1", "checkout-old")

	_, err := repo.Reserve(ctx, key, "hash-old", time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.Finish(ctx, key, domain.IdempotencyStatusDone, []byte(`{"order":{}}`), 0))

	fresh, err := repo.Reserve(ctx, key, "hash-new", time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusProcessing, fresh.Status)
	assert.Empty(t, fresh.ResponseBody)
}

func TestIdempotencyRepository_FinishAndDeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	expired := idemKey("user-1", "checkout-expired")
	active := idemKey("user-1", "checkout-active")

	_, err := repo.Reserve(ctx, expired, "hash-expired", time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	_, err = repo.Reserve(ctx, active, "hash-active", time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)

	body := []byte(`{"id":"order-1"}`)
	require.NoError(t, repo.Finish(ctx, active, domain.IdempotencyStatusDone, body, 0))
	body[0] = 'X'

	got, err := repo.Get(ctx, active)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusDone, got.Status)
	assert.Equal(t, `{"id":"order-1"}`, string(got.ResponseBody), "сохранённый ответ не должен ссылаться на буфер вызывающего")

	require.NoError(t, repo.Finish(ctx, expired, domain.IdempotencyStatusFailed, []byte("cart is empty"), 9))
	failed, err := repo.Get(ctx, expired)
	require.NoError(t, err)
	assert.Equal(t, domain.IdempotencyStatusFailed, failed.Status)
	assert.Equal(t, 9, failed.ResponseCode)

	removed, err := repo.DeleteExpired(ctx, time.Now().UTC(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Get(ctx, expired)
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
}

func TestIdempotencyRepository_ReleaseOnlyProcessing(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	ttl := time.Now().UTC().Add(time.Hour)
	processing := idemKey("user-1", "k-processing")
	done := idemKey("user-1", "k-done")

	_, err := repo.Reserve(ctx, processing, "h", ttl)
	require.NoError(t, err)
	_, err = repo.Reserve(ctx, done, "h", ttl)
	require.NoError(t, err)
	require.NoError(t, repo.Finish(ctx, done, domain.IdempotencyStatusDone, []byte(`{}`), 0))

	require.NoError(t, repo.Release(ctx, processing))
	_, err = repo.Get(ctx, processing)
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)

	assert.ErrorIs(t, repo.Release(ctx, done), domain.ErrIdempotencyKeyNotFound)
	_, err = repo.Get(ctx, done)
	assert.NoError(t, err, "завершённый ключ переживает Release")
}
