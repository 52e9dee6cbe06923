package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

var cartLineRowColumns = []string{"id", "user_id", "product_id", "quantity", "size", "color", "created_at", "updated_at"}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewStoreFromDB(db), mock
}

func TestCartRepository_MergeUpsertsByVariantKey(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewCartRepository(store)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO cart_items .* ON CONFLICT \(user_id, product_id, size, color\)\s+DO UPDATE SET quantity = cart_items.quantity \+ EXCLUDED.quantity`).
		WithArgs(sqlmock.AnyArg(), "u1", "tee-classic", int32(2), "M", "black", now, domain.MaxLineQuantity).
		WillReturnRows(sqlmock.NewRows(cartLineRowColumns).
			AddRow("line-1", "u1", "tee-classic", 5, "M", "black", now.Add(-time.Hour), now))

	line, err := repo.Merge(context.Background(), domain.CartLine{
		UserID:    "u1",
		ProductID: "tee-classic",
		Quantity:  2,
		Size:      "M",
		Color:     "black",
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.Equal(t, "line-1", line.ID)
	require.EqualValues(t, 5, line.Quantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_MergeUnknownProduct(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewCartRepository(store)

	mock.ExpectQuery(`INSERT INTO cart_items`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	_, err := repo.Merge(context.Background(), domain.CartLine{UserID: "u1", ProductID: "missing", Quantity: 1})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_MergeRejectsQuantityAboveLimit(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewCartRepository(store)

	// DO UPDATE ... WHERE отсекает строку: RETURNING ничего не возвращает.
	mock.ExpectQuery(`DO UPDATE SET quantity = cart_items.quantity \+ EXCLUDED.quantity,\s+updated_at = EXCLUDED.updated_at\s+WHERE cart_items.quantity \+ EXCLUDED.quantity <= \$8`).
		WithArgs(sqlmock.AnyArg(), "u1", "tee-classic", int32(1), "", "", sqlmock.AnyArg(), domain.MaxLineQuantity).
		WillReturnRows(sqlmock.NewRows(cartLineRowColumns))
	mock.ExpectQuery(`INSERT INTO cart_items`).
		WillReturnError(&pgconn.PgError{Code: pgCheckViolation})

	_, err := repo.Merge(context.Background(), domain.CartLine{UserID: "u1", ProductID: "tee-classic", Quantity: 1})
	require.ErrorIs(t, err, domain.ErrQuantityInvalid)

	_, err = repo.Merge(context.Background(), domain.CartLine{UserID: "u1", ProductID: "tee-classic", Quantity: 1000})
	require.ErrorIs(t, err, domain.ErrQuantityInvalid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_SetQuantityForeignLine(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewCartRepository(store)

	mock.ExpectQuery(`UPDATE cart_items\s+SET quantity = \$3`).
		WithArgs("line-1", "intruder", int32(3), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(cartLineRowColumns))

	_, err := repo.SetQuantity(context.Background(), "line-1", "intruder", 3, time.Now().UTC())
	require.ErrorIs(t, err, domain.ErrCartLineNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_DeleteChecksOwnership(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewCartRepository(store)

	mock.ExpectExec(`DELETE FROM cart_items WHERE id = \$1 AND user_id = \$2`).
		WithArgs("line-1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM cart_items WHERE id = \$1 AND user_id = \$2`).
		WithArgs("line-1", "owner").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.ErrorIs(t, repo.Delete(context.Background(), "line-1", "intruder"), domain.ErrCartLineNotFound)
	require.NoError(t, repo.Delete(context.Background(), "line-1", "owner"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_ListByUserOrdersByCreation(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewCartRepository(store)

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT .* FROM cart_items\s+WHERE user_id = \$1\s+ORDER BY created_at ASC, id ASC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cartLineRowColumns).
			AddRow("line-1", "u1", "tee-classic", 1, "", "", now, now).
			AddRow("line-2", "u1", "cap-logo", 2, "", "red", now, now))

	lines, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, "cap-logo", lines[1].ProductID)
	require.NoError(t, mock.ExpectationsWereMet())
}
