package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

func TestCartRepository_PostgresMergeAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedProducts(t, store, sampleProduct("tee-classic", "19.99"))
	repo := NewCartRepository(store)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	first, err := repo.Merge(ctx, domain.CartLine{UserID: "u1", ProductID: "tee-classic", Quantity: 1, Size: "M", Color: "black"})
	require.NoError(t, err)
	second, err := repo.Merge(ctx, domain.CartLine{UserID: "u1", ProductID: "tee-classic", Quantity: 2, Size: "M", Color: "black"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.EqualValues(t, 3, second.Quantity)

	other, err := repo.Merge(ctx, domain.CartLine{UserID: "u1", ProductID: "tee-classic", Quantity: 1, Size: "L", Color: "black"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, other.ID)

	lines, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	empty, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestCartRepository_PostgresMergeCapsQuantity(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedProducts(t, store, sampleProduct("tee-classic", "19.99"))
	repo := NewCartRepository(store)
	ctx := context.Background()

	line, err := repo.Merge(ctx, domain.CartLine{UserID: "u1", ProductID: "tee-classic", Quantity: 998})
	require.NoError(t, err)

	_, err = repo.Merge(ctx, domain.CartLine{UserID: "u1", ProductID: "tee-classic", Quantity: 2})
	require.ErrorIs(t, err, domain.ErrQuantityInvalid)

	full, err := repo.Merge(ctx, domain.CartLine{UserID: "u1", ProductID: "tee-classic", Quantity: 1})
	require.NoError(t, err)
	require.Equal(t, line.ID, full.ID)
	require.EqualValues(t, domain.MaxLineQuantity, full.Quantity)

	_, err = repo.SetQuantity(ctx, line.ID, "u1", domain.MaxLineQuantity+1, time.Now().UTC())
	require.ErrorIs(t, err, domain.ErrQuantityInvalid)
}

func TestCartRepository_PostgresUnknownProduct(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewCartRepository(store)

	_, err := repo.Merge(context.Background(), domain.CartLine{UserID: "u1", ProductID: "missing", Quantity: 1})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCartRepository_PostgresOwnership(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedProducts(t, store, sampleProduct("hoodie-zip", "49.50"))
	repo := NewCartRepository(store)
	ctx := context.Background()

	line, err := repo.Merge(ctx, domain.CartLine{UserID: "owner", ProductID: "hoodie-zip", Quantity: 1})
	require.NoError(t, err)

	_, err = repo.SetQuantity(ctx, line.ID, "intruder", 5, time.Now().UTC())
	require.ErrorIs(t, err, domain.ErrCartLineNotFound)
	require.ErrorIs(t, repo.Delete(ctx, line.ID, "intruder"), domain.ErrCartLineNotFound)

	updated, err := repo.SetQuantity(ctx, line.ID, "owner", 4, time.Now().UTC())
	require.NoError(t, err)
	require.EqualValues(t, 4, updated.Quantity)

	require.NoError(t, repo.Delete(ctx, line.ID, "owner"))
	require.ErrorIs(t, repo.Delete(ctx, line.ID, "owner"), domain.ErrCartLineNotFound)
}

func TestCartRepository_PostgresConcurrentMergeKeepsOneLine(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	seedProducts(t, store, sampleProduct("cap-logo", "15.00"))
	repo := NewCartRepository(store)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Merge(context.Background(), domain.CartLine{UserID: "u1", ProductID: "cap-logo", Quantity: 1})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	lines, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.EqualValues(t, workers, lines[0].Quantity)
}
