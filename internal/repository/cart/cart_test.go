package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernshop/internal/domain"
	"modernshop/internal/repository/pgtest"
)

func exerciseMerge(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	first, err := repo.AddOrMerge(ctx, "sess-a", 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)
	assert.False(t, first.DateAdded.IsZero())

	second, err := repo.AddOrMerge(ctx, "sess-a", 5, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	other, err := repo.AddOrMerge(ctx, "sess-b", 5, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	items, err := repo.ListBySession(ctx, "sess-a")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func exerciseConcurrentMerge(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()
	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			if _, err := repo.AddOrMerge(ctx, "sess-concurrent", 7, q); err != nil {
				errs <- err
			}
		}(i%3 + 1)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	expected := 0
	for i := 0; i < workers; i++ {
		expected += i%3 + 1
	}
	items, err := repo.ListBySession(ctx, "sess-concurrent")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, expected, items[0].Quantity)
}

func exerciseMutations(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	a, err := repo.AddOrMerge(ctx, "sess-m", 1, 1)
	require.NoError(t, err)
	b, err := repo.AddOrMerge(ctx, "sess-m", 2, 4)
	require.NoError(t, err)

	updated, err := repo.SetQuantity(ctx, a.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Quantity)

	_, err = repo.SetQuantity(ctx, 987654, 1)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	existed, err := repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, existed)
	existed, err = repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, existed)

	// Re-adding a removed product starts a fresh row.
	again, err := repo.AddOrMerge(ctx, "sess-m", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Quantity)

	n, err := repo.ClearSession(ctx, "sess-m")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.ClearSession(ctx, "sess-m")
	require.NoError(t, err)
	assert.Zero(t, n)

	items, err := repo.ListBySession(ctx, "sess-m")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = repo.GetByID(ctx, a.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func exerciseQuantityLimit(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	full, err := repo.AddOrMerge(ctx, "sess-limit", 3, domain.MaxCartQuantity)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxCartQuantity, full.Quantity)

	_, err = repo.AddOrMerge(ctx, "sess-limit", 3, 1)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Fields[0].Field)

	_, err = repo.AddOrMerge(ctx, "sess-limit", 4, domain.MaxCartQuantity+1)
	require.ErrorAs(t, err, &verr)
	_, err = repo.SetQuantity(ctx, full.ID, domain.MaxCartQuantity+1)
	require.ErrorAs(t, err, &verr)

	items, err := repo.ListBySession(ctx, "sess-limit")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.MaxCartQuantity, items[0].Quantity)
}

func TestMemory_Merge(t *testing.T) { exerciseMerge(t, NewMemory()) }
func TestMemory_ConcurrentMerge(t *testing.T) { exerciseConcurrentMerge(t, NewMemory()) }
func TestMemory_Mutations(t *testing.T) { exerciseMutations(t, NewMemory()) }
func TestMemory_QuantityLimit(t *testing.T) { exerciseQuantityLimit(t, NewMemory()) }
func TestPostgres_Merge(t *testing.T) { exerciseMerge(t, NewPostgres(pgtest.Pool(t))) }
func TestPostgres_ConcurrentMerge(t *testing.T) { exerciseConcurrentMerge(t, NewPostgres(pgtest.Pool(t))) }
func TestPostgres_Mutations(t *testing.T) { exerciseMutations(t, NewPostgres(pgtest.Pool(t))) }
func TestPostgres_QuantityLimit(t *testing.T) { exerciseQuantityLimit(t, NewPostgres(pgtest.Pool(t))) }
