package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store) (*entity.Category, *entity.Product) {
	t.Helper()
	ctx := context.Background()

	c, err := entity.NewCategory("Electronics")
	require.NoError(t, err)
	require.NoError(t, s.Categories().Create(ctx, c))

	p, err := entity.NewProduct("Laptop", c.ID)
	require.NoError(t, err)
	require.NoError(t, s.Products().Create(ctx, p))
	return c, p
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c, _ := seed(t, s)

	got, err := s.Categories().GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := s.Categories().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", again.Name)
}

func TestStore_ReferentialChecks(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c, p := seed(t, s)

	orphan, err := entity.NewProduct("Orphan", uuid.New())
	require.NoError(t, err)
	assert.ErrorIs(t, s.Products().Create(ctx, orphan), repository.ErrCategoryNotFound)

	assert.ErrorIs(t, s.Categories().Delete(ctx, c.ID), repository.ErrHasChildren)

	sku, err := entity.NewSKU(p.ID, "LP-1", 1, decimal.NewFromInt(5))
	require.NoError(t, err)
	require.NoError(t, s.SKUs().Create(ctx, sku))
	assert.ErrorIs(t, s.Products().Delete(ctx, p.ID), repository.ErrHasChildren)

	dup, err := entity.NewSKU(p.ID, "LP-1", 1, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.ErrorIs(t, s.SKUs().Create(ctx, dup), repository.ErrDuplicateSKUCode)

	stray, err := entity.NewSKU(uuid.New(), "LP-1", 1, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.ErrorIs(t, s.SKUs().Create(ctx, stray), repository.ErrProductNotFound)
}

func TestProductRepository_FindAllWindow(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	c, first := seed(t, s)

	for _, name := range []string{"Mouse", "Keyboard", "Monitor"} {
		p, err := entity.NewProduct(name, c.ID)
		require.NoError(t, err)
		require.NoError(t, s.Products().Create(ctx, p))
	}

	all, err := s.Products().FindAll(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, first.ID, all[0].ID)

	window, err := s.Products().FindAll(ctx, repository.ProductFilter{Offset: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "Mouse", window[0].Name)
	assert.Equal(t, "Keyboard", window[1].Name)

	past, err := s.Products().FindAll(ctx, repository.ProductFilter{Offset: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, past)

	name := "MO"
	n, err := s.Products().Count(ctx, repository.ProductFilter{Name: &name, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestSKURepository_ConcurrentCreateSameCode(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, p := seed(t, s)

	const writers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sku, err := entity.NewSKU(p.ID, "SAME", 1, decimal.NewFromInt(1))
			if err != nil {
				return
			}
			if s.SKUs().Create(ctx, sku) == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	n, err := s.SKUs().CountByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStore()
	_, err := s.Categories().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}
