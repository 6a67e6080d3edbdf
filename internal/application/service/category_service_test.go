package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "Electronics"},
		{name: "exactly four characters", input: "Toys"},
		{name: "four runes multibyte", input: "Café"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "    ", wantErr: true},
		{name: "too short", input: "Toy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			got, err := f.categories.Create(ctx, dto.CreateCategoryRequest{Name: tt.input})
			if tt.wantErr {
				requireValidation(t, err, "name")
				list, err := f.categories.List(ctx)
				require.NoError(t, err)
				assert.Empty(t, list)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tt.input, got.Name)

			fetched, err := f.categories.GetByID(ctx, got.ID)
			require.NoError(t, err)
			assert.Equal(t, got, fetched)
		})
	}
}

func TestCategoryService_GetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.categories.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.category(t, "Electronics")

	t.Run("renames", func(t *testing.T) {
		got, err := f.categories.Update(ctx, c.ID, dto.UpdateCategoryRequest{Name: "Gadgets"})
		require.NoError(t, err)
		assert.Equal(t, "Gadgets", got.Name)
		assert.Equal(t, c.ID, got.ID)
		assert.Equal(t, c.CreatedAt, got.CreatedAt)
	})

	t.Run("invalid name leaves category unchanged", func(t *testing.T) {
		_, err := f.categories.Update(ctx, c.ID, dto.UpdateCategoryRequest{Name: "TV"})
		requireValidation(t, err, "name")

		fetched, err := f.categories.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Gadgets", fetched.Name)
	})

	t.Run("name is validated before lookup", func(t *testing.T) {
		_, err := f.categories.Update(ctx, uuid.New(), dto.UpdateCategoryRequest{Name: "x"})
		requireValidation(t, err, "name")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.categories.Update(ctx, uuid.New(), dto.UpdateCategoryRequest{Name: "Valid name"})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("empty category", func(t *testing.T) {
		f := newFixture(t)
		c := f.category(t, "Electronics")

		require.NoError(t, f.categories.Delete(ctx, c.ID))

		_, err := f.categories.GetByID(ctx, c.ID)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("category with products is rejected", func(t *testing.T) {
		f := newFixture(t)
		c := f.category(t, "Electronics")
		p := f.product(t, "Laptop", c.ID)

		err := f.categories.Delete(ctx, c.ID)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))

		_, err = f.categories.GetByID(ctx, c.ID)
		require.NoError(t, err)
		_, err = f.products.GetByID(ctx, p.ID)
		require.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t)
		err := f.categories.Delete(ctx, uuid.New())
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestCategoryService_List_CreationOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	names := []string{"Zeta", "Alpha", "Mid category"}
	for _, n := range names {
		f.category(t, n)
	}

	list, err := f.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, n := range names {
		assert.Equal(t, n, list[i].Name)
	}
}
