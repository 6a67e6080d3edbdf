package service_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		f := newFixture(t)
		c := f.category(t, "Electronics")

		p, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "TV", CategoryID: c.ID})
		require.NoError(t, err)
		assert.Equal(t, "TV", p.Name)
		assert.Equal(t, c.ID, p.CategoryID)
	})

	t.Run("missing category id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Laptop"})
		requireValidation(t, err, "categoryId")
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "Laptop", CategoryID: uuid.New()})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("category is resolved before the name is checked", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "x", CategoryID: uuid.New()})
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("short name", func(t *testing.T) {
		f := newFixture(t)
		c := f.category(t, "Electronics")

		_, err := f.products.Create(ctx, dto.CreateProductRequest{Name: "X", CategoryID: c.ID})
		requireValidation(t, err, "name")

		page, err := f.products.Search(ctx, dto.SearchProductsRequest{PageSize: 10})
		require.NoError(t, err)
		assert.Zero(t, page.TotalCount)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	electronics := f.category(t, "Electronics")
	audio := f.category(t, "Audio gear")
	p := f.product(t, "Headphone", electronics.ID)

	t.Run("partial name update keeps category", func(t *testing.T) {
		got, err := f.products.Update(ctx, p.ID, dto.UpdateProductRequest{Name: ptr("Headphones")})
		require.NoError(t, err)
		assert.Equal(t, "Headphones", got.Name)
		assert.Equal(t, electronics.ID, got.CategoryID)
	})

	t.Run("move to another category", func(t *testing.T) {
		got, err := f.products.Update(ctx, p.ID, dto.UpdateProductRequest{CategoryID: ptr(audio.ID)})
		require.NoError(t, err)
		assert.Equal(t, "Headphones", got.Name)
		assert.Equal(t, audio.ID, got.CategoryID)
	})

	t.Run("unknown category leaves product unchanged", func(t *testing.T) {
		_, err := f.products.Update(ctx, p.ID, dto.UpdateProductRequest{CategoryID: ptr(uuid.New())})
		assert.True(t, domain.IsNotFound(err))

		fetched, err := f.products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, audio.ID, fetched.CategoryID)
	})

	t.Run("nil category is rejected", func(t *testing.T) {
		_, err := f.products.Update(ctx, p.ID, dto.UpdateProductRequest{CategoryID: ptr(uuid.Nil)})
		requireValidation(t, err, "categoryId")
	})

	t.Run("short name is rejected", func(t *testing.T) {
		_, err := f.products.Update(ctx, p.ID, dto.UpdateProductRequest{Name: ptr("H")})
		requireValidation(t, err, "name")

		fetched, err := f.products.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Headphones", fetched.Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := f.products.Update(ctx, uuid.New(), dto.UpdateProductRequest{Name: ptr("Valid")})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("product without SKUs", func(t *testing.T) {
		f := newFixture(t)
		c := f.category(t, "Electronics")
		p := f.product(t, "Laptop", c.ID)

		require.NoError(t, f.products.Delete(ctx, p.ID))
		_, err := f.products.GetByID(ctx, p.ID)
		assert.True(t, domain.IsNotFound(err))

		// the category is now empty and can go
		require.NoError(t, f.categories.Delete(ctx, c.ID))
	})

	t.Run("product with SKUs is rejected", func(t *testing.T) {
		f := newFixture(t)
		c := f.category(t, "Electronics")
		p := f.product(t, "Laptop", c.ID)
		s := f.sku(t, p.ID, "LP-1", 1, "999.99")

		err := f.products.Delete(ctx, p.ID)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))

		_, err = f.skus.Get(ctx, s.ID)
		require.NoError(t, err)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		assert.True(t, domain.IsNotFound(f.products.Delete(ctx, uuid.New())))
	})
}

func TestProductService_Search(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	electronics := f.category(t, "Electronics")
	other := f.category(t, "Furniture")
	iphone := f.product(t, "iPhone", electronics.ID)
	headphone := f.product(t, "Headphone", electronics.ID)
	f.product(t, "Laptop", other.ID)

	tests := []struct {
		name      string
		req       dto.SearchProductsRequest
		wantNames []string
		wantTotal int64
	}{
		{
			name:      "name substring ignores case",
			req:       dto.SearchProductsRequest{Name: ptr("PHONE"), PageSize: 10},
			wantNames: []string{iphone.Name, headphone.Name},
			wantTotal: 2,
		},
		{
			name:      "name and category combine",
			req:       dto.SearchProductsRequest{Name: ptr("phone"), CategoryID: ptr(other.ID), PageSize: 10},
			wantNames: []string{},
			wantTotal: 0,
		},
		{
			name:      "category only",
			req:       dto.SearchProductsRequest{CategoryID: ptr(other.ID), PageSize: 10},
			wantNames: []string{"Laptop"},
			wantTotal: 1,
		},
		{
			name:      "no filters",
			req:       dto.SearchProductsRequest{PageSize: 10},
			wantNames: []string{"iPhone", "Headphone", "Laptop"},
			wantTotal: 3,
		},
		{
			name:      "empty name matches everything",
			req:       dto.SearchProductsRequest{Name: ptr(""), PageSize: 10},
			wantNames: []string{"iPhone", "Headphone", "Laptop"},
			wantTotal: 3,
		},
		{
			name:      "page beyond the end",
			req:       dto.SearchProductsRequest{Page: 5, PageSize: 10},
			wantNames: []string{},
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := f.products.Search(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, page.TotalCount)

			names := make([]string, 0, len(page.Items))
			for _, item := range page.Items {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestProductService_Search_ThreeCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cat1 := f.category(t, "Computers")
	cat2 := f.category(t, "Phones")
	cat3 := f.category(t, "Audio gear")
	f.product(t, "iPhone", cat2.ID)
	f.product(t, "Headphone", cat3.ID)
	f.product(t, "Laptop", cat1.ID)

	byName, err := f.products.Search(ctx, dto.SearchProductsRequest{Name: ptr("phone"), PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, byName.TotalCount)
	require.Len(t, byName.Items, 2)
	assert.ElementsMatch(t, []string{"iPhone", "Headphone"}, []string{byName.Items[0].Name, byName.Items[1].Name})

	byCategory, err := f.products.Search(ctx, dto.SearchProductsRequest{CategoryID: ptr(cat2.ID), PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, byCategory.TotalCount)
	require.Len(t, byCategory.Items, 1)
	assert.Equal(t, "iPhone", byCategory.Items[0].Name)
}

func TestProductService_Search_Pagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := f.category(t, "Electronics")
	for i := 0; i < 25; i++ {
		f.product(t, fmt.Sprintf("Product %02d", i), c.ID)
	}

	seen := make(map[uuid.UUID]bool)
	for pageNum := 0; pageNum < 3; pageNum++ {
		page, err := f.products.Search(ctx, dto.SearchProductsRequest{Page: pageNum, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 25, page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, pageNum < 2, page.HasMore)

		for i, item := range page.Items {
			assert.Equal(t, fmt.Sprintf("Product %02d", pageNum*10+i), item.Name)
			assert.False(t, seen[item.ID], "product %s returned twice", item.ID)
			seen[item.ID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestProductService_Search_InvalidPage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.products.Search(ctx, dto.SearchProductsRequest{Page: -1, PageSize: 10})
	requireValidation(t, err, "page")

	_, err = f.products.Search(ctx, dto.SearchProductsRequest{Page: 0, PageSize: 0})
	requireValidation(t, err, "pageSize")

	c := f.category(t, "Electronics")
	f.product(t, "Laptop", c.ID)
	f.product(t, "Phone", c.ID)

	_, err = f.products.Search(ctx, dto.SearchProductsRequest{Page: math.MaxInt/100 + 1, PageSize: 100})
	requireValidation(t, err, "page")
}

func TestProductService_Search_ClampsPageSize(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	page, err := f.products.Search(ctx, dto.SearchProductsRequest{PageSize: 5000})
	require.NoError(t, err)
	assert.Equal(t, 100, page.PageSize)
	assert.NotNil(t, page.Items)
}
