package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/application/service"
	"github.com/hapkiduki/inventory-go/internal/domain"
	"github.com/hapkiduki/inventory-go/internal/infrastructure/logging"
	"github.com/hapkiduki/inventory-go/internal/infrastructure/persistance/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *memory.Store
	categories *service.CategoryService
	products   *service.ProductService
	skus       *service.SKUService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	log := logging.Nop()
	return &fixture{
		store:      store,
		categories: service.NewCategoryService(store.Categories(), store.Products(), log),
		products:   service.NewProductService(store.Categories(), store.Products(), store.SKUs(), log, 100),
		skus:       service.NewSKUService(store.Products(), store.SKUs(), log),
	}
}

func (f *fixture) category(t *testing.T, name string) *dto.CategoryResponse {
	t.Helper()
	c, err := f.categories.Create(context.Background(), dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return c
}

func (f *fixture) product(t *testing.T, name string, categoryID uuid.UUID) *dto.ProductResponse {
	t.Helper()
	p, err := f.products.Create(context.Background(), dto.CreateProductRequest{Name: name, CategoryID: categoryID})
	require.NoError(t, err)
	return p
}

func (f *fixture) sku(t *testing.T, productID uuid.UUID, code string, qty int, price string) *dto.SKUResponse {
	t.Helper()
	s, err := f.skus.AddToProduct(context.Background(), productID, dto.SKURequest{
		Code:     code,
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return s
}

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, field, ve.Field)
}

func ptr[T any](v T) *T { return &v }
