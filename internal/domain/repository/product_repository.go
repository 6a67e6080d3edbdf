// Package repository contains the repository interfaces (ports) for data access.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
)

// ProductFilter contains criteria for filtering products.
type ProductFilter struct {
	// Name matches products whose name contains this value, ignoring case.
	Name *string

	// CategoryID restricts results to products in this category.
	CategoryID *uuid.UUID

	// Limit specifies the maximum number of results (0 means no limit).
	Limit int

	// Offset specifies the starting position for pagination.
	Offset int
}

// ProductRepository defines the interface for product persistence operations.
// It abstracts the data access layer for product entities.
//
// Example usage:
//
//	repo := postgres.NewProductRepository(pool)
//	product, err := repo.GetByID(ctx, productID)
type ProductRepository interface {
	// Create persists a new product to the data store.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - product: The product to create
	//
	// Returns:
	//   - error: ErrCategoryNotFound if the referenced category is gone
	Create(ctx context.Context, product *entity.Product) error

	// GetByID retrieves a product by its unique identifier.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - id: The product's UUID
	//
	// Returns:
	//   - *entity.Product: The retrieved product
	//   - error: ErrProductNotFound if product doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Update persists changes to an existing product.
	//
	// Returns:
	//   - error: ErrProductNotFound if product doesn't exist,
	//     ErrCategoryNotFound if the new category is gone
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the data store.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - id: The product's UUID
	//
	// Returns:
	//   - error: ErrProductNotFound if product doesn't exist,
	//     ErrHasChildren if SKUs still reference it
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAll retrieves products matching the given filter criteria,
	// ordered by creation time and then ID so pages are stable.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - filter: Criteria to filter products
	//
	// Returns:
	//   - []*entity.Product: List of matching products
	//   - error: any error encountered during retrieval
	FindAll(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Count returns the total number of products matching the filter.
	// Limit and Offset are ignored.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - filter: Criteria to filter products
	//
	// Returns:
	//   - int64: Count of matching products
	//   - error: any error encountered during counting
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// CountByCategory returns the number of products in a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
