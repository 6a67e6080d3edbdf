package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
)

// SKURepository defines the interface for SKU persistence operations.
// Implementations enforce (product_id, code) uniqueness at the storage
// boundary so that concurrent writers cannot both succeed.
type SKURepository interface {
	// Create persists a new SKU.
	//
	// Returns:
	//   - error: ErrProductNotFound if the owning product is gone,
	//     ErrDuplicateSKUCode if the product already has the code
	Create(ctx context.Context, sku *entity.SKU) error

	// GetByID retrieves a SKU by its unique identifier.
	//
	// Returns:
	//   - error: ErrSKUNotFound if the SKU doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SKU, error)

	// Update persists code, quantity and price of an existing SKU.
	//
	// Returns:
	//   - error: ErrSKUNotFound if the SKU doesn't exist,
	//     ErrDuplicateSKUCode if a sibling already uses the new code
	Update(ctx context.Context, sku *entity.SKU) error

	// Delete removes a SKU.
	//
	// Returns:
	//   - error: ErrSKUNotFound if the SKU doesn't exist
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByProduct returns every SKU owned by a product in creation order.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.SKU, error)

	// FindByProductAndCode retrieves the SKU of a product with the given code.
	//
	// Returns:
	//   - error: ErrSKUNotFound if no such SKU exists
	FindByProductAndCode(ctx context.Context, productID uuid.UUID, code string) (*entity.SKU, error)

	// CountByProduct returns the number of SKUs owned by a product.
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
