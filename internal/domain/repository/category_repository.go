package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
//
// Example usage:
//
//	repo := store.Categories()
//	category, err := repo.GetByID(ctx, categoryID)
type CategoryRepository interface {
	// Create persists a new category.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - category: the category to create
	//
	// Returns:
	//   - error: any error encountered during creation
	Create(ctx context.Context, category *entity.Category) error

	// GetByID retrieves a category by its unique identifier.
	//
	// Returns:
	//   - *entity.Category: the retrieved category
	//   - error: ErrCategoryNotFound if the category doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Update persists changes to an existing category.
	//
	// Returns:
	//   - error: ErrCategoryNotFound if the category doesn't exist
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category.
	//
	// Returns:
	//   - error: ErrCategoryNotFound if the category doesn't exist,
	//     ErrHasChildren if products still reference it
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all categories in creation order.
	List(ctx context.Context) ([]*entity.Category, error)

	// Exists reports whether a category with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
