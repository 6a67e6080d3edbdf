package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository is the in-memory category table.
type CategoryRepository struct {
	s *Store
}

// Create stores a copy of category.
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.categories[category.ID] = row[entity.Category]{seq: r.s.next(), value: *category}
	return nil
}

// GetByID returns a copy of the stored category.
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	c := stored.value
	return &c, nil
}

// Update overwrites the stored category, keeping its position in the listing.
func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.categories[category.ID]
	if !ok {
		return repository.ErrCategoryNotFound
	}
	stored.value = *category
	r.s.categories[category.ID] = stored
	return nil
}

// Delete removes a category that owns no products.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	for _, p := range r.s.products {
		if p.value.CategoryID == id {
			return repository.ErrHasChildren
		}
	}
	delete(r.s.categories, id)
	return nil
}

// List returns all categories in creation order.
func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	values := sortedValues(r.s.categories, nil)
	out := make([]*entity.Category, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out, nil
}

// Exists reports whether the category is stored.
func (r *CategoryRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.categories[id]
	return ok, nil
}
