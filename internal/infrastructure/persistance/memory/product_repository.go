package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository is the in-memory product table.
type ProductRepository struct {
	s *Store
}

// Create stores a copy of product if its category exists.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return repository.ErrCategoryNotFound
	}
	r.s.products[product.ID] = row[entity.Product]{seq: r.s.next(), value: *product}
	return nil
}

// GetByID returns a copy of the stored product.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	p := stored.value
	return &p, nil
}

// Update overwrites the stored product.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.products[product.ID]
	if !ok {
		return repository.ErrProductNotFound
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return repository.ErrCategoryNotFound
	}
	stored.value = *product
	r.s.products[product.ID] = stored
	return nil
}

// Delete removes a product that owns no SKUs.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	for _, sku := range r.s.skus {
		if sku.value.ProductID == id {
			return repository.ErrHasChildren
		}
	}
	delete(r.s.products, id)
	return nil
}

// FindAll returns the products matching filter in creation order,
// windowed by Offset and Limit.
func (r *ProductRepository) FindAll(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matches := sortedValues(r.s.products, productMatcher(filter))

	start := min(max(filter.Offset, 0), len(matches))
	end := len(matches)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, end)
	}

	out := make([]*entity.Product, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, &matches[i])
	}
	return out, nil
}

// Count returns the number of products matching filter.
func (r *ProductRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	keep := productMatcher(filter)
	var n int64
	for _, p := range r.s.products {
		if keep(p.value) {
			n++
		}
	}
	return n, nil
}

// CountByCategory returns the number of products in a category.
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return r.Count(ctx, repository.ProductFilter{CategoryID: &categoryID})
}

// productMatcher builds the predicate for filter: a case-insensitive
// substring match on name AND an exact category match, each applied
// only when set.
func productMatcher(filter repository.ProductFilter) func(entity.Product) bool {
	var needle string
	if filter.Name != nil {
		needle = strings.ToLower(*filter.Name)
	}
	return func(p entity.Product) bool {
		if filter.Name != nil && !strings.Contains(strings.ToLower(p.Name), needle) {
			return false
		}
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			return false
		}
		return true
	}
}
