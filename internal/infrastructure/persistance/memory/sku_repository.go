package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepository)(nil)

// SKURepository is the in-memory SKU table. The (product_id, code) pair is
// unique, matching the postgres constraint.
type SKURepository struct {
	s *Store
}

// Create stores a copy of sku if its product exists and the code is free.
func (r *SKURepository) Create(ctx context.Context, sku *entity.SKU) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[sku.ProductID]; !ok {
		return repository.ErrProductNotFound
	}
	if r.codeTaken(sku.ProductID, sku.Code, uuid.Nil) {
		return repository.ErrDuplicateSKUCode
	}
	r.s.skus[sku.ID] = row[entity.SKU]{seq: r.s.next(), value: *sku}
	return nil
}

// GetByID returns a copy of the stored SKU.
func (r *SKURepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SKU, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.skus[id]
	if !ok {
		return nil, repository.ErrSKUNotFound
	}
	sku := stored.value
	return &sku, nil
}

// Update overwrites code, quantity, price and UpdatedAt of a stored SKU.
// The owning product is never changed.
func (r *SKURepository) Update(ctx context.Context, sku *entity.SKU) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.skus[sku.ID]
	if !ok {
		return repository.ErrSKUNotFound
	}
	if r.codeTaken(stored.value.ProductID, sku.Code, sku.ID) {
		return repository.ErrDuplicateSKUCode
	}
	stored.value.Code = sku.Code
	stored.value.Quantity = sku.Quantity
	stored.value.Price = sku.Price
	stored.value.UpdatedAt = sku.UpdatedAt
	r.s.skus[sku.ID] = stored
	return nil
}

// Delete removes a SKU.
func (r *SKURepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.skus[id]; !ok {
		return repository.ErrSKUNotFound
	}
	delete(r.s.skus, id)
	return nil
}

// FindByProduct returns the SKUs of a product in creation order.
func (r *SKURepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.SKU, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	values := sortedValues(r.s.skus, func(s entity.SKU) bool { return s.ProductID == productID })
	out := make([]*entity.SKU, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out, nil
}

// FindByProductAndCode returns the SKU of productID with the given code.
func (r *SKURepository) FindByProductAndCode(ctx context.Context, productID uuid.UUID, code string) (*entity.SKU, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, stored := range r.s.skus {
		if stored.value.ProductID == productID && stored.value.Code == code {
			sku := stored.value
			return &sku, nil
		}
	}
	return nil, repository.ErrSKUNotFound
}

// CountByProduct returns the number of SKUs owned by a product.
func (r *SKURepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, stored := range r.s.skus {
		if stored.value.ProductID == productID {
			n++
		}
	}
	return n, nil
}

// codeTaken reports whether another SKU of productID already uses code.
// Callers must hold the store lock.
func (r *SKURepository) codeTaken(productID uuid.UUID, code string, exclude uuid.UUID) bool {
	for id, stored := range r.s.skus {
		if id != exclude && stored.value.ProductID == productID && stored.value.Code == code {
			return true
		}
	}
	return false
}
