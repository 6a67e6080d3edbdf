// Package memory provides in-process implementations of the repository
// interfaces. All three tables share one lock so referential and
// uniqueness checks are atomic with the writes they guard.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
)

// row pairs a stored entity with its insertion sequence, which gives a
// deterministic order when timestamps collide.
type row[T any] struct {
	seq   uint64
	value T
}

// Store holds categories, products and SKUs in memory.
//
// Example usage:
//
//	store := memory.NewStore()
//	svc := service.NewCategoryService(store.Categories(), store.Products(), log)
type Store struct {
	mu         sync.RWMutex
	seq        uint64
	categories map[uuid.UUID]row[entity.Category]
	products   map[uuid.UUID]row[entity.Product]
	skus       map[uuid.UUID]row[entity.SKU]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		categories: make(map[uuid.UUID]row[entity.Category]),
		products:   make(map[uuid.UUID]row[entity.Product]),
		skus:       make(map[uuid.UUID]row[entity.SKU]),
	}
}

// Categories returns the category repository backed by this store.
func (s *Store) Categories() repository.CategoryRepository {
	return &CategoryRepository{s: s}
}

// Products returns the product repository backed by this store.
func (s *Store) Products() repository.ProductRepository {
	return &ProductRepository{s: s}
}

// SKUs returns the SKU repository backed by this store.
func (s *Store) SKUs() repository.SKURepository {
	return &SKURepository{s: s}
}

// Ping always succeeds; the store lives in process.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op kept for parity with the postgres store.
func (s *Store) Close() {}

func (s *Store) next() uint64 {
	s.seq++
	return s.seq
}

// sortedValues returns the values of m ordered by insertion sequence.
func sortedValues[T any](m map[uuid.UUID]row[T], keep func(T) bool) []T {
	rows := make([]row[T], 0, len(m))
	for _, r := range m {
		if keep == nil || keep(r.value) {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.value
	}
	return out
}
