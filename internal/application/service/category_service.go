// Package service contains the inventory use cases. Each service composes
// repository access with entity validation and cross-entity referential
// checks, and returns typed domain errors on failure.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/application/dto"
	"github.com/hapkiduki/inventory-go/internal/application/port"
	"github.com/hapkiduki/inventory-go/internal/domain"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
)

const entityCategory = "category"

// CategoryService manages categories.
type CategoryService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	log        port.Logger
}

// NewCategoryService builds a CategoryService.
//
// Parameters:
//   - categories: category store
//   - products: product store, used to protect non-empty categories on delete
//   - log: structured logger
func NewCategoryService(categories repository.CategoryRepository, products repository.ProductRepository, log port.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		products:   products,
		log:        log.With("service", "category"),
	}
}

// Create validates the name and persists a new category.
func (s *CategoryService) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := entity.NewCategory(in.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, s.unexpected(ctx, "create category", err)
	}

	s.log.WithContext(ctx).Info("category created", "category_id", category.ID)
	return dto.NewCategoryResponse(category), nil
}

// GetByID returns the category with the given id.
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCategoryResponse(category), nil
}

// Update renames a category. The name is validated before the lookup.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := entity.ValidateCategoryName(in.Name); err != nil {
		return nil, err
	}
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(in.Name); err != nil {
		return nil, err
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domain.NewNotFoundError(entityCategory, id)
		}
		return nil, s.unexpected(ctx, "update category", err)
	}

	s.log.WithContext(ctx).Info("category updated", "category_id", id)
	return dto.NewCategoryResponse(category), nil
}

// Delete removes a category. Categories that still own products are
// rejected with a ConflictError.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return s.unexpected(ctx, "check category", err)
	}
	if !exists {
		return domain.NewNotFoundError(entityCategory, id)
	}

	owned, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return s.unexpected(ctx, "count category products", err)
	}
	if owned > 0 {
		return domain.NewConflictError(entityCategory, id, fmt.Sprintf("category still owns %d product(s)", owned))
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return domain.NewNotFoundError(entityCategory, id)
		case errors.Is(err, repository.ErrHasChildren):
			return domain.NewConflictError(entityCategory, id, "category still owns products")
		}
		return s.unexpected(ctx, "delete category", err)
	}

	s.log.WithContext(ctx).Info("category deleted", "category_id", id)
	return nil
}

// List returns every category in creation order.
func (s *CategoryService) List(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, s.unexpected(ctx, "list categories", err)
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.NewCategoryResponse(c))
	}
	return out, nil
}

func (s *CategoryService) find(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domain.NewNotFoundError(entityCategory, id)
		}
		return nil, s.unexpected(ctx, "get category", err)
	}
	return category, nil
}

func (s *CategoryService) unexpected(ctx context.Context, op string, err error) error {
	s.log.WithContext(ctx).Error("store failure", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
