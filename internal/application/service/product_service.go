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
	"github.com/hapkiduki/inventory-go/internal/domain/valueobject"
)

const entityProduct = "product"

// ProductService manages products and product search.
type ProductService struct {
	categories  repository.CategoryRepository
	products    repository.ProductRepository
	skus        repository.SKURepository
	log         port.Logger
	maxPageSize int
}

// NewProductService builds a ProductService.
//
// Parameters:
//   - categories: category store, used for referential checks
//   - products: product store
//   - skus: SKU store, used to protect products with SKUs on delete
//   - log: structured logger
//   - maxPageSize: upper bound for search page size (<= 0 means the default)
func NewProductService(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	skus repository.SKURepository,
	log port.Logger,
	maxPageSize int,
) *ProductService {
	if maxPageSize <= 0 {
		maxPageSize = valueobject.DefaultMaxPageSize
	}
	return &ProductService{
		categories:  categories,
		products:    products,
		skus:        skus,
		log:         log.With("service", "product"),
		maxPageSize: maxPageSize,
	}
}

// Create persists a new product in an existing category.
// Checks run in order: category present, category resolves, name valid.
func (s *ProductService) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := entity.ValidateCategoryRef(in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	product, err := entity.NewProduct(in.Name, in.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domain.NewNotFoundError(entityCategory, in.CategoryID)
		}
		return nil, s.unexpected(ctx, "create product", err)
	}

	s.log.WithContext(ctx).Info("product created", "product_id", product.ID, "category_id", product.CategoryID)
	return dto.NewProductResponse(product), nil
}

// GetByID returns the product with the given id.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// Update applies a partial update. A provided name is re-validated; a
// provided category must resolve.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := product.Rename(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.CategoryID != nil {
		if err := entity.ValidateCategoryRef(*in.CategoryID); err != nil {
			return nil, err
		}
		if err := s.requireCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		if err := product.MoveToCategory(*in.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.products.Update(ctx, product); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domain.NewNotFoundError(entityProduct, id)
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, domain.NewNotFoundError(entityCategory, product.CategoryID)
		}
		return nil, s.unexpected(ctx, "update product", err)
	}

	s.log.WithContext(ctx).Info("product updated", "product_id", id)
	return dto.NewProductResponse(product), nil
}

// Delete removes a product. Products that still own SKUs are rejected
// with a ConflictError.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	owned, err := s.skus.CountByProduct(ctx, id)
	if err != nil {
		return s.unexpected(ctx, "count product skus", err)
	}
	if owned > 0 {
		return domain.NewConflictError(entityProduct, id, fmt.Sprintf("product still owns %d SKU(s)", owned))
	}

	if err := s.products.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return domain.NewNotFoundError(entityProduct, id)
		case errors.Is(err, repository.ErrHasChildren):
			return domain.NewConflictError(entityProduct, id, "product still owns SKUs")
		}
		return s.unexpected(ctx, "delete product", err)
	}

	s.log.WithContext(ctx).Info("product deleted", "product_id", id)
	return nil
}

// Search returns one page of products matching the optional name and
// category filters, plus the total number of matches.
//
// Parameters:
//   - ctx: request context
//   - in: filters (nil means "not applied") and zero-based page request
//
// Returns:
//   - *dto.ProductPage: items in creation order and pagination metadata
//   - error: *domain.ValidationError for a negative page or non-positive size
func (s *ProductService) Search(ctx context.Context, in dto.SearchProductsRequest) (*dto.ProductPage, error) {
	page, err := valueobject.NewPage(in.Page, in.PageSize, s.maxPageSize)
	if err != nil {
		return nil, err
	}

	filter := repository.ProductFilter{
		Name:       in.Name,
		CategoryID: in.CategoryID,
		Limit:      page.Limit(),
		Offset:     page.Offset(),
	}

	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, s.unexpected(ctx, "count products", err)
	}

	items := make([]dto.ProductResponse, 0, page.Limit())
	if int64(page.Offset()) < total {
		products, err := s.products.FindAll(ctx, filter)
		if err != nil {
			return nil, s.unexpected(ctx, "search products", err)
		}
		for _, p := range products {
			items = append(items, *dto.NewProductResponse(p))
		}
	}

	return &dto.ProductPage{
		Items:      items,
		TotalCount: total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages(total),
		HasMore:    page.HasMore(total),
	}, nil
}

func (s *ProductService) requireCategory(ctx context.Context, id uuid.UUID) error {
	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return s.unexpected(ctx, "check category", err)
	}
	if !exists {
		return domain.NewNotFoundError(entityCategory, id)
	}
	return nil
}

func (s *ProductService) find(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domain.NewNotFoundError(entityProduct, id)
		}
		return nil, s.unexpected(ctx, "get product", err)
	}
	return product, nil
}

func (s *ProductService) unexpected(ctx context.Context, op string, err error) error {
	s.log.WithContext(ctx).Error("store failure", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
