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

const entitySKU = "sku"

// SKUService manages the SKUs of products.
type SKUService struct {
	products repository.ProductRepository
	skus     repository.SKURepository
	log      port.Logger
}

// NewSKUService builds a SKUService.
func NewSKUService(products repository.ProductRepository, skus repository.SKURepository, log port.Logger) *SKUService {
	return &SKUService{
		products: products,
		skus:     skus,
		log:      log.With("service", "sku"),
	}
}

// AddToProduct creates a SKU under a product. Field rules are checked
// before any store access; the code must be unused within the product.
func (s *SKUService) AddToProduct(ctx context.Context, productID uuid.UUID, in dto.SKURequest) (*dto.SKUResponse, error) {
	if err := entity.ValidateSKUFields(in.Code, in.Quantity, in.Price); err != nil {
		return nil, err
	}
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}

	_, err := s.skus.FindByProductAndCode(ctx, productID, in.Code)
	switch {
	case err == nil:
		return nil, duplicateCode(in.Code)
	case !errors.Is(err, repository.ErrSKUNotFound):
		return nil, s.unexpected(ctx, "find sku by code", err)
	}

	sku, err := entity.NewSKU(productID, in.Code, in.Quantity, in.Price)
	if err != nil {
		return nil, err
	}

	if err := s.skus.Create(ctx, sku); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSKUCode):
			return nil, duplicateCode(in.Code)
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domain.NewNotFoundError(entityProduct, productID)
		}
		return nil, s.unexpected(ctx, "create sku", err)
	}

	s.log.WithContext(ctx).Info("sku added", "sku_id", sku.ID, "product_id", productID, "code", sku.Code)
	return dto.NewSKUResponse(sku), nil
}

// Get returns the SKU with the given id.
func (s *SKUService) Get(ctx context.Context, skuID uuid.UUID) (*dto.SKUResponse, error) {
	sku, err := s.find(ctx, skuID)
	if err != nil {
		return nil, err
	}
	return dto.NewSKUResponse(sku), nil
}

// Update replaces code, quantity and price of a SKU. The new code must not
// be used by another SKU of the same product.
func (s *SKUService) Update(ctx context.Context, skuID uuid.UUID, in dto.SKURequest) (*dto.SKUResponse, error) {
	if err := entity.ValidateSKUFields(in.Code, in.Quantity, in.Price); err != nil {
		return nil, err
	}
	sku, err := s.find(ctx, skuID)
	if err != nil {
		return nil, err
	}

	sibling, err := s.skus.FindByProductAndCode(ctx, sku.ProductID, in.Code)
	switch {
	case err == nil && sibling.ID != sku.ID:
		return nil, duplicateCode(in.Code)
	case err != nil && !errors.Is(err, repository.ErrSKUNotFound):
		return nil, s.unexpected(ctx, "find sku by code", err)
	}

	if err := sku.Replace(in.Code, in.Quantity, in.Price); err != nil {
		return nil, err
	}

	if err := s.skus.Update(ctx, sku); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSKUCode):
			return nil, duplicateCode(in.Code)
		case errors.Is(err, repository.ErrSKUNotFound):
			return nil, domain.NewNotFoundError(entitySKU, skuID)
		}
		return nil, s.unexpected(ctx, "update sku", err)
	}

	s.log.WithContext(ctx).Info("sku updated", "sku_id", skuID, "product_id", sku.ProductID)
	return dto.NewSKUResponse(sku), nil
}

// Delete removes a SKU.
func (s *SKUService) Delete(ctx context.Context, skuID uuid.UUID) error {
	if err := s.skus.Delete(ctx, skuID); err != nil {
		if errors.Is(err, repository.ErrSKUNotFound) {
			return domain.NewNotFoundError(entitySKU, skuID)
		}
		return s.unexpected(ctx, "delete sku", err)
	}

	s.log.WithContext(ctx).Info("sku deleted", "sku_id", skuID)
	return nil
}

// ListByProduct returns every SKU of a product in creation order.
func (s *SKUService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*dto.SKUResponse, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return nil, err
	}
	skus, err := s.skus.FindByProduct(ctx, productID)
	if err != nil {
		return nil, s.unexpected(ctx, "list skus", err)
	}
	out := make([]*dto.SKUResponse, 0, len(skus))
	for _, sku := range skus {
		out = append(out, dto.NewSKUResponse(sku))
	}
	return out, nil
}

func (s *SKUService) requireProduct(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domain.NewNotFoundError(entityProduct, productID)
		}
		return s.unexpected(ctx, "get product", err)
	}
	return nil
}

func (s *SKUService) find(ctx context.Context, skuID uuid.UUID) (*entity.SKU, error) {
	sku, err := s.skus.GetByID(ctx, skuID)
	if err != nil {
		if errors.Is(err, repository.ErrSKUNotFound) {
			return nil, domain.NewNotFoundError(entitySKU, skuID)
		}
		return nil, s.unexpected(ctx, "get sku", err)
	}
	return sku, nil
}

func (s *SKUService) unexpected(ctx context.Context, op string, err error) error {
	s.log.WithContext(ctx).Error("store failure", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

func duplicateCode(code string) error {
	return domain.NewValidationError("code", fmt.Sprintf("SKU with code %q already exists for the product", code))
}
