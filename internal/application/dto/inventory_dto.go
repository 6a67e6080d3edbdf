package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest is the input for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest is the input for renaming a category.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse is the output representation of a category.
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateProductRequest is the input for creating a product.
type CreateProductRequest struct {
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"categoryId"`
}

// UpdateProductRequest is a partial update; nil fields are left unchanged.
type UpdateProductRequest struct {
	Name       *string    `json:"name,omitempty"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
}

// SearchProductsRequest filters and pages products.
// Nil filters are not applied.
type SearchProductsRequest struct {
	Name       *string
	CategoryID *uuid.UUID
	Page       int
	PageSize   int
}

// ProductResponse is the output representation of a product.
type ProductResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProductPage is a page of product search results.
type ProductPage = PaginateResponse[ProductResponse]

// SKURequest carries every SKU field. It is used for both create and
// update; update replaces all three values.
type SKURequest struct {
	Code     string          `json:"code"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// SKUResponse is the output representation of a SKU.
type SKUResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	Code      string          `json:"code"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewCategoryResponse maps a category entity to its response.
func NewCategoryResponse(c *entity.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewProductResponse maps a product entity to its response.
func NewProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// NewSKUResponse maps a SKU entity to its response.
func NewSKUResponse(s *entity.SKU) *SKUResponse {
	return &SKUResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Code:      s.Code,
		Quantity:  s.Quantity,
		Price:     s.Price,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
