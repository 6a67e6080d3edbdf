package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item that belongs to exactly one category and owns
// zero or more SKUs.
type Product struct {
	// ID is the unique identifier for the product
	ID uuid.UUID `json:"id"`

	// Name is the name of the product
	Name string `json:"name"`

	// CategoryID references the owning category
	CategoryID uuid.UUID `json:"category_id"`

	// CreatedAt is the timestamp when the product was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the product was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct creates a new Product entity in the given category.
// The caller is responsible for checking that the category exists.
//
// Parameters:
//   - name: Name of the product (required, at least 2 characters)
//   - categoryID: owning category (required)
//
// Returns:
//   - *Product: newly created Product
//   - error: validation error if input is invalid
func NewProduct(name string, categoryID uuid.UUID) (*Product, error) {
	if err := ValidateCategoryRef(categoryID); err != nil {
		return nil, err
	}
	if err := ValidateProductName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Product{
		ID:         uuid.New(),
		Name:       name,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Rename replaces the product name after validating it.
func (p *Product) Rename(name string) error {
	if err := ValidateProductName(name); err != nil {
		return err
	}
	p.Name = name
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// MoveToCategory reassigns the product to another category.
// A product can never be left without a category.
//
// Parameters:
//   - categoryID: the new owning category
//
// Returns:
//   - error: validation error if categoryID is the nil UUID
func (p *Product) MoveToCategory(categoryID uuid.UUID) error {
	if err := ValidateCategoryRef(categoryID); err != nil {
		return err
	}
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now().UTC()
	return nil
}
