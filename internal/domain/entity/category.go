// Package entity contains the core business entities of the inventory:
// categories, the products they own, and the SKUs each product owns.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the top-level grouping that owns products.
type Category struct {
	// ID is the unique identifier for the category
	ID uuid.UUID `json:"id"`

	// Name is the display name of the category
	Name string `json:"name"`

	// CreatedAt is the timestamp when the category was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the category was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory creates a new Category with a fresh identifier.
//
// Parameters:
//   - name: Name of the category (required, at least 4 characters)
//
// Returns:
//   - *Category: newly created Category
//   - error: validation error if the name is invalid
func NewCategory(name string) (*Category, error) {
	if err := ValidateCategoryName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename replaces the category name after validating it.
//
// Parameters:
//   - name: new category name
//
// Returns:
//   - error: validation error if the name is invalid
func (c *Category) Rename(name string) error {
	if err := ValidateCategoryName(name); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = time.Now().UTC()
	return nil
}
