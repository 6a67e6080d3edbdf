package entity

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain"
	"github.com/shopspring/decimal"
)

// Validation limits for entity fields.
const (
	// MinCategoryNameLength is the minimum number of characters in a category name.
	MinCategoryNameLength = 4

	// MinProductNameLength is the minimum number of characters in a product name.
	MinProductNameLength = 2

	// MinSKUQuantity is the lowest stock quantity a SKU can hold.
	MinSKUQuantity = 0

	// MaxSKUQuantity is the highest stock quantity the INTEGER column stores.
	MaxSKUQuantity = math.MaxInt32
)

// ValidateCategoryName checks that a category name is present and at least
// MinCategoryNameLength characters long.
//
// Parameters:
//   - name: the candidate name
//
// Returns:
//   - error: *domain.ValidationError if the name is invalid
func ValidateCategoryName(name string) error {
	return validateName("name", name, MinCategoryNameLength)
}

// ValidateProductName checks that a product name is present and at least
// MinProductNameLength characters long.
//
// Parameters:
//   - name: the candidate name
//
// Returns:
//   - error: *domain.ValidationError if the name is invalid
func ValidateProductName(name string) error {
	return validateName("name", name, MinProductNameLength)
}

// ValidateCategoryRef checks that a product references a category.
func ValidateCategoryRef(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return domain.NewValidationError("categoryId", "product must belong to a category")
	}
	return nil
}

// ValidateSKUCode checks that a SKU code is present.
func ValidateSKUCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return domain.NewValidationError("code", "code is required")
	}
	return nil
}

// ValidatePrice checks that a price is strictly positive.
func ValidatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return domain.NewValidationError("price", "price must be greater than 0")
	}
	return nil
}

// ValidateQuantity checks that a stock quantity is within
// [MinSKUQuantity, MaxSKUQuantity].
func ValidateQuantity(quantity int) error {
	if quantity < MinSKUQuantity {
		return domain.NewValidationError("quantity", fmt.Sprintf("quantity must be >= %d", MinSKUQuantity))
	}
	if quantity > MaxSKUQuantity {
		return domain.NewValidationError("quantity", fmt.Sprintf("quantity must be <= %d", MaxSKUQuantity))
	}
	return nil
}

// ValidateSKUFields runs every SKU field rule and returns the first failure.
// Price is checked before quantity.
//
// Parameters:
//   - code: SKU code (required)
//   - quantity: stock quantity (0..MaxSKUQuantity)
//   - price: unit price (> 0)
//
// Returns:
//   - error: *domain.ValidationError for the first rule that fails
func ValidateSKUFields(code string, quantity int, price decimal.Decimal) error {
	if err := ValidateSKUCode(code); err != nil {
		return err
	}
	if err := ValidatePrice(price); err != nil {
		return err
	}
	return ValidateQuantity(quantity)
}

// validateName rejects blank names and names shorter than min code points.
func validateName(field, name string, min int) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError(field, "name is required")
	}
	if utf8.RuneCountInString(name) < min {
		return domain.NewValidationError(field, fmt.Sprintf("name must be at least %d characters long", min))
	}
	return nil
}
