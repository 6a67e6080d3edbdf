// Package repository contains the repository interfaces and related errors.
package repository

import "errors"

// Repository errors define common error conditions across all repositories.
// These errors are used to communicate specific failure conditions
// from the data access layer to the application layer.

var (
	// ErrCategoryNotFound is returned when a category cannot be found by ID.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrProductNotFound is returned when a product cannot be found by ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrSKUNotFound is returned when a SKU cannot be found by ID or code.
	ErrSKUNotFound = errors.New("SKU not found")

	// ErrDuplicateSKUCode is returned when a product already owns a SKU
	// with the same code.
	ErrDuplicateSKUCode = errors.New("SKU code already exists for the product")

	// ErrHasChildren is returned when deleting an entity that still owns
	// other entities (a category with products, a product with SKUs).
	ErrHasChildren = errors.New("entity still has children")

	// ErrConnectionFailed is returned when the database connection fails.
	ErrConnectionFailed = errors.New("database connection failed")
)

// IsNotFoundError checks if the error is a not found error.
// This is useful for handling not-found cases uniformly.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a resource was not found
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrSKUNotFound)
}

// IsDuplicateError checks if the error is a duplicate entry error.
//
// Parameters:
//   - err: error to check
//
// Returns:
//   - bool: true if the error indicates a duplicate key violation
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateSKUCode)
}
