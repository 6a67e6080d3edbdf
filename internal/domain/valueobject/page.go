// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They validate their own data upon creation.
package valueobject

import (
	"math"

	"github.com/hapkiduki/inventory-go/internal/domain"
)

// Default pagination bounds.
const (
	// DefaultPageSize is used by transports when the client omits a page size.
	DefaultPageSize = 10

	// DefaultMaxPageSize bounds a single page when no other limit is configured.
	DefaultMaxPageSize = 100
)

// Page is a zero-indexed page request with a bounded size.
//
// Example usage:
//
//	page, err := valueobject.NewPage(2, 10, 100) // items 20..29
//	offset := page.Offset()                     // 20
type Page struct {
	// Number is the zero-based page index.
	Number int `json:"page"`

	// Size is the maximum number of items in the page.
	Size int `json:"page_size"`
}

// NewPage creates a page request.
// Sizes above maxSize are clamped to maxSize; a maxSize <= 0 means
// DefaultMaxPageSize. Page numbers whose window would not fit in an int
// are rejected.
//
// Parameters:
//   - number: zero-based page index (must be >= 0)
//   - size: requested page size (must be > 0)
//   - maxSize: upper bound for size
//
// Returns:
//   - Page: the page request
//   - error: *domain.ValidationError if number or size is out of range
func NewPage(number, size, maxSize int) (Page, error) {
	if number < 0 {
		return Page{}, domain.NewValidationError("page", "page must be >= 0")
	}
	if size <= 0 {
		return Page{}, domain.NewValidationError("pageSize", "pageSize must be > 0")
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}
	if size > maxSize {
		size = maxSize
	}
	// (number+1)*size must not overflow: HasMore computes the window end
	if number >= math.MaxInt/size {
		return Page{}, domain.NewValidationError("page", "page is too large")
	}
	return Page{Number: number, Size: size}, nil
}

// Offset returns the index of the first item in the page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Limit returns the page size.
func (p Page) Limit() int {
	return p.Size
}

// TotalPages computes how many pages are needed for total items.
//
// Parameters:
//   - total: total number of matching items
//
// Returns:
//   - int: number of pages (0 when total is 0)
func (p Page) TotalPages(total int64) int {
	if total <= 0 || p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

// HasMore reports whether items exist beyond this page.
func (p Page) HasMore(total int64) bool {
	return int64(p.Offset()+p.Size) < total
}
