package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SKU is a sellable variant of a product with its own code, stock
// quantity and price. The code is unique among the SKUs of one product.
type SKU struct {
	// ID is the unique identifier for the SKU
	ID uuid.UUID `json:"id"`

	// ProductID references the owning product; it never changes after creation
	ProductID uuid.UUID `json:"product_id"`

	// Code is the stock keeping unit code
	Code string `json:"code"`

	// Quantity is the current stock level
	Quantity int `json:"quantity"`

	// Price is the unit selling price
	Price decimal.Decimal `json:"price"`

	// CreatedAt is the timestamp when the SKU was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the SKU was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSKU creates a new SKU for a product.
// Code uniqueness within the product is checked by the caller.
//
// Parameters:
//   - productID: owning product
//   - code: SKU code (required)
//   - quantity: initial stock quantity (must be non-negative)
//   - price: unit price (must be positive)
//
// Returns:
//   - *SKU: newly created SKU
//   - error: validation error if input is invalid
func NewSKU(productID uuid.UUID, code string, quantity int, price decimal.Decimal) (*SKU, error) {
	if err := ValidateSKUFields(code, quantity, price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &SKU{
		ID:        uuid.New(),
		ProductID: productID,
		Code:      code,
		Quantity:  quantity,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Replace overwrites code, quantity and price in one step.
// Nothing is changed if any field is invalid.
func (s *SKU) Replace(code string, quantity int, price decimal.Decimal) error {
	if err := ValidateSKUFields(code, quantity, price); err != nil {
		return err
	}
	s.Code = code
	s.Quantity = quantity
	s.Price = price
	s.UpdatedAt = time.Now().UTC()
	return nil
}
