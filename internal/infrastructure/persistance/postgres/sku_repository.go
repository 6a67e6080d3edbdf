package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.SKURepository = (*SKURepository)(nil)

const skuColumns = `id, product_id, code, quantity, price, created_at, updated_at`

// SKURepository implements repository.SKURepository on PostgreSQL.
// uq_skus_product_code enforces code uniqueness per product.
type SKURepository struct {
	db Querier
}

// NewSKURepository builds the repository over a pool or transaction.
func NewSKURepository(db Querier) *SKURepository {
	return &SKURepository{db: db}
}

// Create inserts a SKU.
func (r *SKURepository) Create(ctx context.Context, s *entity.SKU) error {
	const query = `
		INSERT INTO skus (id, product_id, code, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, s.ID, s.ProductID, s.Code, s.Quantity, s.Price, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return repository.ErrDuplicateSKUCode
		case isForeignKeyViolation(err):
			return repository.ErrProductNotFound
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID loads a SKU.
func (r *SKURepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE id = $1`
	s, err := scanSKU(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSKUNotFound
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return s, nil
}

// Update writes code, quantity, price and updated_at. product_id is never changed.
func (r *SKURepository) Update(ctx context.Context, s *entity.SKU) error {
	const query = `
		UPDATE skus SET code = $2, quantity = $3, price = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, s.ID, s.Code, s.Quantity, s.Price, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateSKUCode
		}
		return fmt.Errorf("update sku: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrSKUNotFound
	}
	return nil
}

// Delete removes a SKU.
func (r *SKURepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrSKUNotFound
	}
	return nil
}

// FindByProduct lists the SKUs of a product in creation order.
func (r *SKURepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE product_id = $1 ORDER BY seq`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.SKU, 0)
	for rows.Next() {
		s, err := scanSKU(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// FindByProductAndCode loads the SKU of a product with the given code.
func (r *SKURepository) FindByProductAndCode(ctx context.Context, productID uuid.UUID, code string) (*entity.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE product_id = $1 AND code = $2`
	s, err := scanSKU(r.db.QueryRow(ctx, query, productID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSKUNotFound
		}
		return nil, fmt.Errorf("get sku by code: %w", err)
	}
	return s, nil
}

// CountByProduct returns the number of SKUs of a product.
func (r *SKURepository) CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skus WHERE product_id = $1`, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count skus: %w", err)
	}
	return n, nil
}

func scanSKU(row pgx.Row) (*entity.SKU, error) {
	var s entity.SKU
	if err := row.Scan(&s.ID, &s.ProductID, &s.Code, &s.Quantity, &s.Price, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
