package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hapkiduki/inventory-go/internal/domain/entity"
	"github.com/hapkiduki/inventory-go/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

const productColumns = `id, name, category_id, created_at, updated_at`

// ProductRepository implements repository.ProductRepository on PostgreSQL.
type ProductRepository struct {
	db Querier
}

// NewProductRepository builds the repository over a pool or transaction.
func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a product; the foreign key rejects an unknown category.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	const query = `
		INSERT INTO products (id, name, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, p.ID, p.Name, p.CategoryID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrCategoryNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID loads a product.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update writes name, category and updated_at.
func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	const query = `
		UPDATE products SET name = $2, category_id = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, p.ID, p.Name, p.CategoryID, p.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrProductNotFound
	}
	return nil
}

// Delete removes a product; the foreign key rejects it while SKUs remain.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrHasChildren
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrProductNotFound
	}
	return nil
}

// FindAll runs the product search.
func (r *ProductRepository) FindAll(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query, args := buildProductSearch(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count returns the number of products matching filter.
func (r *ProductRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	query, args := buildProductCount(filter)
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountByCategory returns the number of products in a category.
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return r.Count(ctx, repository.ProductFilter{CategoryID: &categoryID})
}

// buildProductSearch returns the paged search statement for filter.
// Rows come back in creation order.
func buildProductSearch(filter repository.ProductFilter) (string, []any) {
	where, args := productWhere(filter)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + productColumns + ` FROM products`)
	sb.WriteString(where)
	sb.WriteString(` ORDER BY seq`)
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&sb, ` OFFSET $%d`, len(args))
	}
	return sb.String(), args
}

// buildProductCount returns the count statement for filter, ignoring
// Limit and Offset.
func buildProductCount(filter repository.ProductFilter) (string, []any) {
	where, args := productWhere(filter)
	return `SELECT COUNT(*) FROM products` + where, args
}

// productWhere combines the optional name and category predicates with AND.
// An empty name is the same as no name filter.
func productWhere(filter repository.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Name != nil && *filter.Name != "" {
		args = append(args, "%"+escapeLike(*filter.Name)+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
