package postgres

import (
	"context"
	"fmt"
)

// schema is applied in order. The seq columns give a total creation order
// for stable pagination; ON DELETE RESTRICT backs the reject-delete policy.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         UUID PRIMARY KEY,
		seq        BIGSERIAL NOT NULL,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		seq         BIGSERIAL NOT NULL,
		name        TEXT NOT NULL,
		category_id UUID NOT NULL REFERENCES categories (id) ON DELETE RESTRICT,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category_id ON products (category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_seq ON products (seq)`,
	`CREATE TABLE IF NOT EXISTS skus (
		id         UUID PRIMARY KEY,
		seq        BIGSERIAL NOT NULL,
		product_id UUID NOT NULL REFERENCES products (id) ON DELETE RESTRICT,
		code       TEXT NOT NULL,
		quantity   INTEGER NOT NULL CHECK (quantity >= 0),
		price      NUMERIC NOT NULL CHECK (price > 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT uq_skus_product_code UNIQUE (product_id, code)
	)`,
}

// Migrate creates the inventory tables if they do not exist.
func Migrate(ctx context.Context, db Querier) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
