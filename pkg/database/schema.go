package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// orders.customer_id and order_items.shop_item_id deliberately carry no
// foreign key: deleting a referenced customer or shop item stays permitted,
// and the dangling-reference job reports the orphans it leaves behind.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		surname VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS shop_item_categories (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shop_items (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL CHECK (price > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS shop_item_category_association (
		shop_item_id BIGINT NOT NULL REFERENCES shop_items(id) ON DELETE CASCADE,
		category_id BIGINT NOT NULL REFERENCES shop_item_categories(id) ON DELETE CASCADE,
		PRIMARY KEY (shop_item_id, category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		shop_item_id BIGINT NOT NULL,
		quantity INT NOT NULL CHECK (quantity > 0)
	)`,
}

// Migrate creates the schema on startup if it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
