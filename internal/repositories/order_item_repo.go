package repositories

import (
	"context"

	"onlineshop/internal/models"
)

type OrderItemRepository interface {
	Create(ctx context.Context, item *models.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]*models.OrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
	// ListDangling returns order items whose shop item no longer exists.
	ListDangling(ctx context.Context, limit int) ([]*models.OrderItem, error)
}

type orderItemRepo struct {
	db Database
}

func NewOrderItemRepo(db Database) OrderItemRepository {
	return &orderItemRepo{db: db}
}

func (r *orderItemRepo) Create(ctx context.Context, item *models.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, shop_item_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, item.OrderID, item.ShopItemID, item.Quantity).Scan(&item.ID)
}

func (r *orderItemRepo) ListByOrderID(ctx context.Context, orderID int64) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, shop_item_id, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.OrderItem{}
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ShopItemID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *orderItemRepo) DeleteByOrderID(ctx context.Context, orderID int64) error {
	query := `DELETE FROM order_items WHERE order_id = $1`
	_, err := r.db.Exec(ctx, query, orderID)
	return err
}

func (r *orderItemRepo) ListDangling(ctx context.Context, limit int) ([]*models.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.shop_item_id, oi.quantity
		FROM order_items oi
		WHERE NOT EXISTS (SELECT 1 FROM shop_items s WHERE s.id = oi.shop_item_id)
		ORDER BY oi.id ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ShopItemID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
