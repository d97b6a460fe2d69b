package repositories

import (
	"context"

	"onlineshop/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	Exists(ctx context.Context, id int64) (bool, error)
	UpdateCustomer(ctx context.Context, id, customerID int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*models.Order, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (customer_id, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, order.CustomerID, order.CreatedAt).Scan(&order.ID)
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, customer_id, created_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.CustomerID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *orderRepo) UpdateCustomer(ctx context.Context, id, customerID int64) error {
	query := `UPDATE orders SET customer_id = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, customerID, id)
	return err
}

func (r *orderRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM orders WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *orderRepo) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	query := `
		SELECT id, customer_id, created_at
		FROM orders
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
