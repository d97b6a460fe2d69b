package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"onlineshop/internal/models"
	"onlineshop/internal/repositories"
)

// OrderServiceInterface defines the interface for order operations
type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]*models.Order, error)
	UpdateOrder(ctx context.Context, id int64, req *models.OrderUpdate) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type orderService struct {
	db     repositories.TxDatabase
	orders repositories.OrderRepository
	items  repositories.OrderItemRepository
}

func NewOrderService(db repositories.TxDatabase) OrderServiceInterface {
	return &orderService{
		db:     db,
		orders: repositories.NewOrderRepo(db),
		items:  repositories.NewOrderItemRepo(db),
	}
}

// CreateOrder writes the order header and all its items in one transaction.
// A customer or shop item that fails to resolve aborts the transaction, so
// a rejected request persists nothing.
func (s *orderService) CreateOrder(ctx context.Context, req *models.OrderCreate) (*models.Order, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	customers := repositories.NewCustomerRepo(tx)
	orders := repositories.NewOrderRepo(tx)

	exists, err := customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	order := &models.Order{
		CustomerID: req.CustomerID,
		CreatedAt:  time.Now().UTC(),
		Items:      []*models.OrderItem{},
	}
	if err := orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.insertOrderItems(ctx, tx, order, req.Items); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Items, err = s.items.ListByOrderID(ctx, id); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	orders, err := s.orders.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if order.Items, err = s.items.ListByOrderID(ctx, order.ID); err != nil {
			return nil, err
		}
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	return orders, nil
}

// UpdateOrder applies the fields present in req in one transaction. A nil
// Items slice leaves the order's items untouched; a non-nil slice (empty
// included) replaces them wholesale, with the same validation as create.
func (s *orderService) UpdateOrder(ctx context.Context, id int64, req *models.OrderUpdate) (*models.Order, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	orders := repositories.NewOrderRepo(tx)
	orderItems := repositories.NewOrderItemRepo(tx)

	order, err := orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if req.CustomerID != nil {
		customers := repositories.NewCustomerRepo(tx)
		exists, err := customers.Exists(ctx, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCustomerNotFound
		}
		if err := orders.UpdateCustomer(ctx, id, *req.CustomerID); err != nil {
			return nil, err
		}
		order.CustomerID = *req.CustomerID
	}

	if req.Items != nil {
		if err := orderItems.DeleteByOrderID(ctx, id); err != nil {
			return nil, err
		}
		order.Items = []*models.OrderItem{}
		if err := s.insertOrderItems(ctx, tx, order, req.Items); err != nil {
			return nil, err
		}
	} else {
		if order.Items, err = orderItems.ListByOrderID(ctx, id); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	orders := repositories.NewOrderRepo(tx)
	orderItems := repositories.NewOrderItemRepo(tx)

	exists, err := orders.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrOrderNotFound
	}
	if err := orderItems.DeleteByOrderID(ctx, id); err != nil {
		return err
	}
	if err := orders.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// insertOrderItems validates and inserts each requested item inside the
// caller's transaction. Duplicate shop_item_id entries are not merged; each
// produces its own row.
func (s *orderService) insertOrderItems(ctx context.Context, tx pgx.Tx, order *models.Order, reqItems []models.OrderItemCreate) error {
	shopItems := repositories.NewShopItemRepo(tx)
	orderItems := repositories.NewOrderItemRepo(tx)

	for _, reqItem := range reqItems {
		exists, err := shopItems.Exists(ctx, reqItem.ShopItemID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("shop item %d: %w", reqItem.ShopItemID, ErrShopItemNotFound)
		}
		item := &models.OrderItem{
			OrderID:    order.ID,
			ShopItemID: reqItem.ShopItemID,
			Quantity:   reqItem.Quantity,
		}
		if err := orderItems.Create(ctx, item); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return nil
}
