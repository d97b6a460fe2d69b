package models

import "time"

type Order struct {
	ID         int64        `json:"id" db:"id"`
	CustomerID int64        `json:"customer_id" db:"customer_id"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	Items      []*OrderItem `json:"items" db:"-"`
}

type OrderItemCreate struct {
	ShopItemID int64 `json:"shop_item_id"`
	Quantity   int   `json:"quantity"`
}

type OrderCreate struct {
	CustomerID int64             `json:"customer_id"`
	Items      []OrderItemCreate `json:"items"`
}

// OrderUpdate carries a partial update. A nil Items slice leaves the order's
// items untouched; an empty non-nil slice clears them all.
type OrderUpdate struct {
	CustomerID *int64            `json:"customer_id"`
	Items      []OrderItemCreate `json:"items"`
}
