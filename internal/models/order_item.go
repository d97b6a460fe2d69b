package models

type OrderItem struct {
	ID         int64 `json:"id" db:"id"`
	OrderID    int64 `json:"order_id" db:"order_id"`
	ShopItemID int64 `json:"shop_item_id" db:"shop_item_id"`
	Quantity   int   `json:"quantity" db:"quantity"`
}
