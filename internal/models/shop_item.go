package models

type ShopItem struct {
	ID          int64       `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Price       float64     `json:"price" db:"price"`
	Categories  []*Category `json:"categories" db:"-"`
}

type ShopItemCreate struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryIDs []int64 `json:"category_ids"`
}

// ShopItemUpdate carries a partial update. Nil fields are left unchanged.
// A nil CategoryIDs slice leaves the category links untouched; an empty
// non-nil slice removes them all.
type ShopItemUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryIDs []int64  `json:"category_ids"`
}
