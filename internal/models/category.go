package models

type Category struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
}

type CategoryCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CategoryUpdate carries a partial update. Nil fields are left unchanged.
type CategoryUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
