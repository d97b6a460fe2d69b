package services

import "errors"

// Sentinel errors surfaced to the HTTP layer, which maps them to status
// codes with errors.Is.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrShopItemNotFound = errors.New("shop item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmailTaken       = errors.New("email already exists")
)
