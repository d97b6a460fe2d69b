package repositories

import (
	"context"

	"onlineshop/internal/models"

	"github.com/jackc/pgx/v5"
)

type ShopItemRepository interface {
	Create(ctx context.Context, item *models.ShopItem) error
	GetByID(ctx context.Context, id int64) (*models.ShopItem, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, item *models.ShopItem) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*models.ShopItem, error)
	ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*models.ShopItem, error)

	// Category association rows for one item. AddCategory keeps set
	// semantics: inserting an existing pair is a no-op.
	CategoriesForItem(ctx context.Context, itemID int64) ([]*models.Category, error)
	AddCategory(ctx context.Context, itemID, categoryID int64) error
	ClearCategories(ctx context.Context, itemID int64) error
	IDsForCategory(ctx context.Context, categoryID int64) ([]int64, error)
}

type shopItemRepo struct {
	db Database
}

func NewShopItemRepo(db Database) ShopItemRepository {
	return &shopItemRepo{db: db}
}

func (r *shopItemRepo) Create(ctx context.Context, item *models.ShopItem) error {
	query := `
		INSERT INTO shop_items (title, description, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, item.Title, item.Description, item.Price).Scan(&item.ID)
}

func (r *shopItemRepo) GetByID(ctx context.Context, id int64) (*models.ShopItem, error) {
	item := &models.ShopItem{}
	query := `
		SELECT id, title, description, price
		FROM shop_items
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Title, &item.Description, &item.Price)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *shopItemRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM shop_items WHERE id = $1)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *shopItemRepo) Update(ctx context.Context, item *models.ShopItem) error {
	query := `
		UPDATE shop_items
		SET title = $1, description = $2, price = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, item.Title, item.Description, item.Price, item.ID)
	return err
}

func (r *shopItemRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM shop_items WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *shopItemRepo) List(ctx context.Context, limit, offset int) ([]*models.ShopItem, error) {
	query := `
		SELECT id, title, description, price
		FROM shop_items
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShopItems(rows)
}

func (r *shopItemRepo) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*models.ShopItem, error) {
	query := `
		SELECT i.id, i.title, i.description, i.price
		FROM shop_items i
		JOIN shop_item_category_association a ON a.shop_item_id = i.id
		WHERE a.category_id = $1
		ORDER BY i.id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, categoryID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShopItems(rows)
}

func (r *shopItemRepo) CategoriesForItem(ctx context.Context, itemID int64) ([]*models.Category, error) {
	query := `
		SELECT c.id, c.title, c.description
		FROM shop_item_categories c
		JOIN shop_item_category_association a ON a.category_id = c.id
		WHERE a.shop_item_id = $1
		ORDER BY c.id ASC
	`
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		category := &models.Category{}
		if err := rows.Scan(&category.ID, &category.Title, &category.Description); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *shopItemRepo) AddCategory(ctx context.Context, itemID, categoryID int64) error {
	query := `
		INSERT INTO shop_item_category_association (shop_item_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT (shop_item_id, category_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, itemID, categoryID)
	return err
}

func (r *shopItemRepo) ClearCategories(ctx context.Context, itemID int64) error {
	query := `DELETE FROM shop_item_category_association WHERE shop_item_id = $1`
	_, err := r.db.Exec(ctx, query, itemID)
	return err
}

func (r *shopItemRepo) IDsForCategory(ctx context.Context, categoryID int64) ([]int64, error) {
	query := `
		SELECT shop_item_id
		FROM shop_item_category_association
		WHERE category_id = $1
		ORDER BY shop_item_id ASC
	`
	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanShopItems(rows pgx.Rows) ([]*models.ShopItem, error) {
	var items []*models.ShopItem
	for rows.Next() {
		item := &models.ShopItem{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
