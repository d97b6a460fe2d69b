package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"onlineshop/internal/caching"
	"onlineshop/internal/models"
	"onlineshop/internal/repositories"
)

const shopItemCacheTTL = 5 * time.Minute

// ShopItemServiceInterface defines the interface for shop item operations
type ShopItemServiceInterface interface {
	CreateShopItem(ctx context.Context, req *models.ShopItemCreate) (*models.ShopItem, error)
	GetShopItem(ctx context.Context, id int64) (*models.ShopItem, error)
	ListShopItems(ctx context.Context, categoryID *int64, limit, offset int) ([]*models.ShopItem, error)
	UpdateShopItem(ctx context.Context, id int64, req *models.ShopItemUpdate) (*models.ShopItem, error)
	DeleteShopItem(ctx context.Context, id int64) error
}

type shopItemService struct {
	db    repositories.TxDatabase
	items repositories.ShopItemRepository
	cache caching.CacheService
}

func NewShopItemService(db repositories.TxDatabase, cache caching.CacheService) ShopItemServiceInterface {
	return &shopItemService{
		db:    db,
		items: repositories.NewShopItemRepo(db),
		cache: cache,
	}
}

// CreateShopItem inserts the item and its category links in one transaction.
func (s *shopItemService) CreateShopItem(ctx context.Context, req *models.ShopItemCreate) (*models.ShopItem, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	items := repositories.NewShopItemRepo(tx)
	categories := repositories.NewCategoryRepo(tx)

	item := &models.ShopItem{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := items.Create(ctx, item); err != nil {
		return nil, err
	}
	if err := reconcileCategories(ctx, items, categories, item.ID, req.CategoryIDs); err != nil {
		return nil, err
	}
	if item.Categories, err = items.CategoriesForItem(ctx, item.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *shopItemService) GetShopItem(ctx context.Context, id int64) (*models.ShopItem, error) {
	if cached, err := s.cache.GetShopItem(ctx, id); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("shop item cache read failed: %v", err)
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrShopItemNotFound
		}
		return nil, err
	}
	if item.Categories, err = s.items.CategoriesForItem(ctx, id); err != nil {
		return nil, err
	}

	if err := s.cache.SetShopItem(ctx, item, shopItemCacheTTL); err != nil {
		log.Printf("shop item cache write failed: %v", err)
	}
	return item, nil
}

func (s *shopItemService) ListShopItems(ctx context.Context, categoryID *int64, limit, offset int) ([]*models.ShopItem, error) {
	var (
		items []*models.ShopItem
		err   error
	)
	if categoryID != nil {
		items, err = s.items.ListByCategory(ctx, *categoryID, limit, offset)
	} else {
		items, err = s.items.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.Categories, err = s.items.CategoriesForItem(ctx, item.ID); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []*models.ShopItem{}
	}
	return items, nil
}

// UpdateShopItem applies the fields present in req. A non-nil CategoryIDs
// slice replaces the item's category links wholesale.
func (s *shopItemService) UpdateShopItem(ctx context.Context, id int64, req *models.ShopItemUpdate) (*models.ShopItem, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	items := repositories.NewShopItemRepo(tx)
	categories := repositories.NewCategoryRepo(tx)

	item, err := items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrShopItemNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if err := items.Update(ctx, item); err != nil {
		return nil, err
	}

	if req.CategoryIDs != nil {
		if err := reconcileCategories(ctx, items, categories, id, req.CategoryIDs); err != nil {
			return nil, err
		}
	}
	if item.Categories, err = items.CategoriesForItem(ctx, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.cache.DeleteShopItem(ctx, id); err != nil {
		log.Printf("shop item cache invalidation failed: %v", err)
	}
	return item, nil
}

func (s *shopItemService) DeleteShopItem(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	items := repositories.NewShopItemRepo(tx)

	exists, err := items.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrShopItemNotFound
	}
	if err := items.ClearCategories(ctx, id); err != nil {
		return err
	}
	if err := items.Delete(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if err := s.cache.DeleteShopItem(ctx, id); err != nil {
		log.Printf("shop item cache invalidation failed: %v", err)
	}
	return nil
}

// reconcileCategories replaces an item's category links with the desired
// set: existing rows are dropped, then each desired id is validated and
// re-inserted. Ids that resolve to no category are skipped silently; that
// is the documented policy, not an accident. Desired-set duplicates
// collapse via the association table's primary key.
func reconcileCategories(ctx context.Context, items repositories.ShopItemRepository, categories repositories.CategoryRepository, itemID int64, categoryIDs []int64) error {
	if err := items.ClearCategories(ctx, itemID); err != nil {
		return err
	}
	for _, categoryID := range categoryIDs {
		exists, err := categories.Exists(ctx, categoryID)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if err := items.AddCategory(ctx, itemID, categoryID); err != nil {
			return err
		}
	}
	return nil
}
