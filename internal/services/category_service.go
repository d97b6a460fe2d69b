package services

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"

	"onlineshop/internal/caching"
	"onlineshop/internal/models"
	"onlineshop/internal/repositories"
)

// CategoryServiceInterface defines the interface for category operations
type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, req *models.CategoryCreate) (*models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *models.CategoryUpdate) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	categories repositories.CategoryRepository
	items      repositories.ShopItemRepository
	cache      caching.CacheService
}

func NewCategoryService(categories repositories.CategoryRepository, items repositories.ShopItemRepository, cache caching.CacheService) CategoryServiceInterface {
	return &categoryService{
		categories: categories,
		items:      items,
		cache:      cache,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CategoryCreate) (*models.Category, error) {
	category := &models.Category{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	categories, err := s.categories.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return categories, nil
}

// UpdateCategory applies the fields present in req. Cached shop items embed
// their categories, so every item linked to this category is invalidated.
func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req *models.CategoryUpdate) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		category.Title = *req.Title
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	s.invalidateLinkedItems(ctx, id)
	return category, nil
}

// DeleteCategory removes the category; association rows referencing it are
// removed by the schema's cascade, shop items themselves are unaffected.
// Linked item ids are collected before the delete, since the cascade erases
// the association rows the lookup depends on.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCategoryNotFound
	}

	itemIDs, err := s.items.IDsForCategory(ctx, id)
	if err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.dropCachedItems(ctx, itemIDs)
	return nil
}

func (s *categoryService) invalidateLinkedItems(ctx context.Context, categoryID int64) {
	itemIDs, err := s.items.IDsForCategory(ctx, categoryID)
	if err != nil {
		log.Printf("category %d: listing linked items for cache invalidation failed: %v", categoryID, err)
		return
	}
	s.dropCachedItems(ctx, itemIDs)
}

func (s *categoryService) dropCachedItems(ctx context.Context, itemIDs []int64) {
	for _, itemID := range itemIDs {
		if err := s.cache.DeleteShopItem(ctx, itemID); err != nil {
			log.Printf("shop item cache invalidation failed: %v", err)
		}
	}
}
