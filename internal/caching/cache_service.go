package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"onlineshop/internal/models"
)

type CacheService interface {
	// Shop item caching (entity plus its categories)
	GetShopItem(ctx context.Context, itemID int64) (*models.ShopItem, error)
	SetShopItem(ctx context.Context, item *models.ShopItem, ttl time.Duration) error
	DeleteShopItem(ctx context.Context, itemID int64) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port URLs as well as plain host:port.
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "rediss://"), "redis://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func shopItemKey(itemID int64) string {
	return fmt.Sprintf("shop:item:%d", itemID)
}

func (r *redisCacheService) GetShopItem(ctx context.Context, itemID int64) (*models.ShopItem, error) {
	data, err := r.client.Get(ctx, shopItemKey(itemID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var item models.ShopItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *redisCacheService) SetShopItem(ctx context.Context, item *models.ShopItem, ttl time.Duration) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, shopItemKey(item.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteShopItem(ctx context.Context, itemID int64) error {
	return r.client.Del(ctx, shopItemKey(itemID)).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
