package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodfleet/internal/domain"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:restaurants"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetCatalog(ctx context.Context) ([]domain.RestaurantWithMenu, bool, error) {
	payload, err := c.Client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var catalog []domain.RestaurantWithMenu
	if err := json.Unmarshal(payload, &catalog); err != nil {
		return nil, false, err
	}
	return catalog, true, nil
}

func (c *RedisCache) SetCatalog(ctx context.Context, catalog []domain.RestaurantWithMenu) error {
	payload, err := json.Marshal(catalog)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, catalogKey, payload, c.TTL).Err()
}
