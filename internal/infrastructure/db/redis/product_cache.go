package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storecraft/catalog-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// ProductCache caches single products as JSON under product:<id>, expiring
// after the configured TTL. Mutations invalidate the key so readers never see
// a stale product longer than one cache round-trip.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache wraps the given Redis client. A non-positive ttl falls back
// to the default.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ProductCache{client: client, ttl: ttl}
}

// Get returns the cached product, or (nil, nil) on a miss.
func (c *ProductCache) Get(ctx context.Context, id int) (*domain.Product, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var product domain.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &product, nil
}

// Set stores the product under its id key.
func (c *ProductCache) Set(ctx context.Context, product *domain.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(product.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate removes the cached entry for the given id, if any.
func (c *ProductCache) Invalidate(ctx context.Context, id int) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *ProductCache) key(id int) string {
	return fmt.Sprintf("product:%d", id)
}
