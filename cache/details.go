package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"adventurelane/catalog"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "experience-details:"

// DetailsCache keeps experience details with their slots in Redis.
type DetailsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDetailsCache(rdb *redis.Client, ttl time.Duration) DetailsCache {
	return DetailsCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c DetailsCache) Get(ctx context.Context, experienceID string) (catalog.Details, bool, error) {
	payload, err := c.rdb.Get(ctx, key(experienceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return catalog.Details{}, false, nil
	}
	if err != nil {
		return catalog.Details{}, false, fmt.Errorf("getting cached details: %w", err)
	}

	var details catalog.Details
	if err := json.Unmarshal(payload, &details); err != nil {
		return catalog.Details{}, false, fmt.Errorf("unmarshalling cached details: %w", err)
	}

	return details, true, nil
}

func (c DetailsCache) Set(ctx context.Context, details catalog.Details) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshalling details: %w", err)
	}

	if err := c.rdb.Set(ctx, key(details.Experience.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching details: %w", err)
	}

	return nil
}

func (c DetailsCache) Invalidate(ctx context.Context, experienceID string) error {
	if err := c.rdb.Del(ctx, key(experienceID)).Err(); err != nil {
		return fmt.Errorf("deleting cached details: %w", err)
	}

	return nil
}

func key(experienceID string) string {
	return keyPrefix + experienceID
}
