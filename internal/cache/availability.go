package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps per-event remaining counts in Redis with a short
// TTL. It only serves the read path; reserve/cancel invalidate the key and
// the next read repopulates it from Postgres.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
	}
}

func key(eventID string) string {
	return "availability:" + eventID
}

func (c *AvailabilityCache) Get(ctx context.Context, eventID string) (int, bool, error) {
	val, err := c.client.Get(ctx, key(eventID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("cache get: %w", err)
	}

	remaining, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("cache decode: %w", err)
	}

	return remaining, true, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, eventID string, remaining int) error {
	if err := c.client.Set(ctx, key(eventID), remaining, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, eventID string) error {
	if err := c.client.Del(ctx, key(eventID)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
