package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	partKeyPrefix = "parts:"
	partListKey   = "parts:all"
)

// PartCache is a read-through Redis cache in front of the parts catalog.
// Writes go to the wrapped repository first and then drop the affected keys.
// Redis failures never fail a request; the call falls through to the repository.
type PartCache struct {
	next   interfaces.IPartRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

var _ interfaces.IPartRepository = (*PartCache)(nil)

func NewPartCache(next interfaces.IPartRepository, rdb *redis.Client, ttl time.Duration) *PartCache {
	return &PartCache{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: log.With().Str("component", "part_cache").Logger(),
	}
}

func (c *PartCache) GetByID(ctx context.Context, id string) (entities.Part, error) {
	var p entities.Part
	if c.lookup(ctx, partKeyPrefix+id, &p) {
		return p, nil
	}

	p, err := c.next.GetByID(ctx, id)
	if err != nil || p.ID == "" {
		return p, err
	}
	c.store(ctx, partKeyPrefix+id, p)
	return p, nil
}

func (c *PartCache) List(ctx context.Context) ([]entities.Part, error) {
	var parts []entities.Part
	if c.lookup(ctx, partListKey, &parts) {
		return parts, nil
	}

	parts, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, partListKey, parts)
	return parts, nil
}

func (c *PartCache) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	created, err := c.next.Create(ctx, p)
	if err != nil {
		return created, err
	}
	c.invalidate(ctx, partListKey)
	return created, nil
}

func (c *PartCache) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	updated, err := c.next.Update(ctx, p)
	if err != nil {
		return updated, err
	}
	c.invalidate(ctx, partKeyPrefix+p.ID, partListKey)
	return updated, nil
}

func (c *PartCache) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, partKeyPrefix+id, partListKey)
	return nil
}

func (c *PartCache) lookup(ctx context.Context, key string, out any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache entry unreadable")
		return false
	}
	return true
}

func (c *PartCache) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *PartCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
