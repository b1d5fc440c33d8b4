package booking

import (
	"context"
	"encoding/json"

	"wavehouse/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityCache keeps short-lived availability answers per date.
type AvailabilityCache interface {
	Get(ctx context.Context, date string) ([]string, bool)
	Set(ctx context.Context, date string, labels []string)
	Invalidate(ctx context.Context, dates ...string)
}

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]string, bool) { return nil, false }
func (NoopCache) Set(context.Context, string, []string)        {}
func (NoopCache) Invalidate(context.Context, ...string)        {}

// RedisCache stores availability in the Redis cache DB.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, date string) ([]string, bool) {
	data, err := c.client.Get(ctx, utils.AvailabilityCachePrefix+date).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Debug("availability cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, false
	}
	return labels, true
}

func (c *RedisCache) Set(ctx context.Context, date string, labels []string) {
	data, err := json.Marshal(labels)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, utils.AvailabilityCachePrefix+date, data, utils.AvailabilityCacheTTL).Err(); err != nil {
		zap.L().Debug("availability cache write failed", zap.Error(err))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, dates ...string) {
	if len(dates) == 0 {
		return
	}
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = utils.AvailabilityCachePrefix + d
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("availability cache invalidation failed", zap.Error(err))
	}
}
