package expert

import (
	"context"
	"errors"
	"time"

	"consultly/utils"

	"github.com/go-redis/redis/v8"
)

const (
	featuredCacheKey = "experts:featured"
	featuredCacheTTL = 5 * time.Minute
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// ProfileCache stores serialized expert listings. Implementations are
// advisory: callers fall back to the repository on any error.
type ProfileCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type redisProfileCache struct{}

// NewRedisProfileCache returns a ProfileCache backed by the generic
// cache Redis client.
func NewRedisProfileCache() ProfileCache {
	return redisProfileCache{}
}

func (redisProfileCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := utils.GetCacheClient().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return data, err
}

func (redisProfileCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return utils.GetCacheClient().Set(ctx, key, value, ttl).Err()
}

func (redisProfileCache) Del(ctx context.Context, key string) error {
	return utils.GetCacheClient().Del(ctx, key).Err()
}
