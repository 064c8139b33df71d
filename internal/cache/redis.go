// Package cache is a small cache-aside layer on Redis. A Redis value without a client is
// valid and turns every operation into a no-op, so the service runs without Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 3 * time.Second

type Redis struct {
	rdb redis.UniversalClient
}

// NewRedis connects to url. An empty url, an invalid one or a failed ping disables caching.
func NewRedis(ctx context.Context, url string) *Redis {
	if url == "" {
		zap.L().Info("redis: no URL configured, caching disabled")
		return &Redis{}
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		zap.L().Warn("redis: invalid URL, caching disabled", zap.Error(err))
		return &Redis{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis: connection failed, caching disabled", zap.Error(err))
		_ = rdb.Close()
		return &Redis{}
	}

	zap.L().Info("redis: connected, caching enabled")
	return &Redis{rdb: rdb}
}

// Get returns nil, nil on a miss.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Redis) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
