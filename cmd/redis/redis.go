package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/storefront-search/cmd/config"
	"github.com/redis/go-redis/v9"
)

// New builds the Redis client shared by the cache and the search indexes and
// verifies connectivity. The caller owns the returned client and must Close it.
//
// RESP2 is forced because the RediSearch replies (FT.SEARCH, FT.SUGGET) are
// parsed as flat arrays.
func New(cfg *config.Config) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	opt := &redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Protocol: 2,
	}

	c := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	return c, nil
}
