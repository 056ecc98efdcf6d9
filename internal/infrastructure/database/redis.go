package database

import (
	"context"
	"fmt"
	"time"

	"github.com/peve-dev/peve-backend/internal/config"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and pings it within the dial timeout.
// The client backs the leaderboard cache and notification pub/sub.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:         cfg.GetAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.DialTimeout,
		WriteTimeout: cfg.DialTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: max(cfg.PoolSize/5, 1),
	}
	client := redis.NewClient(opts)

	timeout := opts.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", opts.Addr, err)
	}

	logger.Success("connected to redis %s (db %d, pool %d)", opts.Addr, opts.DB, opts.PoolSize)
	return client, nil
}
