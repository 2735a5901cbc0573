package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mmemodas/storefront/internal/pkg/config"
)

const dialTimeout = 5 * time.Second

// Client is the Redis connection shared by the booking slot locks and the
// readiness probe.
type Client struct {
	rdb     *redis.Client
	lockTTL time.Duration
}

// Open dials cfg.Addr and fails unless the server answers a ping within
// dialTimeout.
func Open(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis: REDIS_ADDR is empty")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &Client{rdb: rdb, lockTTL: cfg.LockTTL}, nil
}

// SlotLocker returns a lock guard on this connection using SLOT_LOCK_TTL.
func (c *Client) SlotLocker() *SlotLocker {
	return NewSlotLocker(c.rdb, c.lockTTL)
}

// Ping satisfies the readiness check signature.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
