package cache

import (
	"context"
	"log/slog"
	"time"

	"carestay/internal/pkg/config"
	"carestay/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Store is the minimal key-value surface the cache service needs. Every
// operation is best-effort: failures are logged and reported as misses,
// never as errors.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) bool
	Delete(ctx context.Context, key string) bool
	Exists(ctx context.Context, key string) bool
	Ready() bool
}

type Client struct {
	rdb     *redis.Client
	enabled bool
}

func NewClient(cfg config.RedisConfig) *Client {
	if !cfg.Enabled {
		slog.Info("Redis is disabled via configuration")
		return &Client{enabled: false}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Client{rdb: rdb, enabled: true}
}

// Connect pings the server once. A failure disables the client so every
// later operation degrades to a miss instead of waiting on a dead socket.
func (c *Client) Connect(ctx context.Context) error {
	if !c.enabled {
		return nil
	}

	if err := c.rdb.Ping(ctx).Err(); err != nil {
		c.enabled = false
		return errs.Wrap(err, "failed to connect to redis")
	}

	slog.Info("Redis client connected")
	return nil
}

func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *Client) Ready() bool {
	return c.enabled && c.rdb != nil
}

func (c *Client) Get(ctx context.Context, key string) (string, bool) {
	if !c.Ready() {
		return "", false
	}

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("redis GET failed", "key", key, "error", err.Error())
		}
		return "", false
	}
	return val, true
}

func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) bool {
	if !c.Ready() {
		return false
	}

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Warn("redis SET failed", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *Client) Delete(ctx context.Context, key string) bool {
	if !c.Ready() {
		return false
	}

	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("redis DEL failed", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *Client) Exists(ctx context.Context, key string) bool {
	if !c.Ready() {
		return false
	}

	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		slog.Warn("redis EXISTS failed", "key", key, "error", err.Error())
		return false
	}
	return n == 1
}
