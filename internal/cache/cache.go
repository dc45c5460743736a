package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long a detail view may be served from Redis.
const DefaultTTL = 5 * time.Minute

// RedeleteDelay is how long Invalidate waits before deleting keys a second time.
const RedeleteDelay = 500 * time.Millisecond

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is valid and behaves as an always-empty cache.
type Client struct {
	client        *redis.Client
	redeleteDelay time.Duration
}

// New creates a Redis-backed cache. An empty addr disables caching and returns nil.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return nil
	}
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}))
}

// NewWithClient wraps an existing redis client.
func NewWithClient(client *redis.Client) *Client {
	return &Client{client: client, redeleteDelay: RedeleteDelay}
}

// UserKey is the cache key of a user detail view.
func UserKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// PostKey is the cache key of a post detail view.
func PostKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

// Ping reports whether Redis is reachable. It is only used for startup diagnostics.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// GetJSON decodes the cached value into dst. It reports false on a miss, on
// redis errors and on undecodable payloads.
func (c *Client) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil is a plain miss; anything else fails safe the same way.
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetJSON stores value as JSON with the given TTL, ignoring redis errors.
func (c *Client) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, payload, ttl).Err()
}

// Delete removes keys, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	_ = c.client.Del(ctx, keys...).Err()
}

// Invalidate deletes keys now and once more after RedeleteDelay. The second
// delete drops a view that a reader loaded before the write committed and
// stored after the first delete.
func (c *Client) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	c.Delete(ctx, keys...)
	detached := context.WithoutCancel(ctx)
	time.AfterFunc(c.redeleteDelay, func() {
		c.Delete(detached, keys...)
	})
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		return err
	}
	return nil
}
