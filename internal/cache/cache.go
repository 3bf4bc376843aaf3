// Package cache provides a best-effort Redis key-value layer in front of
// the persistent store. Every value is reconstructable from MongoDB, so
// cache failures only cost latency, never correctness: a broken or absent
// Redis degrades the service to store reads.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache wraps a Redis connection that is established lazily on first use
// and shared for the life of the process.
type Cache struct {
	redisURL string

	mu     sync.Mutex
	client *redis.Client
	broken bool
}

// New creates a cache backed by the Redis instance at redisURL. The
// connection is not opened until the first Get or Set.
func New(redisURL string) *Cache {
	return &Cache{redisURL: redisURL}
}

// conn returns the shared client, connecting on first call. A URL that
// cannot be parsed marks the cache broken so requests stop retrying it.
func (c *Cache) conn() *redis.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil || c.broken {
		return c.client
	}

	opts, err := redis.ParseURL(c.redisURL)
	if err != nil {
		logrus.WithError(err).Warn("Invalid REDIS_URL, continuing without cache")
		c.broken = true
		return nil
	}
	c.client = redis.NewClient(opts)
	return c.client
}

// Get loads the cached value for key into dest. It reports whether a
// usable value was found; every failure counts as a miss.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	client := c.conn()
	if client == nil {
		return false
	}

	payload, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warnf("Cache get error for key %s", key)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		logrus.WithError(err).Warnf("Cache entry for key %s is not valid JSON", key)
		return false
	}
	return true
}

// Set stores value under key for ttl. Failures are logged and swallowed.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	client := c.conn()
	if client == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).Warnf("Cache set error for key %s", key)
		return
	}

	if err := client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logrus.WithError(err).Warnf("Cache set error for key %s", key)
	}
}

// Ping reports cache reachability for health checks
func (c *Cache) Ping(ctx context.Context) error {
	client := c.conn()
	if client == nil {
		return fmt.Errorf("cache not configured")
	}
	return client.Ping(ctx).Err()
}

// Close releases the Redis connection if one was established
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		if err := c.client.Close(); err != nil {
			logrus.WithError(err).Warn("Error closing Redis connection")
		}
		c.client = nil
	}
}
