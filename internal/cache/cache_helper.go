package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheHelper provides common caching operations for repositories.
type CacheHelper struct {
	client *redis.Client
	prefix string
}

// NewCacheHelper creates a new cache helper instance. A nil client disables
// caching: every Get misses and every write is a no-op.
func NewCacheHelper(client *redis.Client, prefix string) *CacheHelper {
	return &CacheHelper{
		client: client,
		prefix: prefix,
	}
}

// CacheConfig defines cache configuration for different data types.
type CacheConfig struct {
	TTL    time.Duration
	Prefix string
}

var (
	// Popularity aggregation results change with every paid enrollment but
	// tolerate short staleness on the landing page.
	PopularCacheConfig = CacheConfig{
		TTL:    1 * time.Minute,
		Prefix: "popular:",
	}

	// Per-identity listing cache for hot directory lookups.
	DirectoryCacheConfig = CacheConfig{
		TTL:    5 * time.Minute,
		Prefix: "user:",
	}
)

// ErrCacheMiss is returned by Get when the key is absent or caching is
// disabled.
var ErrCacheMiss = errors.New("cache miss")

// Enabled reports whether a Redis client is attached.
func (ch *CacheHelper) Enabled() bool {
	return ch.client != nil
}

func (ch *CacheHelper) key(key string) string {
	return ch.prefix + key
}

// Get unmarshals a cached value into dest. Returns ErrCacheMiss when the
// key is absent.
func (ch *CacheHelper) Get(ctx context.Context, key string, dest interface{}) error {
	if ch.client == nil {
		return ErrCacheMiss
	}

	data, err := ch.client.Get(ctx, ch.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("cache get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache unmarshal failed: %w", err)
	}
	return nil
}

// Set stores a value under key with the given TTL.
func (ch *CacheHelper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ch.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	if err := ch.client.Set(ctx, ch.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

// Delete removes the given keys.
func (ch *CacheHelper) Delete(ctx context.Context, keys ...string) error {
	if ch.client == nil || len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = ch.key(k)
	}

	if err := ch.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("cache delete failed: %w", err)
	}
	return nil
}

// InvalidatePattern removes every key matching the prefixed pattern.
func (ch *CacheHelper) InvalidatePattern(ctx context.Context, pattern string) error {
	if ch.client == nil {
		return nil
	}

	iter := ch.client.Scan(ctx, 0, ch.key(pattern), 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan failed: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := ch.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate failed: %w", err)
	}
	return nil
}

// GetOrSet returns the cached value for key, or loads it with loader and
// caches the result. Loader errors pass through; cache write errors are
// swallowed so a degraded cache never fails a read.
func (ch *CacheHelper) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, loader func() (interface{}, error)) error {
	if err := ch.Get(ctx, key, dest); err == nil {
		return nil
	}

	value, err := loader()
	if err != nil {
		return err
	}

	_ = ch.Set(ctx, key, value, ttl)

	// Round-trip through JSON so dest is populated the same way a cache
	// hit would populate it.
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return json.Unmarshal(data, dest)
}

// HealthCheck pings the cache backend.
func (ch *CacheHelper) HealthCheck(ctx context.Context) error {
	if ch.client == nil {
		return nil
	}
	if err := ch.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache ping failed: %w", err)
	}
	return nil
}
