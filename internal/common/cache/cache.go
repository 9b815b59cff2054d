package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the subset of redis commands the cache needs. Satisfied by
// *redis.Client; tests provide an in-memory implementation.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
}

// Service is a JSON cache for upstream query results. Query entries are
// content-addressed: the key encodes the resource name plus the canonical
// form of the filter set, so distinct filter combinations cache
// independently and a whole resource can be invalidated by key prefix.
type Service struct {
	store Store
	ttl   time.Duration
}

func NewService(store Store, ttl time.Duration) *Service {
	return &Service{store: store, ttl: ttl}
}

// QueryKey builds the cache key for a resource list query. The key is scoped
// to the session whose token fetched the data: the cache is shared across
// sessions server-side, and an entry written for one admin must never answer
// a request carrying a different (possibly forged) token — an unknown token
// has to travel upstream and be rejected there. Filters are serialized as
// sorted k=v pairs; an empty filter set maps to "-". The scope sits between
// resource and filters so InvalidateResource still drops every session's
// entries by resource prefix.
func QueryKey(resource, token string, filters map[string]string) string {
	prefix := "query:" + resource + ":" + sessionScope(token) + ":"
	if len(filters) == 0 {
		return prefix + "-"
	}
	parts := make([]string, 0, len(filters))
	for k, v := range filters {
		if v == "" {
			continue
		}
		parts = append(parts, k+"="+v)
	}
	if len(parts) == 0 {
		return prefix + "-"
	}
	sort.Strings(parts)
	return prefix + strings.Join(parts, "&")
}

func sessionScope(token string) string {
	if token == "" {
		return "anon"
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

func (c *Service) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.store.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (c *Service) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.store.Set(ctx, key, string(data), ttl).Err()
}

func (c *Service) Delete(ctx context.Context, key string) error {
	return c.store.Del(ctx, key).Err()
}

// DeletePattern removes every key matching the pattern.
func (c *Service) DeletePattern(ctx context.Context, pattern string) error {
	keys, err := c.store.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return c.store.Del(ctx, keys...).Err()
	}
	return nil
}

// InvalidateResource drops every cached query for the resource, whatever
// filters the entries were stored under.
func (c *Service) InvalidateResource(ctx context.Context, resource string) error {
	return c.DeletePattern(ctx, "query:"+resource+":*")
}

// GetOrSet returns the cached value for key, or runs fetch and stores the
// result under the service TTL. A cache read/write failure falls through to
// fetch; stale cache is never preferred over a reachable upstream.
func (c *Service) GetOrSet(ctx context.Context, key string, dest interface{}, fetch func() (interface{}, error)) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	if err := c.Set(ctx, key, value, c.ttl); err != nil {
		// non-fatal: serve the fetched value even if the write failed
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
