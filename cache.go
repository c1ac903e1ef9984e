package logbook

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/azolika/LogbookTestApp/internal"
)

// Store is a get-or-compute cache over rendered byte values. It memoizes
// upstream lookups (the vehicle list) for a short window; it is purely an
// optimization and every implementation must behave correctly when entries
// expire or vanish at any time.
type Store interface {
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, error)
}

// CacheKey joins key parts with '|'.
func CacheKey(parts ...string) string {
	return strings.Join(parts, "|")
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// MemoryStore is the in-process Store backend.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) GetOrCompute(_ context.Context, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, error) {
	m.mu.Lock()
	entry, ok := m.entries[key]
	m.mu.Unlock()
	if ok && m.now().Before(entry.expires) {
		internal.TrackCache(internal.CacheHit)
		return entry.value, nil
	}

	internal.TrackCache(internal.CacheMiss)
	value, err := compute()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, expires: m.now().Add(ttl)}
	m.mu.Unlock()
	return value, nil
}

// RedisStore is the Redis-backed Store backend, for running more than one
// instance behind a load balancer. Redis failures fall back to computing:
// the cache never turns an optimization into an outage.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisStore) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		internal.TrackCache(internal.CacheHit)
		return value, nil
	}
	if err != redis.Nil {
		log.Printf("cache: redis get %q: %v", key, err)
	}

	internal.TrackCache(internal.CacheMiss)
	value, err = compute()
	if err != nil {
		return nil, err
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("cache: redis set %q: %v", key, err)
	}
	return value, nil
}
