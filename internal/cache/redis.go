package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Halzat4/Online-shop/internal/repository"
	"github.com/redis/go-redis/v9"
)

// NewRedisCache caches one record set per namespace. Pass the backing store's
// Location so stores sharing a Redis never read each other's records.
func NewRedisCache(client *redis.Client, namespace string) *RedisCache {
	return &RedisCache{
		client:    client,
		namespace: namespace,
		baseTTL:   15 * time.Minute,
	}
}

type RedisCache struct {
	client    *redis.Client
	namespace string
	baseTTL   time.Duration
}

func (r RedisCache) Get(ctx context.Context) (repository.Clients, error) {
	data, err := r.client.Get(ctx, cacheKey(r.namespace)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var clients repository.Clients
	if err := json.Unmarshal(data, &clients); err != nil {
		return nil, fmt.Errorf("unmarshal clients failed: %w", err)
	}
	if clients == nil {
		clients = repository.Clients{}
	}
	return clients, nil
}

func (r RedisCache) Set(ctx context.Context, clients repository.Clients) error {
	data, err := json.Marshal(clients)
	if err != nil {
		return fmt.Errorf("marshal clients failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	if err := r.client.Set(ctx, cacheKey(r.namespace), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r RedisCache) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, cacheKey(r.namespace)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

// cacheKey hashes the namespace so store locations, which may carry
// credentials, never appear in Redis key names.
func cacheKey(namespace string) string {
	sum := sha256.Sum256([]byte(namespace))
	return "clients:" + hex.EncodeToString(sum[:8])
}
