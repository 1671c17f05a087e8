package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-bff/internal/config"
	"storefront-bff/internal/metrics"

	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache.go -destination=../mocks/mock_cache_provider.go -package=mocks

// CacheProvider stores serialized catalog responses.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

const catalogCacheName = "catalog"

// MemCache keeps catalog entries in process memory. Suitable for a
// single replica deployment.
type MemCache struct {
	store *gocache.Cache
}

func NewMemCache(defaultTTL time.Duration) *MemCache {
	return &MemCache{
		store: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (c *MemCache) Get(_ context.Context, key string) ([]byte, bool) {
	value, ok := c.store.Get(key)
	if !ok {
		metrics.CacheMisses.WithLabelValues(catalogCacheName).Inc()
		return nil, false
	}

	data, ok := value.([]byte)
	if !ok {
		metrics.CacheMisses.WithLabelValues(catalogCacheName).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(catalogCacheName).Inc()
	return data, true
}

func (c *MemCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

func (c *MemCache) Delete(_ context.Context, key string) {
	c.store.Delete(key)
}

// RedisCache shares catalog entries between replicas.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg *config.RedisConfig) (*RedisCache, error) {
	var client *redis.Client

	if cfg.Sentinel != nil {
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.Sentinel.MasterName,
			SentinelAddrs:    cfg.Sentinel.SentinelAddresses,
			SentinelUsername: cfg.Sentinel.SentinelUsername,
			SentinelPassword: cfg.Sentinel.SentinelPassword,
			Username:         cfg.Username,
			Password:         cfg.Password,
			DB:               cfg.CacheIndex,
			MinIdleConns:     2,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Address,
			Username:     cfg.Username,
			Password:     cfg.Password,
			DB:           cfg.CacheIndex,
			MinIdleConns: 2,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	collector := redisprometheus.NewCollector(metrics.Namespace, "catalog_cache", client)
	if err := prometheus.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("register redis collector: %w", err)
		}
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		metrics.CacheMisses.WithLabelValues(catalogCacheName).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(catalogCacheName).Inc()
	return data, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.client.Set(ctx, key, value, ttl)
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	c.client.Del(ctx, key)
}
