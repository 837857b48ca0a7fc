package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultRedisTimeout = 2 * time.Second

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisCatalogCache guarda o catálogo serializado em JSON no Redis
type RedisCatalogCache struct {
	client    redisClient
	ttl       time.Duration
	opTimeout time.Duration
}

func NewRedisCatalogCache(url string, ttl time.Duration) (*RedisCatalogCache, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("REDIS_URL é obrigatório")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar REDIS_URL: %w", err)
	}

	return &RedisCatalogCache{
		client:    redis.NewClient(opts),
		ttl:       ttl,
		opTimeout: defaultRedisTimeout,
	}, nil
}

func (c *RedisCatalogCache) Get(ctx context.Context) (*domain.FilterCatalog, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, CatalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("erro ao ler catálogo do redis: %w", err)
	}

	var catalog domain.FilterCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("erro ao decodificar catálogo do redis: %w", err)
	}

	return &catalog, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, catalog *domain.FilterCatalog) error {
	payload, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("erro ao serializar catálogo: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, CatalogKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar catálogo no redis: %w", err)
	}

	return nil
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	return c.client.Del(ctx, CatalogKey).Err()
}

func (c *RedisCatalogCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.opTimeout)
	defer cancel()

	return c.client.Ping(ctx).Err()
}

func (c *RedisCatalogCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
