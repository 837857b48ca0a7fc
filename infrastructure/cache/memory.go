package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// MemoryCatalogCache é usado quando o Redis está desabilitado. Vale apenas para a instância atual.
type MemoryCatalogCache struct {
	mu        sync.RWMutex
	catalog   *domain.FilterCatalog
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

func NewMemoryCatalogCache(ttl time.Duration) *MemoryCatalogCache {
	return &MemoryCatalogCache{
		ttl: ttl,
		now: time.Now,
	}
}

func (c *MemoryCatalogCache) Get(_ context.Context) (*domain.FilterCatalog, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.catalog == nil || (c.ttl > 0 && !c.now().Before(c.expiresAt)) {
		return nil, ErrCacheMiss
	}

	return c.catalog, nil
}

func (c *MemoryCatalogCache) Set(_ context.Context, catalog *domain.FilterCatalog) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.catalog = catalog
	c.expiresAt = c.now().Add(c.ttl)
	return nil
}

func (c *MemoryCatalogCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.catalog = nil
	return nil
}
