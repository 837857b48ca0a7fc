package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

func TestMemoryCatalogCache(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	c := NewMemoryCatalogCache(time.Minute)
	c.now = func() time.Time { return now }

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)

	catalog := &domain.FilterCatalog{Brand: []string{"Acme"}}
	require.NoError(t, c.Set(context.Background(), catalog))

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)

	now = now.Add(time.Minute)
	_, err = c.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss, "entrada expirada")

	require.NoError(t, c.Set(context.Background(), catalog))
	require.NoError(t, c.Invalidate(context.Background()))
	_, err = c.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
}
