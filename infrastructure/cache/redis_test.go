package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

type fakeRedisClient struct {
	values  map[string]string
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	pingErr error
	closed  bool
}

func newFakeRedisClient() *fakeRedisClient {
	return &fakeRedisClient{
		values: map[string]string{},
		ttls:   map[string]time.Duration{},
	}
}

func (f *fakeRedisClient) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	value, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedisClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedisClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.values, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (f *fakeRedisClient) Ping(_ context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.pingErr)
}

func (f *fakeRedisClient) Close() error {
	f.closed = true
	return nil
}

func newTestRedisCache(client *fakeRedisClient) *RedisCatalogCache {
	return &RedisCatalogCache{
		client:    client,
		ttl:       10 * time.Minute,
		opTimeout: time.Second,
	}
}

func TestRedisCatalogCache_SetAndGet(t *testing.T) {
	client := newFakeRedisClient()
	c := newTestRedisCache(client)

	catalog := &domain.FilterCatalog{
		Gender: []string{"Female", "Male"},
		Tags:   []string{"organic"},
	}

	require.NoError(t, c.Set(context.Background(), catalog))
	assert.Equal(t, 10*time.Minute, client.ttls[CatalogKey])
	assert.Contains(t, client.values[CatalogKey], `"gender":["Female","Male"]`)

	got, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestRedisCatalogCache_Miss(t *testing.T) {
	c := newTestRedisCache(newFakeRedisClient())

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCatalogCache_Errors(t *testing.T) {
	client := newFakeRedisClient()
	client.getErr = errors.New("i/o timeout")
	client.setErr = errors.New("READONLY")
	c := newTestRedisCache(client)

	_, err := c.Get(context.Background())
	assert.ErrorContains(t, err, "i/o timeout")
	assert.NotErrorIs(t, err, ErrCacheMiss)

	err = c.Set(context.Background(), &domain.FilterCatalog{})
	assert.ErrorContains(t, err, "READONLY")
}

func TestRedisCatalogCache_CorruptedPayload(t *testing.T) {
	client := newFakeRedisClient()
	client.values[CatalogKey] = "{not json"
	c := newTestRedisCache(client)

	_, err := c.Get(context.Background())
	assert.ErrorContains(t, err, "decodificar")
}

func TestRedisCatalogCache_InvalidateAndClose(t *testing.T) {
	client := newFakeRedisClient()
	client.values[CatalogKey] = "{}"
	c := newTestRedisCache(client)

	require.NoError(t, c.Invalidate(context.Background()))
	assert.NotContains(t, client.values, CatalogKey)

	require.NoError(t, c.Ping(context.Background()))
	require.NoError(t, c.Close())
	assert.True(t, client.closed)
}

func TestNewRedisCatalogCache_Validation(t *testing.T) {
	_, err := NewRedisCatalogCache("", time.Minute)
	assert.Error(t, err)

	_, err = NewRedisCatalogCache("http://not-redis", time.Minute)
	assert.Error(t, err)

	c, err := NewRedisCatalogCache("redis://localhost:6379/0", time.Minute)
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}
