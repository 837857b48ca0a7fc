package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

type fakeCataloger struct {
	mu      sync.Mutex
	calls   int
	err     error
	release chan struct{}
}

func (f *fakeCataloger) GetFilterOptions(ctx context.Context) (*domain.FilterCatalog, error) {
	return f.RefreshFilterOptions(ctx)
}

func (f *fakeCataloger) RefreshFilterOptions(_ context.Context) (*domain.FilterCatalog, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.FilterCatalog{Tags: []string{"organic"}}, nil
}

func (f *fakeCataloger) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		CatalogRefresh: config.CatalogRefresh{CronSchedule: "*/10 * * * *", Enabled: enabled},
	}
}

func TestCatalogRefreshService_RefreshCatalog(t *testing.T) {
	cataloger := &fakeCataloger{}
	service := NewCatalogRefreshService(cataloger, newTestConfig(true))

	require.NoError(t, service.RefreshCatalog(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, 1, cataloger.Calls())
	assert.Equal(t, false, status["refresh_running"])
	assert.Equal(t, "", status["last_refresh_error"])
	assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
}

func TestCatalogRefreshService_RefreshCatalog_Error(t *testing.T) {
	cataloger := &fakeCataloger{err: errors.New("mongo down")}
	service := NewCatalogRefreshService(cataloger, newTestConfig(true))

	err := service.RefreshCatalog(context.Background())

	assert.ErrorContains(t, err, "mongo down")
	assert.Equal(t, "mongo down", service.GetStatus()["last_refresh_error"])
}

func TestCatalogRefreshService_IgnoresOverlappingRuns(t *testing.T) {
	cataloger := &fakeCataloger{release: make(chan struct{})}
	service := NewCatalogRefreshService(cataloger, newTestConfig(true))

	done := make(chan error)
	go func() { done <- service.RefreshCatalog(context.Background()) }()

	require.Eventually(t, func() bool { return cataloger.Calls() == 1 }, time.Second, 5*time.Millisecond)

	assert.NoError(t, service.RefreshCatalog(context.Background()))
	assert.False(t, service.TriggerManualRefresh())
	assert.Equal(t, true, service.GetStatus()["refresh_running"])

	close(cataloger.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, cataloger.Calls())
}

func TestCatalogRefreshService_TriggerManualRefresh(t *testing.T) {
	cataloger := &fakeCataloger{}
	service := NewCatalogRefreshService(cataloger, newTestConfig(false))

	assert.True(t, service.TriggerManualRefresh())
	assert.Eventually(t, func() bool { return cataloger.Calls() == 1 }, time.Second, 5*time.Millisecond)
}

func TestCatalogRefreshService_Start(t *testing.T) {
	t.Run("desabilitado não agenda nada", func(t *testing.T) {
		service := NewCatalogRefreshService(&fakeCataloger{}, newTestConfig(false))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("cron inválida retorna erro", func(t *testing.T) {
		cfg := newTestConfig(true)
		cfg.CatalogRefresh.CronSchedule = "not a cron"
		service := NewCatalogRefreshService(&fakeCataloger{}, cfg)

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("habilitado agenda e para com o contexto", func(t *testing.T) {
		service := NewCatalogRefreshService(&fakeCataloger{}, newTestConfig(true))

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
