// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/usecases/cataloging"
)

const refreshTimeout = 2 * time.Minute

type CatalogRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// CatalogRefreshService remonta periodicamente o catálogo de opções de filtro e atualiza o cache
type CatalogRefreshService struct {
	scheduler *gocron.Scheduler
	cataloger cataloging.Cataloger
	config    CatalogRefreshConfig

	mu                     sync.Mutex
	refreshRunning         bool
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
}

func NewCatalogRefreshService(cataloger cataloging.Cataloger, cfg *config.Config) *CatalogRefreshService {
	refreshConfig := CatalogRefreshConfig{
		CronSchedule: cfg.CatalogRefresh.CronSchedule, // Default: a cada 10 minutos
		Enabled:      cfg.CatalogRefresh.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de atualização do catálogo carregada")

	return &CatalogRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		cataloger: cataloger,
		config:    refreshConfig,
	}
}

func (s *CatalogRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshCatalog(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do catálogo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do catálogo: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshCatalog remonta o catálogo. Execuções sobrepostas são ignoradas.
func (s *CatalogRefreshService) RefreshCatalog(ctx context.Context) error {
	s.mu.Lock()
	if s.refreshRunning {
		s.mu.Unlock()
		logrus.Warn("Atualização do catálogo já está em execução")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	logrus.Info("Iniciando atualização do catálogo de filtros")

	catalog, err := s.cataloger.RefreshFilterOptions(ctx)

	s.mu.Lock()
	s.refreshRunning = false
	s.lastRefreshCompletedAt = time.Now()
	s.lastRefreshError = ""
	if err != nil {
		s.lastRefreshError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"catalog_tags":   len(catalog.Tags),
		"catalog_brands": len(catalog.Brand),
	}).Info("Atualização do catálogo concluída")

	return nil
}

// TriggerManualRefresh inicia manualmente uma atualização do catálogo. Retorna false se já houver uma em andamento.
func (s *CatalogRefreshService) TriggerManualRefresh() bool {
	s.mu.Lock()
	if s.refreshRunning {
		s.mu.Unlock()
		logrus.Info("Atualização do catálogo já em andamento, ignorando solicitação manual")
		return false
	}
	s.mu.Unlock()

	logrus.Info("Iniciando atualização manual do catálogo")
	go func() {
		if err := s.RefreshCatalog(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do catálogo")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *CatalogRefreshService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_running":           s.refreshRunning,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_error":        s.lastRefreshError,
	}
}
