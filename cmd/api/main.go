package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/infrastructure/cache"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/api"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/scheduler"
	"github.com/vfg2006/retail-sales-api/internal/usecases/cataloging"
	"github.com/vfg2006/retail-sales-api/internal/usecases/listing"
	"github.com/vfg2006/retail-sales-api/internal/usecases/summarizing"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

func main() {
	// Formato inicial, substituído após carregar a configuração
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	apiErrors.SetProduction(cfg.App.IsProduction())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closer, err := repository.OpenSalesStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de vendas")
	}
	defer closer.Close()

	catalogCache := newCatalogCache(cfg)

	lister := listing.NewService(store)
	cataloger := cataloging.NewService(store, catalogCache)
	summarizer := summarizing.NewService(store)

	catalogRefreshService := scheduler.NewCatalogRefreshService(cataloger, cfg)
	if err := catalogRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do catálogo")
	} else {
		logrus.Info("Agendador de atualização do catálogo iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Store:          store,
		Lister:         lister,
		Cataloger:      cataloger,
		Summarizer:     summarizer,
		CatalogRefresh: catalogRefreshService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newCatalogCache usa o Redis quando habilitado e cai para o cache em memória em qualquer falha
func newCatalogCache(cfg *config.Config) cache.CatalogCache {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCatalogCache(cfg.Redis.CacheTTL)
	}

	redisCache, err := cache.NewRedisCatalogCache(cfg.Redis.URL, cfg.Redis.CacheTTL)
	if err != nil {
		logrus.WithError(err).Warn("Configuração do Redis inválida, usando cache em memória")
		return cache.NewMemoryCatalogCache(cfg.Redis.CacheTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisCache.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
		_ = redisCache.Close()
		return cache.NewMemoryCatalogCache(cfg.Redis.CacheTTL)
	}

	logrus.Info("Cache do catálogo usando Redis")
	return redisCache
}
