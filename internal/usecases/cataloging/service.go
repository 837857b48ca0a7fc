package cataloging

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/vfg2006/retail-sales-api/infrastructure/cache"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Cataloger expõe as opções de cada filtro de múltipla escolha
type Cataloger interface {
	GetFilterOptions(ctx context.Context) (*domain.FilterCatalog, error)
	RefreshFilterOptions(ctx context.Context) (*domain.FilterCatalog, error)
}

type Service struct {
	salesRepository repository.SalesRepository
	catalogCache    cache.CatalogCache
}

func NewService(salesRepository repository.SalesRepository, catalogCache cache.CatalogCache) Cataloger {
	return &Service{
		salesRepository: salesRepository,
		catalogCache:    catalogCache,
	}
}

// GetFilterOptions usa o catálogo em cache quando existir. Falhas do cache nunca derrubam a requisição.
func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterCatalog, error) {
	catalog, err := s.catalogCache.Get(ctx)
	if err == nil {
		return catalog, nil
	}

	if !errors.Is(err, cache.ErrCacheMiss) {
		log.ForContext(ctx).WithError(err).Warn("catalog: falha ao ler cache, montando catálogo direto do banco")
	}

	catalog, err = s.Build(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.catalogCache.Set(ctx, catalog); err != nil {
		log.ForContext(ctx).WithError(err).Warn("catalog: falha ao gravar cache")
	}

	return catalog, nil
}

// RefreshFilterOptions remonta o catálogo e sobrescreve o cache
func (s *Service) RefreshFilterOptions(ctx context.Context) (*domain.FilterCatalog, error) {
	catalog, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.catalogCache.Set(ctx, catalog); err != nil {
		return catalog, fmt.Errorf("erro ao gravar catálogo no cache: %w", err)
	}

	return catalog, nil
}

// Build varre o conjunto inteiro, ignorando filtros ativos. Os campos são consultados em paralelo.
func (s *Service) Build(ctx context.Context) (*domain.FilterCatalog, error) {
	values := make([][]string, len(domain.CatalogFields))

	g, gctx := errgroup.WithContext(ctx)
	for i, field := range domain.CatalogFields {
		i, field := i, field // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			distinct, err := s.salesRepository.Distinct(gctx, field)
			if err != nil {
				return fmt.Errorf("erro ao buscar opções de %s: %w", field, err)
			}
			values[i] = Normalize(distinct)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := &domain.FilterCatalog{}
	for i, field := range domain.CatalogFields {
		catalog.Put(field, values[i])
	}

	log.ForContext(ctx).WithField("catalog_fields", len(domain.CatalogFields)).Debug("catalog: catálogo montado")

	return catalog, nil
}

// Normalize ordena alfabeticamente, remove duplicatas e descarta valores vazios
func Normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}
