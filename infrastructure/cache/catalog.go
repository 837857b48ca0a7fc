// Package cache guarda o catálogo de opções de filtro entre requisições
package cache

import (
	"context"
	"errors"

	"github.com/vfg2006/retail-sales-api/internal/domain"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// CatalogKey é a chave do catálogo. O sufixo de versão muda junto com o formato de FilterCatalog.
const CatalogKey = "retail:catalog:v1"

// ErrCacheMiss indica que não há catálogo válido armazenado
var ErrCacheMiss = errors.New("cache: catálogo não encontrado")

type CatalogCache interface {
	// Get retorna ErrCacheMiss quando não há entrada ou ela expirou
	Get(ctx context.Context) (*domain.FilterCatalog, error)
	Set(ctx context.Context, catalog *domain.FilterCatalog) error
	Invalidate(ctx context.Context) error
}
