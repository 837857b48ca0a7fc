// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"

	"github.com/vfg2006/retail-sales-api/internal/domain"
)

//go:generate mockgen -source=sales.go -destination=mocks/mock_sales.go -package=mocks

// SalesRepository é o caminho de leitura das vendas, independente do banco usado
type SalesRepository interface {
	// Find retorna a janela de registros que atende ao filtro, já ordenada
	Find(ctx context.Context, query domain.SalesQuery) ([]*domain.SalesRecord, error)
	// Count retorna o total de registros que atendem ao filtro, ignorando a paginação
	Count(ctx context.Context, filter domain.Predicate) (int64, error)
	// Distinct retorna os valores distintos de um campo em todo o conjunto. Campos multivalorados são achatados.
	Distinct(ctx context.Context, field domain.Field) ([]string, error)
	// Summarize retorna quantidade de transações e soma dos valores finais de todo o conjunto
	Summarize(ctx context.Context) (*domain.CorpusStatistics, error)
}

// SalesLoader é o caminho de escrita usado apenas pelo script de importação
type SalesLoader interface {
	// Reset apaga os registros existentes e prepara a estrutura (tabela, índices)
	Reset(ctx context.Context) error
	InsertBatch(ctx context.Context, records []*domain.SalesRecord) error
}

// SalesStore reúne leitura e escrita sobre o mesmo banco
type SalesStore interface {
	SalesRepository
	SalesLoader
	Ping(ctx context.Context) error
}
