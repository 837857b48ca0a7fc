package listing

import (
	"context"
	"fmt"

	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Lister define a listagem paginada de vendas
type Lister interface {
	ListSales(ctx context.Context, req domain.QueryRequest) (*SalesListResponse, error)
}

type Service struct {
	salesRepository repository.SalesRepository
}

func NewService(salesRepository repository.SalesRepository) Lister {
	return &Service{
		salesRepository: salesRepository,
	}
}

// BuildQuery compila filtro, ordenação e janela de paginação de uma requisição
func BuildQuery(req domain.QueryRequest) domain.SalesQuery {
	return domain.SalesQuery{
		Filter: CompileFilter(req.Search, req.Filters),
		Sort:   ResolveSort(req.Sort),
		Offset: req.Offset(),
		Limit:  int64(req.PageSize),
	}
}

// ListSales executa a consulta e monta a resposta no contrato externo
func (s *Service) ListSales(ctx context.Context, req domain.QueryRequest) (*SalesListResponse, error) {
	query := BuildQuery(req)

	page, err := s.execute(ctx, query)
	if err != nil {
		return nil, err
	}

	return Assemble(req, query.Sort, page), nil
}

// execute busca a página e o total em paralelo, ambos com o mesmo predicado.
// Qualquer falha cancela a outra leitura e derruba a requisição inteira.
func (s *Service) execute(ctx context.Context, query domain.SalesQuery) (*domain.SalesPage, error) {
	var (
		records []*domain.SalesRecord
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.salesRepository.Find(gctx, query)
		if err != nil {
			return fmt.Errorf("erro ao buscar página de vendas: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		total, err = s.salesRepository.Count(gctx, query.Filter)
		if err != nil {
			return fmt.Errorf("erro ao contar vendas: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if records == nil {
		records = make([]*domain.SalesRecord, 0)
	}

	return &domain.SalesPage{
		Records:      records,
		TotalRecords: total,
	}, nil
}
