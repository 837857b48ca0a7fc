package summarizing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// Summarizer calcula as estatísticas sobre todo o conjunto de vendas, sem filtros
type Summarizer interface {
	GetStatistics(ctx context.Context) (*domain.CorpusStatistics, error)
}

type Service struct {
	salesRepository repository.SalesRepository
}

func NewService(salesRepository repository.SalesRepository) Summarizer {
	return &Service{
		salesRepository: salesRepository,
	}
}

func (s *Service) GetStatistics(ctx context.Context) (*domain.CorpusStatistics, error) {
	stats, err := s.salesRepository.Summarize(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular estatísticas: %w", err)
	}

	revenue := decimal.NewFromFloat(stats.TotalRevenue)

	result := &domain.CorpusStatistics{
		TotalTransactions: stats.TotalTransactions,
		TotalRevenue:      revenue.Round(2).InexactFloat64(),
	}

	// conjunto vazio mantém média 0
	if stats.TotalTransactions > 0 {
		result.AverageOrderValue = revenue.
			Div(decimal.NewFromInt(stats.TotalTransactions)).
			Round(2).
			InexactFloat64()
	}

	return result, nil
}
