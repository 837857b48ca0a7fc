package importing

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

const defaultBatchSize = 1000

// Report resume uma execução da importação
type Report struct {
	Read     int
	Imported int
	Skipped  int
	Duration time.Duration
}

type Importer interface {
	Import(ctx context.Context, r io.Reader) (*Report, error)
}

type Service struct {
	loader    repository.SalesLoader
	batchSize int
}

func NewService(loader repository.SalesLoader, batchSize int) Importer {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Service{
		loader:    loader,
		batchSize: batchSize,
	}
}

// Import apaga os dados atuais e recarrega a partir do CSV. Linhas com data ou número inválido são puladas.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Report, error) {
	start := time.Now()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do CSV")
	}

	columns, err := NewColumnIndex(header)
	if err != nil {
		return nil, err
	}

	if err := s.loader.Reset(ctx); err != nil {
		return nil, errors.Wrap(err, "erro ao preparar o banco para importação")
	}

	report := &Report{}
	batch := make([]*domain.SalesRecord, 0, s.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.loader.InsertBatch(ctx, batch); err != nil {
			return errors.Wrapf(err, "erro ao inserir lote após a linha %d", report.Read)
		}

		report.Imported += len(batch)
		batch = make([]*domain.SalesRecord, 0, s.batchSize)

		log.L.WithFields(log.Fields{
			"import_read":     report.Read,
			"import_imported": report.Imported,
		}).Info("Lote importado")
		return nil
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, errors.Wrapf(err, "erro ao ler linha %d do CSV", report.Read+2)
		}

		report.Read++

		record, err := columns.Parse(row)
		if err != nil {
			report.Skipped++
			log.L.WithField("import_line", report.Read+1).WithError(err).Debug("Linha ignorada")
			continue
		}

		batch = append(batch, record)
		if len(batch) >= s.batchSize {
			if err := flush(); err != nil {
				return report, err
			}
		}
	}

	if err := flush(); err != nil {
		return report, err
	}

	report.Duration = time.Since(start)
	return report, nil
}
