package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/usecases/importing"
	"github.com/vfg2006/retail-sales-api/pkg/log"
)

// Importa o CSV do dataset para o banco configurado em DATABASE_DRIVER.
// Uso: go run ./infrastructure/migration/script [caminho.csv]
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	csvPath := cfg.Seed.CSVPath
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, csvPath); err != nil {
		logrus.WithError(err).Fatal("Erro na importação do dataset")
	}
}

func run(ctx context.Context, cfg *config.Config, csvPath string) error {
	logrus.WithFields(logrus.Fields{
		"import_file":   csvPath,
		"import_driver": cfg.Database.Driver,
	}).Info("Iniciando script de importação...")

	file, err := os.Open(csvPath)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir arquivo %s", csvPath)
	}
	defer file.Close()

	store, closer, err := repository.OpenSalesStore(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "erro ao conectar ao banco")
	}
	defer closer.Close()

	importer := importing.NewService(store, cfg.Seed.BatchSize)

	report, err := importer.Import(ctx, file)
	if err != nil {
		return errors.Wrap(err, "erro ao importar vendas")
	}

	logrus.WithFields(logrus.Fields{
		"import_read":     report.Read,
		"import_imported": report.Imported,
		"import_skipped":  report.Skipped,
		"import_duration": report.Duration.String(),
	}).Info("Importação concluída")

	return nil
}
