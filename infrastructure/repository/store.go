package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/mongodb"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/internal/config"
)

// OpenSalesStore conecta ao banco escolhido em DATABASE_DRIVER e devolve o repositório de vendas.
// O io.Closer retornado encerra a conexão subjacente.
func OpenSalesStore(ctx context.Context, cfg *config.Config) (SalesStore, io.Closer, error) {
	switch cfg.Database.Driver {
	case config.DriverMongoDB:
		conn, err := mongodb.NewConnection(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar ao MongoDB: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"database":   cfg.Mongo.Database,
			"collection": cfg.Mongo.Collection,
		}).Info("Conexão com MongoDB estabelecida com sucesso")

		return NewMongoSalesRepository(conn), conn, nil

	case config.DriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

		return NewPostgresSalesRepository(conn), conn, nil
	}

	return nil, nil, fmt.Errorf("driver de banco desconhecido: %q", cfg.Database.Driver)
}
