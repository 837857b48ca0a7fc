package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// maxRowsPerInsert mantém cada INSERT abaixo do limite de 65535 parâmetros do Postgres
const maxRowsPerInsert = 1000

const createSalesTable = `
CREATE TABLE IF NOT EXISTS sales (
	transaction_id      TEXT PRIMARY KEY,
	date                TIMESTAMPTZ NOT NULL,
	customer_id         TEXT NOT NULL,
	customer_name       TEXT NOT NULL,
	phone_number        TEXT NOT NULL,
	gender              TEXT NOT NULL,
	age                 INTEGER NOT NULL,
	customer_region     TEXT NOT NULL,
	customer_type       TEXT NOT NULL,
	product_id          TEXT NOT NULL,
	product_name        TEXT NOT NULL,
	brand               TEXT NOT NULL,
	product_category    TEXT NOT NULL,
	tags                TEXT[] NOT NULL DEFAULT '{}',
	quantity            INTEGER NOT NULL,
	price_per_unit      NUMERIC(12, 2) NOT NULL,
	discount_percentage NUMERIC(5, 2) NOT NULL,
	total_amount        NUMERIC(14, 2) NOT NULL,
	final_amount        NUMERIC(14, 2) NOT NULL,
	payment_method      TEXT NOT NULL,
	order_status        TEXT NOT NULL,
	delivery_type       TEXT NOT NULL,
	store_id            TEXT NOT NULL,
	store_location      TEXT NOT NULL,
	salesperson_id      TEXT NOT NULL,
	employee_name       TEXT NOT NULL
)`

var createSalesIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_quantity ON sales (quantity)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer_name ON sales (customer_name)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer_region ON sales (customer_region)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product_category ON sales (product_category)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_final_amount ON sales (final_amount)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_tags ON sales USING GIN (tags)`,
}

type postgresSalesRepository struct {
	conn postgres.Conn
}

func NewPostgresSalesRepository(conn postgres.Conn) SalesStore {
	return &postgresSalesRepository{
		conn: conn,
	}
}

func (r *postgresSalesRepository) Find(ctx context.Context, query domain.SalesQuery) ([]*domain.SalesRecord, error) {
	sqlQuery, args, err := buildFindQuery(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SalesRecord, 0, query.Limit)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return records, nil
}

func scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	var record domain.SalesRecord

	err := rows.Scan(
		&record.TransactionID,
		&record.Date,
		&record.CustomerID,
		&record.CustomerName,
		&record.PhoneNumber,
		&record.Gender,
		&record.Age,
		&record.CustomerRegion,
		&record.CustomerType,
		&record.ProductID,
		&record.ProductName,
		&record.Brand,
		&record.ProductCategory,
		pq.Array(&record.Tags),
		&record.Quantity,
		&record.PricePerUnit,
		&record.DiscountPercentage,
		&record.TotalAmount,
		&record.FinalAmount,
		&record.PaymentMethod,
		&record.OrderStatus,
		&record.DeliveryType,
		&record.StoreID,
		&record.StoreLocation,
		&record.SalespersonID,
		&record.EmployeeName,
	)
	if err != nil {
		return nil, err
	}

	record.Date = record.Date.UTC()
	return &record, nil
}

func (r *postgresSalesRepository) Count(ctx context.Context, filter domain.Predicate) (int64, error) {
	sqlQuery, args, err := buildCountQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return total, nil
}

func (r *postgresSalesRepository) Distinct(ctx context.Context, field domain.Field) ([]string, error) {
	sqlQuery, args, err := buildDistinctQuery(field)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar valores distintos de %s: %w", field, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("erro ao ler valor distinto: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar valores distintos: %w", err)
	}

	return values, nil
}

func (r *postgresSalesRepository) Summarize(ctx context.Context) (*domain.CorpusStatistics, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(final_amount), 0)").
		From(salesTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var stats domain.CorpusStatistics
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&stats.TotalTransactions, &stats.TotalRevenue); err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas: %w", err)
	}

	return &stats, nil
}

func (r *postgresSalesRepository) Reset(ctx context.Context) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, createSalesTable); err != nil {
			return fmt.Errorf("erro ao criar tabela sales: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE sales"); err != nil {
			return fmt.Errorf("erro ao limpar tabela sales: %w", err)
		}

		for _, stmt := range createSalesIndexes {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao criar índice: %w", err)
			}
		}

		return nil
	})
}

func (r *postgresSalesRepository) InsertBatch(ctx context.Context, records []*domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += maxRowsPerInsert {
			end := min(start+maxRowsPerInsert, len(records))

			sqlQuery, args, err := buildInsertQuery(records[start:end])
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
				return fmt.Errorf("erro ao inserir lote de %d vendas: %w", end-start, err)
			}
		}
		return nil
	})
}

func buildInsertQuery(records []*domain.SalesRecord) (string, []interface{}, error) {
	builder := squirrel.
		Insert(salesTable).
		Columns(salesColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		tags := record.Tags
		if tags == nil {
			tags = []string{}
		}

		builder = builder.Values(
			record.TransactionID,
			record.Date,
			record.CustomerID,
			record.CustomerName,
			record.PhoneNumber,
			record.Gender,
			record.Age,
			record.CustomerRegion,
			record.CustomerType,
			record.ProductID,
			record.ProductName,
			record.Brand,
			record.ProductCategory,
			pq.Array(tags),
			record.Quantity,
			record.PricePerUnit,
			record.DiscountPercentage,
			record.TotalAmount,
			record.FinalAmount,
			record.PaymentMethod,
			record.OrderStatus,
			record.DeliveryType,
			record.StoreID,
			record.StoreLocation,
			record.SalespersonID,
			record.EmployeeName,
		)
	}

	return builder.ToSql()
}

func (r *postgresSalesRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}
