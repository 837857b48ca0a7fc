package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

func newPostgresMock(t *testing.T) (SalesStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresSalesRepository(postgres.NewFromDB(db)), mock
}

func salesRow(id string, date time.Time) []driver.Value {
	return []driver.Value{
		id, date, "C-1", "Maria Silva", "+55 11 99999-0000", "Female", 34, "South", "Returning",
		"P-1", "Serum", "Lumiere", "Beauty", "{organic,skincare}", 2, 60.0, 10.0, 120.0, 108.0,
		"Credit Card", "Completed", "Standard", "S-1", "Curitiba", "E-1", "Ana",
	}
}

func TestPostgresSalesRepository_Find(t *testing.T) {
	repo, mock := newPostgresMock(t)
	date := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sales WHERE (customer_region IN ($1))")).
		WithArgs("South").
		WillReturnRows(sqlmock.NewRows(salesColumns).AddRow(salesRow("T-1", date)...))

	records, err := repo.Find(context.Background(), domain.SalesQuery{
		Filter: domain.And(domain.In(domain.FieldCustomerRegion, []string{"South"})),
		Sort:   domain.SortDirective{Field: domain.FieldDate, Descending: true},
		Limit:  10,
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "T-1", records[0].TransactionID)
	assert.Equal(t, date, records[0].Date)
	assert.Equal(t, []string{"organic", "skincare"}, records[0].Tags)
	assert.Equal(t, 34, records[0].Age)
	assert.Equal(t, 108.0, records[0].FinalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesRepository_Find_Error(t *testing.T) {
	repo, mock := newPostgresMock(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	records, err := repo.Find(context.Background(), domain.SalesQuery{Filter: domain.And(), Limit: 10})

	assert.Nil(t, records)
	assert.ErrorContains(t, err, "connection reset")
}

func TestPostgresSalesRepository_Count(t *testing.T) {
	repo, mock := newPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sales")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.Count(context.Background(), domain.And())

	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesRepository_Distinct(t *testing.T) {
	repo, mock := newPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT tag FROM sales, unnest(tags) AS tag")).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}).AddRow("organic").AddRow("skincare"))

	values, err := repo.Distinct(context.Background(), domain.FieldTags)

	require.NoError(t, err)
	assert.Equal(t, []string{"organic", "skincare"}, values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesRepository_Summarize(t *testing.T) {
	repo, mock := newPostgresMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COALESCE(SUM(final_amount), 0) FROM sales")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(4, 250.75))

	stats, err := repo.Summarize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalTransactions)
	assert.Equal(t, 250.75, stats.TotalRevenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesRepository_Reset(t *testing.T) {
	repo, mock := newPostgresMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS sales").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("TRUNCATE TABLE sales").WillReturnResult(sqlmock.NewResult(0, 0))
	for range createSalesIndexes {
		mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.Reset(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesRepository_Reset_RollbackOnError(t *testing.T) {
	repo, mock := newPostgresMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS sales").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("TRUNCATE TABLE sales").WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err := repo.Reset(context.Background())

	assert.ErrorContains(t, err, "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesRepository_InsertBatch(t *testing.T) {
	repo, mock := newPostgresMock(t)

	records := []*domain.SalesRecord{
		{TransactionID: "T-1", Date: time.Now().UTC(), Tags: []string{"organic"}},
		{TransactionID: "T-2", Date: time.Now().UTC()},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sales (transaction_id,date,")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.InsertBatch(context.Background(), records))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSalesRepository_InsertBatch_Empty(t *testing.T) {
	repo, mock := newPostgresMock(t)

	require.NoError(t, repo.InsertBatch(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenSalesStore_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Database: config.Database{Driver: "sqlite"}}

	store, closer, err := OpenSalesStore(context.Background(), cfg)

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Nil(t, closer)
}
