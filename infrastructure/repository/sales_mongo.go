package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/retail-sales-api/infrastructure/database/mongodb"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoIndexedFields recebem índice simples no Reset: campos de ordenação e de filtro
var mongoIndexedFields = []domain.Field{
	domain.FieldDate,
	domain.FieldQuantity,
	domain.FieldCustomerName,
	domain.FieldCustomerRegion,
	domain.FieldGender,
	domain.FieldProductCategory,
	domain.FieldTags,
	domain.FieldPaymentMethod,
	domain.FieldOrderStatus,
	domain.FieldDeliveryType,
	domain.FieldBrand,
	domain.FieldAge,
	domain.FieldFinalAmount,
}

type mongoSalesRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoSalesRepository(conn *mongodb.Connection) SalesStore {
	return newMongoSalesRepository(conn.Sales(), conn.OperationTimeout())
}

func newMongoSalesRepository(coll *mongo.Collection, timeout time.Duration) *mongoSalesRepository {
	return &mongoSalesRepository{
		coll:    coll,
		timeout: timeout,
	}
}

func (r *mongoSalesRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return mongodb.WithTimeout(ctx, r.timeout)
}

func (r *mongoSalesRepository) Find(ctx context.Context, query domain.SalesQuery) ([]*domain.SalesRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(toMongoSort(query.Sort)).
		SetSkip(query.Offset).
		SetLimit(query.Limit)

	cursor, err := r.coll.Find(ctx, toMongoFilter(query.Filter), opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a busca: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]*domain.SalesRecord, 0, query.Limit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("erro ao decodificar vendas: %w", err)
	}

	return records, nil
}

func (r *mongoSalesRepository) Count(ctx context.Context, filter domain.Predicate) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// sem filtro o total vem dos metadados da coleção
	if filter.MatchesAll() {
		total, err := r.coll.EstimatedDocumentCount(ctx)
		if err != nil {
			return 0, fmt.Errorf("erro ao contar vendas: %w", err)
		}
		return total, nil
	}

	total, err := r.coll.CountDocuments(ctx, toMongoFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return total, nil
}

func (r *mongoSalesRepository) Distinct(ctx context.Context, field domain.Field) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, mongoField(field), bson.D{})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar valores distintos de %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}

	return values, nil
}

func (r *mongoSalesRepository) Summarize(ctx context.Context) (*domain.CorpusStatistics, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$" + string(domain.FieldFinalAmount)}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar agregação: %w", err)
	}

	// coleção vazia não produz grupo
	if len(result) == 0 {
		return &domain.CorpusStatistics{}, nil
	}

	return &domain.CorpusStatistics{
		TotalTransactions: result[0].Count,
		TotalRevenue:      result[0].Revenue,
	}, nil
}

func (r *mongoSalesRepository) Reset(ctx context.Context) error {
	if err := r.coll.Drop(ctx); err != nil {
		return fmt.Errorf("erro ao remover a coleção: %w", err)
	}

	models := make([]mongo.IndexModel, 0, len(mongoIndexedFields))
	for _, field := range mongoIndexedFields {
		models = append(models, mongo.IndexModel{
			Keys: bson.D{{Key: mongoField(field), Value: 1}},
		})
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("erro ao criar índices: %w", err)
	}

	return nil
}

func (r *mongoSalesRepository) InsertBatch(ctx context.Context, records []*domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for _, record := range records {
		docs = append(docs, record)
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("erro ao inserir lote de %d vendas: %w", len(records), err)
	}

	return nil
}

func (r *mongoSalesRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
