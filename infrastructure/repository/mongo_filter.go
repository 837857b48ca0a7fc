package repository

import (
	"regexp"

	"github.com/vfg2006/retail-sales-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mongoField retorna o nome do campo no documento. O id da transação é a chave primária _id.
func mongoField(field domain.Field) string {
	if field == domain.FieldTransactionID {
		return "_id"
	}
	return string(field)
}

// toMongoFilter traduz a árvore de predicados para um filtro bson
func toMongoFilter(p domain.Predicate) bson.M {
	switch p.Kind {
	case domain.PredicateAnd, domain.PredicateOr:
		if len(p.Children) == 0 {
			return bson.M{}
		}

		children := make(bson.A, 0, len(p.Children))
		for _, child := range p.Children {
			children = append(children, toMongoFilter(child))
		}

		if p.Kind == domain.PredicateOr {
			return bson.M{"$or": children}
		}
		return bson.M{"$and": children}

	case domain.PredicateContains:
		return bson.M{mongoField(p.Field): primitive.Regex{
			Pattern: regexp.QuoteMeta(p.Term),
			Options: "i",
		}}

	// em campos array o $in já casa elemento a elemento, então Intersects usa o mesmo operador
	case domain.PredicateIn, domain.PredicateIntersects:
		return bson.M{mongoField(p.Field): bson.M{"$in": p.Values}}

	case domain.PredicateRange:
		bounds := bson.M{}
		if p.Min != nil {
			bounds["$gte"] = p.Min
		}
		if p.Max != nil {
			bounds["$lte"] = p.Max
		}
		if len(bounds) == 0 {
			return bson.M{}
		}
		return bson.M{mongoField(p.Field): bounds}
	}

	return bson.M{}
}

// toMongoSort ordena pelo campo pedido e desempata pelo _id ascendente, para que páginas
// consecutivas não repitam nem pulem registros empatados. A ordem entre empates não faz parte do contrato da API.
func toMongoSort(sort domain.SortDirective) bson.D {
	direction := 1
	if sort.Descending {
		direction = -1
	}

	field := mongoField(sort.Field)
	if field == "_id" {
		return bson.D{{Key: field, Value: direction}}
	}

	return bson.D{
		{Key: field, Value: direction},
		{Key: "_id", Value: 1},
	}
}
