package repository

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

const salesTable = "sales"

// salesColumns segue a ordem de scanSalesRecord e de insertValues
var salesColumns = []string{
	"transaction_id",
	"date",
	"customer_id",
	"customer_name",
	"phone_number",
	"gender",
	"age",
	"customer_region",
	"customer_type",
	"product_id",
	"product_name",
	"brand",
	"product_category",
	"tags",
	"quantity",
	"price_per_unit",
	"discount_percentage",
	"total_amount",
	"final_amount",
	"payment_method",
	"order_status",
	"delivery_type",
	"store_id",
	"store_location",
	"salesperson_id",
	"employee_name",
}

var postgresColumnByField = map[domain.Field]string{
	domain.FieldTransactionID:      "transaction_id",
	domain.FieldDate:               "date",
	domain.FieldCustomerID:         "customer_id",
	domain.FieldCustomerName:       "customer_name",
	domain.FieldPhoneNumber:        "phone_number",
	domain.FieldGender:             "gender",
	domain.FieldAge:                "age",
	domain.FieldCustomerRegion:     "customer_region",
	domain.FieldCustomerType:       "customer_type",
	domain.FieldProductID:          "product_id",
	domain.FieldProductName:        "product_name",
	domain.FieldBrand:              "brand",
	domain.FieldProductCategory:    "product_category",
	domain.FieldTags:               "tags",
	domain.FieldQuantity:           "quantity",
	domain.FieldPricePerUnit:       "price_per_unit",
	domain.FieldDiscountPercentage: "discount_percentage",
	domain.FieldTotalAmount:        "total_amount",
	domain.FieldFinalAmount:        "final_amount",
	domain.FieldPaymentMethod:      "payment_method",
	domain.FieldOrderStatus:        "order_status",
	domain.FieldDeliveryType:       "delivery_type",
	domain.FieldStoreID:            "store_id",
	domain.FieldStoreLocation:      "store_location",
	domain.FieldSalespersonID:      "salesperson_id",
	domain.FieldEmployeeName:       "employee_name",
}

func postgresColumn(field domain.Field) string {
	if column, ok := postgresColumnByField[field]; ok {
		return column
	}
	return string(field)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// toPostgresCondition traduz a árvore de predicados para um Sqlizer do squirrel
func toPostgresCondition(p domain.Predicate) squirrel.Sqlizer {
	switch p.Kind {
	case domain.PredicateAnd:
		conditions := make(squirrel.And, 0, len(p.Children))
		for _, child := range p.Children {
			conditions = append(conditions, toPostgresCondition(child))
		}
		return conditions

	case domain.PredicateOr:
		conditions := make(squirrel.Or, 0, len(p.Children))
		for _, child := range p.Children {
			conditions = append(conditions, toPostgresCondition(child))
		}
		return conditions

	case domain.PredicateContains:
		return squirrel.ILike{postgresColumn(p.Field): "%" + likeEscaper.Replace(p.Term) + "%"}

	case domain.PredicateIn:
		return squirrel.Eq{postgresColumn(p.Field): p.Values}

	case domain.PredicateIntersects:
		return squirrel.Expr(postgresColumn(p.Field)+" && ?", pq.Array(p.Values))

	case domain.PredicateRange:
		column := postgresColumn(p.Field)
		bounds := squirrel.And{}
		if p.Min != nil {
			bounds = append(bounds, squirrel.GtOrEq{column: p.Min})
		}
		if p.Max != nil {
			bounds = append(bounds, squirrel.LtOrEq{column: p.Max})
		}
		return bounds
	}

	return squirrel.And{}
}

// toPostgresOrder ordena pelo campo pedido e desempata por transaction_id ascendente.
// A ordem entre empates não faz parte do contrato da API.
func toPostgresOrder(sort domain.SortDirective) []string {
	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}

	column := postgresColumn(sort.Field)
	if column == "transaction_id" {
		return []string{column + " " + direction}
	}

	return []string{column + " " + direction, "transaction_id ASC"}
}

func buildFindQuery(query domain.SalesQuery) (string, []interface{}, error) {
	builder := squirrel.
		Select(salesColumns...).
		From(salesTable).
		OrderBy(toPostgresOrder(query.Sort)...).
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset)).
		PlaceholderFormat(squirrel.Dollar)

	if !query.Filter.MatchesAll() {
		builder = builder.Where(toPostgresCondition(query.Filter))
	}

	return builder.ToSql()
}

func buildCountQuery(filter domain.Predicate) (string, []interface{}, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar)

	if !filter.MatchesAll() {
		builder = builder.Where(toPostgresCondition(filter))
	}

	return builder.ToSql()
}

// buildDistinctQuery achata o array de tags com unnest; os demais campos são escalares
func buildDistinctQuery(field domain.Field) (string, []interface{}, error) {
	if field == domain.FieldTags {
		return squirrel.
			Select("DISTINCT tag").
			From(salesTable + ", unnest(tags) AS tag").
			Where("tag IS NOT NULL").
			OrderBy("tag").
			ToSql()
	}

	column := postgresColumn(field)
	return squirrel.
		Select("DISTINCT " + column).
		From(salesTable).
		Where(column + " IS NOT NULL").
		OrderBy(column).
		ToSql()
}
