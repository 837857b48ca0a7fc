package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage mantém (page-1)*pageSize dentro do OFFSET/skip aceito pelos bancos
	MaxPage         = math.MaxInt32
)

// QueryRequest é a forma validada dos parâmetros de listagem. Só é produzida pelo validador de parâmetros.
type QueryRequest struct {
	Page     int
	PageSize int
	Search   string // vazio = sem busca
	Sort     string // vazio = ordenação padrão
	Filters  FilterSet
}

// Offset retorna o deslocamento da janela de paginação
func (q QueryRequest) Offset() int64 {
	page := min(max(q.Page, 1), MaxPage)
	return int64(page-1) * int64(max(q.PageSize, 0))
}

// FilterSet contém as restrições opcionais por campo. Listas vazias e limites nil não restringem nada.
type FilterSet struct {
	CustomerRegion  []string
	Gender          []string
	ProductCategory []string
	PaymentMethod   []string
	OrderStatus     []string
	DeliveryType    []string
	Brand           []string
	Tags            []string

	AgeMin *int
	AgeMax *int

	DateFrom *time.Time
	DateTo   *time.Time

	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
}

// MembershipFilter é um filtro de pertinência a conjunto sobre um campo escalar
type MembershipFilter struct {
	Field  Field
	Values []string
}

// MembershipFilters lista os filtros de múltipla escolha sobre campos escalares, na ordem de compilação.
// Tags não entra aqui porque o campo é multivalorado.
func (f FilterSet) MembershipFilters() []MembershipFilter {
	return []MembershipFilter{
		{Field: FieldCustomerRegion, Values: f.CustomerRegion},
		{Field: FieldGender, Values: f.Gender},
		{Field: FieldProductCategory, Values: f.ProductCategory},
		{Field: FieldPaymentMethod, Values: f.PaymentMethod},
		{Field: FieldOrderStatus, Values: f.OrderStatus},
		{Field: FieldDeliveryType, Values: f.DeliveryType},
		{Field: FieldBrand, Values: f.Brand},
	}
}

// SortDirective é a ordenação por um único campo
type SortDirective struct {
	Token      string
	Field      Field
	Descending bool
}

// SalesQuery é a consulta declarativa enviada ao armazenamento
type SalesQuery struct {
	Filter Predicate
	Sort   SortDirective
	Offset int64
	Limit  int64
}

// SalesPage é uma página de registros mais o total de registros que atendem ao filtro
type SalesPage struct {
	Records      []*SalesRecord
	TotalRecords int64
}
