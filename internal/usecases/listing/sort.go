package listing

import "github.com/vfg2006/retail-sales-api/internal/domain"

// Tokens de ordenação aceitos no parâmetro sort
const (
	SortDateNewest   = "date-newest"
	SortDateOldest   = "date-oldest"
	SortQuantityHigh = "quantity-high"
	SortQuantityLow  = "quantity-low"
	SortNameAsc      = "name-asc"
	SortNameDesc     = "name-desc"
)

var sortDirectives = map[string]domain.SortDirective{
	SortDateNewest:   {Token: SortDateNewest, Field: domain.FieldDate, Descending: true},
	SortDateOldest:   {Token: SortDateOldest, Field: domain.FieldDate},
	SortQuantityHigh: {Token: SortQuantityHigh, Field: domain.FieldQuantity, Descending: true},
	SortQuantityLow:  {Token: SortQuantityLow, Field: domain.FieldQuantity},
	SortNameAsc:      {Token: SortNameAsc, Field: domain.FieldCustomerName},
	SortNameDesc:     {Token: SortNameDesc, Field: domain.FieldCustomerName, Descending: true},
}

// ResolveSort converte o token em uma ordenação por campo único. Token ausente ou desconhecido cai em date-newest.
func ResolveSort(token string) domain.SortDirective {
	if directive, ok := sortDirectives[token]; ok {
		return directive
	}
	return sortDirectives[SortDateNewest]
}
