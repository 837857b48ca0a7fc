package listing

import (
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// CompileFilter monta a conjunção de condições a partir da busca e dos filtros.
// Filtros ausentes não geram condição; sem condições o predicado aceita todos os registros.
// Intervalos invertidos (min > max) seguem sem validação e simplesmente não retornam nada.
func CompileFilter(search string, filters domain.FilterSet) domain.Predicate {
	conditions := make([]domain.Predicate, 0)

	if search != "" {
		conditions = append(conditions, domain.Or(
			domain.Contains(domain.FieldCustomerName, search),
			domain.Contains(domain.FieldPhoneNumber, search),
		))
	}

	for _, membership := range filters.MembershipFilters() {
		if len(membership.Values) > 0 {
			conditions = append(conditions, domain.In(membership.Field, membership.Values))
		}
	}

	if len(filters.Tags) > 0 {
		conditions = append(conditions, domain.Intersects(domain.FieldTags, filters.Tags))
	}

	if filters.AgeMin != nil || filters.AgeMax != nil {
		var lower, upper any
		if filters.AgeMin != nil {
			lower = *filters.AgeMin
		}
		if filters.AgeMax != nil {
			upper = *filters.AgeMax
		}
		conditions = append(conditions, domain.Range(domain.FieldAge, lower, upper))
	}

	if filters.DateFrom != nil || filters.DateTo != nil {
		var from, to any
		if filters.DateFrom != nil {
			from = utils.StartOfDay(*filters.DateFrom)
		}
		if filters.DateTo != nil {
			// fim do dia para incluir todas as transações da data final
			to = utils.EndOfDay(*filters.DateTo)
		}
		conditions = append(conditions, domain.Range(domain.FieldDate, from, to))
	}

	if filters.PriceMin != nil || filters.PriceMax != nil {
		var lower, upper any
		if filters.PriceMin != nil {
			lower = filters.PriceMin.InexactFloat64()
		}
		if filters.PriceMax != nil {
			upper = filters.PriceMax.InexactFloat64()
		}
		conditions = append(conditions, domain.Range(domain.FieldFinalAmount, lower, upper))
	}

	return domain.And(conditions...)
}
