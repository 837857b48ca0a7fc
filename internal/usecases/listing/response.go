package listing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// SalesListResponse é o corpo de resposta do endpoint de listagem
type SalesListResponse struct {
	Success    bool                   `json:"success"`
	Data       []domain.DisplayRecord `json:"data"`
	Pagination Pagination             `json:"pagination"`
	Filters    AppliedFilters         `json:"filters"`
	Sort       string                 `json:"sort"`
	Search     string                 `json:"search"`
	Summary    PageSummary            `json:"summary"`
}

type Pagination struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"pageSize"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
}

// PageSummary agrega apenas os registros da página atual
type PageSummary struct {
	TotalUnits    int     `json:"totalUnits"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalDiscount float64 `json:"totalDiscount"`
}

// AppliedFilters ecoa os filtros efetivamente aplicados, para o cliente reconciliar o estado da tela
type AppliedFilters struct {
	CustomerRegion  []string `json:"customerRegion,omitempty"`
	Gender          []string `json:"gender,omitempty"`
	ProductCategory []string `json:"productCategory,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	PaymentMethod   []string `json:"paymentMethod,omitempty"`
	OrderStatus     []string `json:"orderStatus,omitempty"`
	DeliveryType    []string `json:"deliveryType,omitempty"`
	Brand           []string `json:"brand,omitempty"`
	AgeMin          *int     `json:"ageMin,omitempty"`
	AgeMax          *int     `json:"ageMax,omitempty"`
	DateFrom        string   `json:"dateFrom,omitempty"`
	DateTo          string   `json:"dateTo,omitempty"`
	PriceMin        *float64 `json:"priceMin,omitempty"`
	PriceMax        *float64 `json:"priceMax,omitempty"`
}

// Assemble monta a resposta a partir da página retornada pelo banco
func Assemble(req domain.QueryRequest, sort domain.SortDirective, page *domain.SalesPage) *SalesListResponse {
	data := make([]domain.DisplayRecord, 0, len(page.Records))
	for _, record := range page.Records {
		data = append(data, ToDisplayRecord(record))
	}

	return &SalesListResponse{
		Success: true,
		Data:    data,
		Pagination: Pagination{
			Page:         req.Page,
			PageSize:     req.PageSize,
			TotalPages:   TotalPages(page.TotalRecords, req.PageSize),
			TotalRecords: page.TotalRecords,
		},
		Filters: appliedFilters(req.Filters),
		Sort:    sort.Token,
		Search:  req.Search,
		Summary: Summarize(page.Records),
	}
}

// TotalPages retorna ceil(total / pageSize). Sem registros o total de páginas é 0.
func TotalPages(totalRecords int64, pageSize int) int {
	if totalRecords <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((totalRecords + size - 1) / size)
}

// ToDisplayRecord renomeia os campos de um registro conforme domain.DisplayNames
func ToDisplayRecord(record *domain.SalesRecord) domain.DisplayRecord {
	out := make(domain.DisplayRecord, 0, len(domain.DisplayNames))

	for _, dn := range domain.DisplayNames {
		value := record.Value(dn.Field)

		switch v := value.(type) {
		case time.Time:
			value = v.UTC().Format(time.DateOnly)
		case []string:
			if v == nil {
				value = []string{}
			}
		}

		out = append(out, domain.DisplayValue{Name: dn.Name, Value: value})
	}

	return out
}

// Summarize soma unidades, valor bruto e desconto (total - final) da página atual
func Summarize(records []*domain.SalesRecord) PageSummary {
	units := 0
	amount := decimal.Zero
	discount := decimal.Zero

	for _, record := range records {
		total := decimal.NewFromFloat(record.TotalAmount)
		final := decimal.NewFromFloat(record.FinalAmount)

		units += record.Quantity
		amount = amount.Add(total)
		discount = discount.Add(total.Sub(final))
	}

	return PageSummary{
		TotalUnits:    units,
		TotalAmount:   amount.Round(2).InexactFloat64(),
		TotalDiscount: discount.Round(2).InexactFloat64(),
	}
}

func appliedFilters(f domain.FilterSet) AppliedFilters {
	applied := AppliedFilters{
		CustomerRegion:  f.CustomerRegion,
		Gender:          f.Gender,
		ProductCategory: f.ProductCategory,
		Tags:            f.Tags,
		PaymentMethod:   f.PaymentMethod,
		OrderStatus:     f.OrderStatus,
		DeliveryType:    f.DeliveryType,
		Brand:           f.Brand,
		AgeMin:          f.AgeMin,
		AgeMax:          f.AgeMax,
	}

	if f.DateFrom != nil {
		applied.DateFrom = f.DateFrom.Format(time.DateOnly)
	}
	if f.DateTo != nil {
		applied.DateTo = f.DateTo.Format(time.DateOnly)
	}
	if f.PriceMin != nil {
		v := f.PriceMin.InexactFloat64()
		applied.PriceMin = &v
	}
	if f.PriceMax != nil {
		v := f.PriceMax.InexactFloat64()
		applied.PriceMax = &v
	}

	return applied
}
