package listing

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// Parâmetros aceitos pelo endpoint de listagem
const (
	ParamPage            = "page"
	ParamPageSize        = "pageSize"
	ParamSearch          = "search"
	ParamSort            = "sort"
	ParamCustomerRegion  = "customerRegion"
	ParamGender          = "gender"
	ParamProductCategory = "productCategory"
	ParamTags            = "tags"
	ParamPaymentMethod   = "paymentMethod"
	ParamOrderStatus     = "orderStatus"
	ParamDeliveryType    = "deliveryType"
	ParamBrand           = "brand"
	ParamAgeMin          = "ageMin"
	ParamAgeMax          = "ageMax"
	ParamDateFrom        = "dateFrom"
	ParamDateTo          = "dateTo"
	ParamPriceMin        = "priceMin"
	ParamPriceMax        = "priceMax"
)

// ParseQuery converte a query string em um QueryRequest tipado.
// Nunca falha: valores inválidos caem no padrão ou são descartados.
func ParseQuery(values url.Values) domain.QueryRequest {
	req := domain.QueryRequest{
		Page:     domain.DefaultPage,
		PageSize: domain.DefaultPageSize,
	}

	if page, ok := parseInt(values.Get(ParamPage)); ok && page > 0 {
		// páginas absurdas continuam além da última, sem estourar o offset
		req.Page = min(page, domain.MaxPage)
	}

	if size, ok := parseInt(values.Get(ParamPageSize)); ok && size > 0 && size <= domain.MaxPageSize {
		req.PageSize = size
	}

	req.Search = strings.TrimSpace(sanitize(values.Get(ParamSearch)))
	req.Sort = values.Get(ParamSort)

	f := &req.Filters
	f.CustomerRegion = parseList(values[ParamCustomerRegion])
	f.Gender = parseList(values[ParamGender])
	f.ProductCategory = parseList(values[ParamProductCategory])
	f.Tags = parseList(values[ParamTags])
	f.PaymentMethod = parseList(values[ParamPaymentMethod])
	f.OrderStatus = parseList(values[ParamOrderStatus])
	f.DeliveryType = parseList(values[ParamDeliveryType])
	f.Brand = parseList(values[ParamBrand])

	f.AgeMin = parseNonNegativeInt(values.Get(ParamAgeMin))
	f.AgeMax = parseNonNegativeInt(values.Get(ParamAgeMax))

	f.DateFrom = parseDate(values.Get(ParamDateFrom))
	f.DateTo = parseDate(values.Get(ParamDateTo))

	f.PriceMin = parseNonNegativeDecimal(values.Get(ParamPriceMin))
	f.PriceMax = parseNonNegativeDecimal(values.Get(ParamPriceMax))

	return req
}

func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseList aceita tanto "a,b" quanto parâmetros repetidos (?k=a&k=b). Duplicatas são mantidas.
func parseList(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	var out []string
	for _, token := range strings.Split(sanitize(strings.Join(raw, ",")), ",") {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// sanitize remove bytes que não são UTF-8 válido, rejeitados pelos bancos
func sanitize(raw string) string {
	return strings.ToValidUTF8(raw, "")
}

func parseNonNegativeInt(raw string) *int {
	n, ok := parseInt(raw)
	if !ok || n < 0 {
		return nil
	}
	return &n
}

func parseNonNegativeDecimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

func parseDate(raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	date, err := utils.ParseCalendarDate(raw)
	if err != nil {
		return nil
	}
	return &date
}
