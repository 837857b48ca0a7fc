package importing

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-sales-api/internal/domain"
	"github.com/vfg2006/retail-sales-api/pkg/utils"
)

// ColumnIndex associa cada campo à posição da coluna no CSV
type ColumnIndex map[domain.Field]int

// NewColumnIndex lê o cabeçalho do CSV, que usa os nomes de exibição ("Customer Name", "Final Amount"...).
// Colunas desconhecidas são ignoradas; a coluna Date é obrigatória.
func NewColumnIndex(header []string) (ColumnIndex, error) {
	index := make(ColumnIndex, len(header))

	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if field, ok := domain.FieldByDisplayName(name); ok {
			index[field] = i
		}
	}

	if _, ok := index[domain.FieldDate]; !ok {
		return nil, errors.New("cabeçalho sem a coluna obrigatória Date")
	}

	return index, nil
}

func (c ColumnIndex) text(row []string, field domain.Field) string {
	i, ok := c[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (c ColumnIndex) integer(row []string, field domain.Field) (int, error) {
	raw := c.text(row, field)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "coluna %s", field)
	}
	return n, nil
}

func (c ColumnIndex) amount(row []string, field domain.Field) (float64, error) {
	raw := c.text(row, field)
	if raw == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "coluna %s", field)
	}
	return d.Round(2).InexactFloat64(), nil
}

// Parse converte uma linha do CSV em SalesRecord. Linhas sem id recebem um id gerado.
func (c ColumnIndex) Parse(row []string) (*domain.SalesRecord, error) {
	date, err := utils.ParseCalendarDate(c.text(row, domain.FieldDate))
	if err != nil {
		return nil, errors.Wrap(err, "coluna date")
	}

	record := &domain.SalesRecord{
		TransactionID:   c.text(row, domain.FieldTransactionID),
		Date:            date,
		CustomerID:      c.text(row, domain.FieldCustomerID),
		CustomerName:    c.text(row, domain.FieldCustomerName),
		PhoneNumber:     c.text(row, domain.FieldPhoneNumber),
		Gender:          c.text(row, domain.FieldGender),
		CustomerRegion:  c.text(row, domain.FieldCustomerRegion),
		CustomerType:    c.text(row, domain.FieldCustomerType),
		ProductID:       c.text(row, domain.FieldProductID),
		ProductName:     c.text(row, domain.FieldProductName),
		Brand:           c.text(row, domain.FieldBrand),
		ProductCategory: c.text(row, domain.FieldProductCategory),
		Tags:            ParseTags(c.text(row, domain.FieldTags)),
		PaymentMethod:   c.text(row, domain.FieldPaymentMethod),
		OrderStatus:     c.text(row, domain.FieldOrderStatus),
		DeliveryType:    c.text(row, domain.FieldDeliveryType),
		StoreID:         c.text(row, domain.FieldStoreID),
		StoreLocation:   c.text(row, domain.FieldStoreLocation),
		SalespersonID:   c.text(row, domain.FieldSalespersonID),
		EmployeeName:    c.text(row, domain.FieldEmployeeName),
	}

	if record.Age, err = c.integer(row, domain.FieldAge); err != nil {
		return nil, err
	}
	if record.Quantity, err = c.integer(row, domain.FieldQuantity); err != nil {
		return nil, err
	}
	if record.PricePerUnit, err = c.amount(row, domain.FieldPricePerUnit); err != nil {
		return nil, err
	}
	if record.DiscountPercentage, err = c.amount(row, domain.FieldDiscountPercentage); err != nil {
		return nil, err
	}
	if record.TotalAmount, err = c.amount(row, domain.FieldTotalAmount); err != nil {
		return nil, err
	}
	if record.FinalAmount, err = c.amount(row, domain.FieldFinalAmount); err != nil {
		return nil, err
	}

	if record.TransactionID == "" {
		if record.TransactionID, err = utils.GenerateTransactionID(); err != nil {
			return nil, errors.Wrap(err, "erro ao gerar id da transação")
		}
	}

	return record, nil
}

// ParseTags separa a coluna Tags ("organic,skincare") em uma lista sem itens vazios
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
