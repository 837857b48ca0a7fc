package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-sales-api/internal/domain"
)

var fullHeader = []string{
	"Transaction ID", "Date", "Customer ID", "Customer Name", "Phone Number", "Gender", "Age",
	"Customer Region", "Customer Type", "Product ID", "Product Name", "Brand", "Product Category",
	"Quantity", "Price per Unit", "Discount Percentage", "Total Amount", "Final Amount", "Payment Method",
	"Order Status", "Delivery Type", "Store ID", "Store Location", "Salesperson ID", "Employee Name", "Tags",
}

func fullRow() []string {
	return []string{
		"1", "2023-03-15", "CUST-1", "Maria Silva", "9123456789", "Female", "34",
		"South", "Returning", "PROD-1", "Serum", "Lumiere", "Beauty",
		"2", "60", "10", "120.00", "108.004", "Credit Card",
		"Completed", "Standard", "ST-1", "Curitiba", "EMP-1", "Ana", "organic, skincare,",
	}
}

func TestNewColumnIndex(t *testing.T) {
	index, err := NewColumnIndex(append([]string{"\ufeffExtra"}, fullHeader...))
	require.NoError(t, err)

	assert.Equal(t, 1, index[domain.FieldTransactionID])
	assert.Equal(t, 26, index[domain.FieldTags])
	assert.Len(t, index, 26)

	_, err = NewColumnIndex([]string{"Customer Name"})
	assert.ErrorContains(t, err, "Date")
}

func TestColumnIndex_Parse(t *testing.T) {
	index, err := NewColumnIndex(fullHeader)
	require.NoError(t, err)

	record, err := index.Parse(fullRow())
	require.NoError(t, err)

	assert.Equal(t, "1", record.TransactionID)
	assert.Equal(t, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, "Maria Silva", record.CustomerName)
	assert.Equal(t, 34, record.Age)
	assert.Equal(t, 2, record.Quantity)
	assert.Equal(t, 120.0, record.TotalAmount)
	assert.Equal(t, 108.0, record.FinalAmount)
	assert.Equal(t, []string{"organic", "skincare"}, record.Tags)
	assert.Equal(t, "Ana", record.EmployeeName)
}

func TestColumnIndex_Parse_InvalidRows(t *testing.T) {
	index, err := NewColumnIndex(fullHeader)
	require.NoError(t, err)

	tests := []struct {
		name   string
		column int
		value  string
	}{
		{name: "data inválida", column: 1, value: "15/03/2023"},
		{name: "idade não numérica", column: 6, value: "trinta"},
		{name: "quantidade decimal", column: 13, value: "1.5"},
		{name: "valor final inválido", column: 17, value: "R$ 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := fullRow()
			row[tt.column] = tt.value

			record, err := index.Parse(row)

			assert.Nil(t, record)
			assert.Error(t, err)
		})
	}
}

func TestColumnIndex_Parse_GeneratesMissingID(t *testing.T) {
	index, err := NewColumnIndex(fullHeader)
	require.NoError(t, err)

	row := fullRow()
	row[0] = ""

	record, err := index.Parse(row)
	require.NoError(t, err)
	assert.Len(t, record.TransactionID, 12)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseTags(" a ,, b "))
	assert.Equal(t, []string{}, ParseTags(""))
}
