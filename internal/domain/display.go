package domain

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DisplayName associa um campo interno ao nome exibido no contrato externo
type DisplayName struct {
	Field Field
	Name  string
}

// DisplayNames é a tabela única de renomeação entre o armazenamento e o contrato da API.
// A ordem da tabela é a ordem das chaves na resposta e das colunas do CSV de importação.
var DisplayNames = []DisplayName{
	{Field: FieldTransactionID, Name: "Transaction ID"},
	{Field: FieldDate, Name: "Date"},
	{Field: FieldCustomerID, Name: "Customer ID"},
	{Field: FieldCustomerName, Name: "Customer Name"},
	{Field: FieldPhoneNumber, Name: "Phone Number"},
	{Field: FieldGender, Name: "Gender"},
	{Field: FieldAge, Name: "Age"},
	{Field: FieldCustomerRegion, Name: "Customer Region"},
	{Field: FieldCustomerType, Name: "Customer Type"},
	{Field: FieldProductID, Name: "Product ID"},
	{Field: FieldProductName, Name: "Product Name"},
	{Field: FieldBrand, Name: "Brand"},
	{Field: FieldProductCategory, Name: "Product Category"},
	{Field: FieldTags, Name: "Tags"},
	{Field: FieldQuantity, Name: "Quantity"},
	{Field: FieldPricePerUnit, Name: "Price per Unit"},
	{Field: FieldDiscountPercentage, Name: "Discount Percentage"},
	{Field: FieldTotalAmount, Name: "Total Amount"},
	{Field: FieldFinalAmount, Name: "Final Amount"},
	{Field: FieldPaymentMethod, Name: "Payment Method"},
	{Field: FieldOrderStatus, Name: "Order Status"},
	{Field: FieldDeliveryType, Name: "Delivery Type"},
	{Field: FieldStoreID, Name: "Store ID"},
	{Field: FieldStoreLocation, Name: "Store Location"},
	{Field: FieldSalespersonID, Name: "Salesperson ID"},
	{Field: FieldEmployeeName, Name: "Employee Name"},
}

// DisplayNameOf retorna o nome externo de um campo
func DisplayNameOf(field Field) (string, bool) {
	for _, dn := range DisplayNames {
		if dn.Field == field {
			return dn.Name, true
		}
	}
	return "", false
}

// FieldByDisplayName faz o caminho inverso de DisplayNameOf
func FieldByDisplayName(name string) (Field, bool) {
	for _, dn := range DisplayNames {
		if dn.Name == name {
			return dn.Field, true
		}
	}
	return "", false
}

// DisplayValue é um par nome externo / valor
type DisplayValue struct {
	Name  string
	Value any
}

// DisplayRecord é um registro já renomeado para o contrato externo.
// Serializa como objeto JSON preservando a ordem de DisplayNames.
type DisplayRecord []DisplayValue

// Get retorna o valor associado a um nome externo
func (d DisplayRecord) Get(name string) (any, bool) {
	for _, v := range d {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

func (d DisplayRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, v := range d {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(v.Name)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar chave %q: %w", v.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(v.Value)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar valor de %q: %w", v.Name, err)
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
