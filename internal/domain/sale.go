// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Field identifica um campo de SalesRecord pelo nome usado no armazenamento
type Field string

const (
	FieldTransactionID      Field = "transactionId"
	FieldDate               Field = "date"
	FieldCustomerID         Field = "customerId"
	FieldCustomerName       Field = "customerName"
	FieldPhoneNumber        Field = "phoneNumber"
	FieldGender             Field = "gender"
	FieldAge                Field = "age"
	FieldCustomerRegion     Field = "customerRegion"
	FieldCustomerType       Field = "customerType"
	FieldProductID          Field = "productId"
	FieldProductName        Field = "productName"
	FieldBrand              Field = "brand"
	FieldProductCategory    Field = "productCategory"
	FieldTags               Field = "tags"
	FieldQuantity           Field = "quantity"
	FieldPricePerUnit       Field = "pricePerUnit"
	FieldDiscountPercentage Field = "discountPercentage"
	FieldTotalAmount        Field = "totalAmount"
	FieldFinalAmount        Field = "finalAmount"
	FieldPaymentMethod      Field = "paymentMethod"
	FieldOrderStatus        Field = "orderStatus"
	FieldDeliveryType       Field = "deliveryType"
	FieldStoreID            Field = "storeId"
	FieldStoreLocation      Field = "storeLocation"
	FieldSalespersonID      Field = "salespersonId"
	FieldEmployeeName       Field = "employeeName"
)

// SalesRecord representa uma linha de transação de venda no varejo.
// Os registros são carregados em lote pelo script de importação e nunca são alterados pela API.
type SalesRecord struct {
	TransactionID      string    `bson:"_id" json:"transactionId"`
	Date               time.Time `bson:"date" json:"date"`
	CustomerID         string    `bson:"customerId" json:"customerId"`
	CustomerName       string    `bson:"customerName" json:"customerName"`
	PhoneNumber        string    `bson:"phoneNumber" json:"phoneNumber"`
	Gender             string    `bson:"gender" json:"gender"`
	Age                int       `bson:"age" json:"age"`
	CustomerRegion     string    `bson:"customerRegion" json:"customerRegion"`
	CustomerType       string    `bson:"customerType" json:"customerType"`
	ProductID          string    `bson:"productId" json:"productId"`
	ProductName        string    `bson:"productName" json:"productName"`
	Brand              string    `bson:"brand" json:"brand"`
	ProductCategory    string    `bson:"productCategory" json:"productCategory"`
	Tags               []string  `bson:"tags" json:"tags"`
	Quantity           int       `bson:"quantity" json:"quantity"`
	PricePerUnit       float64   `bson:"pricePerUnit" json:"pricePerUnit"`
	DiscountPercentage float64   `bson:"discountPercentage" json:"discountPercentage"`
	TotalAmount        float64   `bson:"totalAmount" json:"totalAmount"`
	FinalAmount        float64   `bson:"finalAmount" json:"finalAmount"`
	PaymentMethod      string    `bson:"paymentMethod" json:"paymentMethod"`
	OrderStatus        string    `bson:"orderStatus" json:"orderStatus"`
	DeliveryType       string    `bson:"deliveryType" json:"deliveryType"`
	StoreID            string    `bson:"storeId" json:"storeId"`
	StoreLocation      string    `bson:"storeLocation" json:"storeLocation"`
	SalespersonID      string    `bson:"salespersonId" json:"salespersonId"`
	EmployeeName       string    `bson:"employeeName" json:"employeeName"`
}

// Value retorna o valor do campo informado. Campos desconhecidos retornam nil.
func (r *SalesRecord) Value(field Field) any {
	switch field {
	case FieldTransactionID:
		return r.TransactionID
	case FieldDate:
		return r.Date
	case FieldCustomerID:
		return r.CustomerID
	case FieldCustomerName:
		return r.CustomerName
	case FieldPhoneNumber:
		return r.PhoneNumber
	case FieldGender:
		return r.Gender
	case FieldAge:
		return r.Age
	case FieldCustomerRegion:
		return r.CustomerRegion
	case FieldCustomerType:
		return r.CustomerType
	case FieldProductID:
		return r.ProductID
	case FieldProductName:
		return r.ProductName
	case FieldBrand:
		return r.Brand
	case FieldProductCategory:
		return r.ProductCategory
	case FieldTags:
		return r.Tags
	case FieldQuantity:
		return r.Quantity
	case FieldPricePerUnit:
		return r.PricePerUnit
	case FieldDiscountPercentage:
		return r.DiscountPercentage
	case FieldTotalAmount:
		return r.TotalAmount
	case FieldFinalAmount:
		return r.FinalAmount
	case FieldPaymentMethod:
		return r.PaymentMethod
	case FieldOrderStatus:
		return r.OrderStatus
	case FieldDeliveryType:
		return r.DeliveryType
	case FieldStoreID:
		return r.StoreID
	case FieldStoreLocation:
		return r.StoreLocation
	case FieldSalespersonID:
		return r.SalespersonID
	case FieldEmployeeName:
		return r.EmployeeName
	}
	return nil
}
