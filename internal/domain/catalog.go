package domain

// CatalogFields são os campos de múltipla escolha cujo catálogo de opções é exposto ao cliente
var CatalogFields = []Field{
	FieldCustomerRegion,
	FieldGender,
	FieldProductCategory,
	FieldTags,
	FieldPaymentMethod,
	FieldOrderStatus,
	FieldDeliveryType,
	FieldBrand,
}

// FilterCatalog contém os valores distintos disponíveis para cada filtro de múltipla escolha
type FilterCatalog struct {
	CustomerRegion  []string `json:"customerRegion"`
	Gender          []string `json:"gender"`
	ProductCategory []string `json:"productCategory"`
	Tags            []string `json:"tags"`
	PaymentMethod   []string `json:"paymentMethod"`
	OrderStatus     []string `json:"orderStatus"`
	DeliveryType    []string `json:"deliveryType"`
	Brand           []string `json:"brand"`
}

// Put atribui as opções de um campo. Campos fora de CatalogFields são ignorados.
func (c *FilterCatalog) Put(field Field, values []string) {
	switch field {
	case FieldCustomerRegion:
		c.CustomerRegion = values
	case FieldGender:
		c.Gender = values
	case FieldProductCategory:
		c.ProductCategory = values
	case FieldTags:
		c.Tags = values
	case FieldPaymentMethod:
		c.PaymentMethod = values
	case FieldOrderStatus:
		c.OrderStatus = values
	case FieldDeliveryType:
		c.DeliveryType = values
	case FieldBrand:
		c.Brand = values
	}
}
