package domain

// Sale representa uma venda de produtos no balcão
type Sale struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	Date          string     `json:"date"` // Formato yyyy-mm-dd
	Items         []SaleItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"`
}

type SaleItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// HasProduct verifica se a venda contém o produto informado
func (s *Sale) HasProduct(productID string) bool {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
