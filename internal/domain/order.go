package domain

// OrderSubmission is the payload POSTed to the remote order endpoint. It is
// derived from the cart and the validated checkout form at submission time and
// never stored.
type OrderSubmission struct {
	Name    string      `json:"name"`
	Phone   string      `json:"phone"`
	Address string      `json:"address"`
	Notes   string      `json:"notes"`
	Items   []OrderLine `json:"items"`
}

type OrderLine struct {
	ShopProductID int64 `json:"shop_product_id"`
	Qty           int   `json:"qty"`
}

// OrderConfirmation is the order endpoint's response as shown on the
// confirmation view.
type OrderConfirmation struct {
	Number          string             `json:"number"`
	CreatedAt       string             `json:"created_at"`
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	Notes           string             `json:"notes,omitempty"`
	TotalPrice      float64            `json:"total_price"`
	Items           []ConfirmationLine `json:"items"`
}

type ConfirmationLine struct {
	ProductName string  `json:"product_name"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}
