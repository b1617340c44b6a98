package domain

// CartItem is one line of the shopping cart: a product plus an aggregated
// quantity. Quantity is always >= 1; an update that would drop it to zero
// removes the line instead.
type CartItem struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Images   []string `json:"images,omitempty"`
	Sizes    []string `json:"sizes,omitempty"`
	Quantity int      `json:"quantity"`
}

// ItemFromProduct builds a cart line for a product with the given quantity.
func ItemFromProduct(p Product, quantity int) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Images:   p.Images,
		Sizes:    p.Sizes,
		Quantity: quantity,
	}
}
