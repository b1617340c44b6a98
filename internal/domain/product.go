package domain

// Product is a catalog entry as consumed by the storefront. Numeric fields are
// already coerced at the API boundary; a product that reaches this type carries
// valid (possibly zero) prices.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discount_price,omitempty"`
	Images        []string `json:"images,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Featured      bool     `json:"featured,omitempty"`
	NewCollection bool     `json:"new_collection,omitempty"`
}

// Thumbnail returns the first image URL, or empty when the product has none.
func (p Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
