package shopapi

import (
	"context"
	"net/url"
	"strconv"

	"mamahiam-storefront/internal/domain"
)

// ProductQuery narrows a product listing. Zero values are omitted from the
// request.
type ProductQuery struct {
	Page          int
	PerPage       int
	Search        string
	Category      string
	Featured      bool
	NewCollection bool
}

type productPayload struct {
	ID            looseInt   `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Price         looseFloat `json:"price"`
	DiscountPrice looseFloat `json:"discount_price"`
	Images        []string   `json:"images"`
	Sizes         []string   `json:"sizes"`
	Featured      bool       `json:"featured"`
	NewCollection bool       `json:"new_collection"`
}

func (p productPayload) toDomain() domain.Product {
	return domain.Product{
		ID:            int64(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         float64(p.Price),
		DiscountPrice: float64(p.DiscountPrice),
		Images:        p.Images,
		Sizes:         p.Sizes,
		Featured:      p.Featured,
		NewCollection: p.NewCollection,
	}
}

func toDomainProducts(payloads []productPayload) []domain.Product {
	out := make([]domain.Product, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.toDomain())
	}
	return out
}

// Products lists catalog products. New-collection listings are cache-busted
// like the browser client's.
func (c *Client) Products(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Featured {
		query.Set("featured", "true")
	}
	if q.NewCollection {
		query.Set("new_collection", "true")
		query = c.cacheBust(query)
	}
	var envelope struct {
		Data []productPayload `json:"data"`
	}
	if err := c.getJSON(ctx, "/products", query, &envelope); err != nil {
		return nil, err
	}
	return toDomainProducts(envelope.Data), nil
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id int64) (*domain.Product, error) {
	var envelope struct {
		Data productPayload `json:"data"`
	}
	if err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), nil, &envelope); err != nil {
		return nil, err
	}
	p := envelope.Data.toDomain()
	return &p, nil
}

// FeaturedProducts reads the dedicated featured-products endpoint.
func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var envelope struct {
		Data []productPayload `json:"data"`
	}
	if err := c.getJSON(ctx, "/featured-products", c.cacheBust(nil), &envelope); err != nil {
		return nil, err
	}
	return toDomainProducts(envelope.Data), nil
}

// OffersProducts reads discounted products.
func (c *Client) OffersProducts(ctx context.Context) ([]domain.Product, error) {
	var envelope struct {
		Data []productPayload `json:"data"`
	}
	if err := c.getJSON(ctx, "/offers-products", nil, &envelope); err != nil {
		return nil, err
	}
	return toDomainProducts(envelope.Data), nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var envelope struct {
		Data []domain.Category `json:"data"`
	}
	if err := c.getJSON(ctx, "/categories", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Branches lists shop branches. The upstream path keeps the backend's
// spelling.
func (c *Client) Branches(ctx context.Context) ([]domain.Branch, error) {
	var envelope struct {
		Data []domain.Branch `json:"data"`
	}
	if err := c.getJSON(ctx, "/branchs", c.cacheBust(nil), &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *Client) Sliders(ctx context.Context) ([]domain.Slider, error) {
	var envelope struct {
		Data []domain.Slider `json:"data"`
	}
	if err := c.getJSON(ctx, "/sliders", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *Client) Settings(ctx context.Context) (domain.Settings, error) {
	var envelope struct {
		Data domain.Settings `json:"data"`
	}
	if err := c.getJSON(ctx, "/settings", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
