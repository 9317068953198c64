package client

import (
	"context"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// productRequest contains only the fields the API accepts for create/update.
type productRequest struct {
	SKU         string   `json:"sku"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
	Condition   string   `json:"condition,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// ListProducts returns all products.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, "/api/products/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a new product.
func (c *Client) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var created domain.Product
	if err := c.post(ctx, "/api/products", requestFrom(p), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces an existing product's fields.
func (c *Client) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var updated domain.Product
	if err := c.put(ctx, "/api/products/"+p.ID, requestFrom(p), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct deletes a product by ID.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.del(ctx, "/api/products/"+id)
}

func requestFrom(p *domain.Product) productRequest {
	return productRequest{
		SKU:         p.SKU,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Condition:   p.Condition,
		Brand:       p.Brand,
		Category:    p.Category,
		Images:      p.Images,
	}
}
