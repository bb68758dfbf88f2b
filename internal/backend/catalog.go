package backend

import (
	"context"
	"net/http"
)

// ListProducts fetches the full product collection.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.doJSON(ctx, http.MethodGet, "/product", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.doJSON(ctx, http.MethodGet, "/product/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
