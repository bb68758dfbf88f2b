// Package admin holds the administration console services. Every screen
// is an independent fetch-render-mutate loop over one backend
// collection; mutations re-fetch the whole collection instead of
// patching local copies, so there is no cache to keep coherent.
package admin

import (
	"context"
	"strings"

	"marocstar-shop/internal/backend"
)

type ProductsAPI interface {
	ListProducts(ctx context.Context) ([]backend.Product, error)
	CreateProduct(ctx context.Context, form backend.ProductForm) error
	UpdateProduct(ctx context.Context, id string, form backend.ProductForm) error
	DeleteProduct(ctx context.Context, id string) error
}

// Products is the admin product CRUD screen.
type Products struct {
	api ProductsAPI
}

func NewProducts(api ProductsAPI) *Products {
	return &Products{api: api}
}

func (p *Products) List(ctx context.Context) ([]backend.Product, error) {
	return p.api.ListProducts(ctx)
}

// Save creates the product when id is empty, updates it otherwise, and
// returns the re-fetched collection. Validation failures never reach the
// network.
func (p *Products) Save(ctx context.Context, id string, form backend.ProductForm) ([]backend.Product, error) {
	if err := validateProductForm(form); err != nil {
		return nil, err
	}

	var err error
	if id == "" {
		err = p.api.CreateProduct(ctx, form)
	} else {
		err = p.api.UpdateProduct(ctx, id, form)
	}
	if err != nil {
		return nil, err
	}

	return p.api.ListProducts(ctx)
}

// Delete removes the product and returns the re-fetched collection.
func (p *Products) Delete(ctx context.Context, id string) ([]backend.Product, error) {
	if err := p.api.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}
	return p.api.ListProducts(ctx)
}

// Filter narrows a fetched collection by name or category, case
// insensitively. Purely local, used by the list view's search box.
func Filter(products []backend.Product, term string) []backend.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}

	matched := make([]backend.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func validateProductForm(form backend.ProductForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return ErrNameRequired
	}
	if form.Price < 0 {
		return ErrNegativePrice
	}
	if form.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
