package catalog

import (
	"context"

	"marocstar-shop/internal/backend"
	"marocstar-shop/internal/cart"
)

// API is the slice of the backend the catalog browser needs.
type API interface {
	ListProducts(ctx context.Context) ([]backend.Product, error)
	GetProduct(ctx context.Context, id string) (*backend.Product, error)
}

// Service is the read-only catalog browser. Its only write path goes to
// the local cart store, never to the backend.
type Service struct {
	api  API
	cart *cart.Store
}

func NewService(api API, cartStore *cart.Store) *Service {
	return &Service{api: api, cart: cartStore}
}

func (s *Service) List(ctx context.Context) ([]backend.Product, error) {
	return s.api.ListProducts(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*backend.Product, error) {
	return s.api.GetProduct(ctx, id)
}

// AddToCart fetches the product so the cart line carries the backend's
// current name and price, then forwards to the cart store.
func (s *Service) AddToCart(ctx context.Context, productID string, amount int) error {
	product, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	return s.cart.AddOrIncrement(cart.Product{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		ImagePath: product.Image,
	}, amount)
}
