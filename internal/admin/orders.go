package admin

import (
	"context"

	"marocstar-shop/internal/backend"
)

// StatusAll selects every order regardless of status.
const StatusAll = "all"

// OrderStatuses is the status vocabulary the backend accepts.
var OrderStatuses = []string{"pending", "processing", "shipped", "delivered", "cancelled"}

type OrdersAPI interface {
	ListOrders(ctx context.Context) ([]backend.Order, error)
	ListOrdersByStatus(ctx context.Context, status string) ([]backend.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
}

// Orders is the admin order management screen.
type Orders struct {
	api OrdersAPI
}

func NewOrders(api OrdersAPI) *Orders {
	return &Orders{api: api}
}

// List fetches orders, optionally filtered by status. An empty filter or
// StatusAll means everything.
func (o *Orders) List(ctx context.Context, status string) ([]backend.Order, error) {
	if status == "" || status == StatusAll {
		return o.api.ListOrders(ctx)
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return o.api.ListOrdersByStatus(ctx, status)
}

// UpdateStatus transitions one order and returns the re-fetched
// collection.
func (o *Orders) UpdateStatus(ctx context.Context, id, status string) ([]backend.Order, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := o.api.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return o.api.ListOrders(ctx)
}

func ValidStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
