package backend

import (
	"context"
	"net/http"
)

type ordersResponse struct {
	Orders []Order `json:"orders"`
}

// ListOrders fetches every placed order.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var resp ordersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// ListOrdersByStatus fetches the orders currently in the given status.
func (c *Client) ListOrdersByStatus(ctx context.Context, status string) ([]Order, error) {
	var resp ordersResponse
	if err := c.doJSON(ctx, http.MethodGet, "/orders/status/"+status, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// UpdateOrderStatus transitions one order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.doJSON(ctx, http.MethodPut, "/orders/"+id+"/status", body, nil)
}
