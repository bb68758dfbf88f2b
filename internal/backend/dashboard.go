package backend

import (
	"context"
	"net/http"
)

// DashboardStats fetches the aggregate counters for the admin dashboard.
func (c *Client) DashboardStats(ctx context.Context) (*Stats, error) {
	var resp struct {
		Stats Stats `json:"stats"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
