package admin

import (
	"context"

	"marocstar-shop/internal/backend"
)

type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*backend.Stats, error)
}

// Dashboard is the read-only stats screen.
type Dashboard struct {
	api DashboardAPI
}

func NewDashboard(api DashboardAPI) *Dashboard {
	return &Dashboard{api: api}
}

func (d *Dashboard) Stats(ctx context.Context) (*backend.Stats, error) {
	return d.api.DashboardStats(ctx)
}
