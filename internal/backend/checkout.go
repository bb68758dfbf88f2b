package backend

import (
	"context"
	"net/http"
)

// CreateOrder submits a checkout draft. The call is not idempotent:
// submitting the same draft twice creates two orders server-side.
func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) error {
	return c.doJSON(ctx, http.MethodPost, "/create-order", draft, nil)
}
