package backend

import (
	"context"
	"net/http"
)

// Login exchanges admin credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/admins/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the session token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	resp, err := c.do(ctx, http.MethodPost, "/admins/logout", nil, header)
	if err != nil {
		return err
	}
	return c.decode(ctx, resp, http.MethodPost, "/admins/logout", nil)
}
