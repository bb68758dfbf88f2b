// Package backend is the typed client for the remote MarocStar REST API.
// The app owns no server-side state: everything here is a direct call to
// the deployed backend, which remains the authority of record.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"marocstar-shop/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Outbound throttle, sized for a frontend-heavy consumer.
const (
	limitFrontend = rate.Limit(20)
	burstFrontend = 40
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url %q: %w", baseURL, err)
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(limitFrontend, burstFrontend),
	}, nil
}

// do issues one request against the backend. The caller's context is the
// only cancellation mechanism; there is no retry.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, header http.Header) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}

	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	reqID := logger.RequestIDFrom(ctx)
	if reqID == "" {
		reqID = uuid.New().String()
	}
	req.Header.Set("X-Request-ID", reqID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromCtx(ctx).Error("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// doJSON issues a request with an optional JSON body and decodes a
// successful response into out (when out is non-nil). Non-2xx responses
// are mapped to *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	header := http.Header{}
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
		header.Set("Content-Type", "application/json")
	}

	resp, err := c.do(ctx, method, path, body, header)
	if err != nil {
		return err
	}
	return c.decode(ctx, resp, method, path, out)
}

func (c *Client) decode(ctx context.Context, resp *http.Response, method, path string, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apiErrorFrom(resp.StatusCode, raw)
		logger.FromCtx(ctx).Warn("backend returned non-success status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
