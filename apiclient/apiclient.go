// Package apiclient consumes the backend's REST API. Every resource gets the
// same five operations over JSON; non-2xx responses come back as errors
// carrying the method and path. Nothing here retries.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is where the backend listens when nothing is configured.
const DefaultBaseURL = "http://localhost:3000/api"

// Client talks to the backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the given base URL. An empty baseURL falls back
// to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: backend returned %s", method, path, resp.Status)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// List fetches the full collection at /<resource> into out.
func (c *Client) List(ctx context.Context, resource string, out any) error {
	return c.do(ctx, http.MethodGet, "/"+resource, nil, out)
}

// Get fetches /<resource>/<id> into out.
func (c *Client) Get(ctx context.Context, resource string, id int64, out any) error {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/%s/%d", resource, id), nil, out)
}

// Create posts a new record to /<resource> and decodes the created row.
func (c *Client) Create(ctx context.Context, resource string, in, out any) error {
	return c.do(ctx, http.MethodPost, "/"+resource, in, out)
}

// Update puts a record to /<resource>/<id>.
func (c *Client) Update(ctx context.Context, resource string, id int64, in, out any) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/%s/%d", resource, id), in, out)
}

// Delete removes /<resource>/<id>.
func (c *Client) Delete(ctx context.Context, resource string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/%s/%d", resource, id), nil, nil)
}
