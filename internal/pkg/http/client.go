package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"
)

// DefaultTimeout for HTTP requests. The upstream Directory Service has no
// timeout of its own, so every call carries an explicit client deadline.
const DefaultTimeout = 10 * time.Second

// Client is a generic HTTP client for communicating with external services
type Client struct {
	BaseURL    string
	HTTPClient *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: serviceURL,
		HTTPClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request against the base URL. rawQuery is appended as
// the query string when non-empty.
func (c *Client) Get(ctx context.Context, rawQuery string) (*nethttp.Response, error) {
	url := c.BaseURL
	if rawQuery != "" {
		url = url + "?" + rawQuery
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return c.HTTPClient.Do(req)
}

// Post performs a POST request with a JSON body against the base URL.
func (c *Client) Post(ctx context.Context, body interface{}) (*nethttp.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, c.BaseURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.HTTPClient.Do(req)
}

// DecodeJSON reads and decodes a JSON response body, treating HTTP error
// statuses as failures.
func DecodeJSON(resp *nethttp.Response, result interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
