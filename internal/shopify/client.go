// Package shopify is a minimal Admin REST API client covering product
// creation, order listing and batched product lookup.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// maxResponseSize limits the response body size to prevent memory exhaustion
	maxResponseSize = 10 * 1024 * 1024

	// MaxOrdersPerPage is the platform's page size ceiling for orders.json.
	MaxOrdersPerPage = 250
	// MaxIDsPerLookup is the platform's ceiling on ids in one products.json call.
	MaxIDsPerLookup = 250

	accessTokenHeader = "X-Shopify-Access-Token"
)

var (
	// ErrUnavailable wraps transport failures, timeouts included.
	ErrUnavailable = errors.New("shopify: platform unavailable")
	// ErrRequestFailed wraps non-2xx responses.
	ErrRequestFailed = errors.New("shopify: request failed")
	// ErrMalformedResponse wraps undecodable response bodies.
	ErrMalformedResponse = errors.New("shopify: malformed response")
)

// Client talks to one shop's Admin API.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient validates config and returns a ready client.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// CreateProduct creates p and returns the platform's copy, id included.
func (c *Client) CreateProduct(ctx context.Context, p *Product) (*Product, error) {
	var out productEnvelope
	if err := c.do(ctx, http.MethodPost, "/products.json", nil, productEnvelope{Product: p}, &out); err != nil {
		return nil, err
	}
	if out.Product == nil {
		return nil, fmt.Errorf("%w: no product in create response", ErrMalformedResponse)
	}
	return out.Product, nil
}

// ListOrdersParams selects which orders ListOrders returns.
type ListOrdersParams struct {
	Status string
	Limit  int
	Fields []string
}

// ListOrders returns one page of orders, most recent first.
func (c *Client) ListOrders(ctx context.Context, params ListOrdersParams) ([]Order, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(min(params.Limit, MaxOrdersPerPage)))
	}
	if len(params.Fields) > 0 {
		q.Set("fields", strings.Join(params.Fields, ","))
	}

	var out ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders.json", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// ListProductsByID fetches the given products in one call. Callers must keep
// ids within MaxIDsPerLookup.
func (c *Client) ListProductsByID(ctx context.Context, ids []int64, fields []string) ([]Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxIDsPerLookup {
		return nil, fmt.Errorf("shopify: %d ids exceeds lookup limit of %d", len(ids), MaxIDsPerLookup)
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	q := url.Values{}
	q.Set("ids", strings.Join(parts, ","))
	q.Set("limit", strconv.Itoa(MaxIDsPerLookup))
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}

	var out productsEnvelope
	if err := c.do(ctx, http.MethodGet, "/products.json", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.config.adminURL(path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("shopify: failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("shopify: failed to create request: %w", err)
	}
	req.Header.Set(accessTokenHeader, c.config.AccessToken)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrUnavailable, path, err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: %s %s: HTTP %d: %s", ErrRequestFailed, method, path, resp.StatusCode, truncate(respBody, 512))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, path, err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
