package shopify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		BaseURL:     server.URL,
		AccessToken: "shpat_test",
		APIVersion:  "2024-10",
	})
	require.NoError(t, err)
	return client
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{name: "valid", config: &Config{Shop: "s.myshopify.com", AccessToken: "t"}},
		{name: "base url instead of shop", config: &Config{BaseURL: "http://localhost", AccessToken: "t"}},
		{name: "missing shop", config: &Config{AccessToken: "t"}, wantErr: ErrConfigMissingShop},
		{name: "missing token", config: &Config{Shop: "s.myshopify.com"}, wantErr: ErrConfigMissingAccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultAPIVersion, tt.config.APIVersion)
			assert.Equal(t, DefaultTimeoutSeconds, tt.config.TimeoutSeconds)
		})
	}
}

func TestConfig_AdminURL(t *testing.T) {
	c := &Config{Shop: "example.myshopify.com", APIVersion: "2024-10"}
	assert.Equal(t, "https://example.myshopify.com/admin/api/2024-10/orders.json", c.adminURL("/orders.json"))
}

func TestClient_CreateProduct(t *testing.T) {
	var got map[string]json.RawMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/api/2024-10/products.json", r.URL.Path)
		assert.Equal(t, "shpat_test", r.Header.Get("X-Shopify-Access-Token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(raw, &got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"product":{"id":632910392,"title":"Vase","status":"draft","tags":"vendor:7"}}`))
	})

	p, err := client.CreateProduct(context.Background(), &Product{
		Title:    "Vase",
		Status:   "draft",
		Tags:     "vendor:7",
		Variants: []Variant{{Price: "120.00"}},
		Images:   []Image{},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(632910392), p.ID)

	var product map[string]any
	require.NoError(t, json.Unmarshal(got["product"], &product))
	variants := product["variants"].([]any)
	require.Len(t, variants, 1)
	variant := variants[0].(map[string]any)
	assert.Equal(t, "120.00", variant["price"])
	value, present := variant["inventory_management"]
	assert.True(t, present, "inventory_management must be sent explicitly")
	assert.Nil(t, value)
	assert.Equal(t, []any{}, product["images"])
}

func TestClient_ListOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/api/2024-10/orders.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "any", q.Get("status"))
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "id,order_number,name", q.Get("fields"))

		w.Write([]byte(`{"orders":[
			{"id":1,"order_number":1001,"name":"#1001","created_at":"2024-01-01T10:00:00-05:00",
			 "line_items":[{"title":"Vase","quantity":2,"product_id":42},{"title":"Tip","quantity":1,"product_id":null}]}
		]}`))
	})

	orders, err := client.ListOrders(context.Background(), ListOrdersParams{
		Status: "any",
		Limit:  100,
		Fields: []string{"id", "order_number", "name"},
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1001), orders[0].OrderNumber)
	require.Len(t, orders[0].LineItems, 2)
	require.NotNil(t, orders[0].LineItems[0].ProductID)
	assert.Equal(t, int64(42), *orders[0].LineItems[0].ProductID)
	assert.Nil(t, orders[0].LineItems[1].ProductID)
}

func TestClient_ListProductsByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "3,1,2", q.Get("ids"))
		assert.Equal(t, "id,tags", q.Get("fields"))
		assert.Equal(t, "250", q.Get("limit"))
		w.Write([]byte(`{"products":[{"id":1,"tags":"vendor:7"},{"id":2,"tags":""}]}`))
	})

	products, err := client.ListProductsByID(context.Background(), []int64{3, 1, 2}, []string{"id", "tags"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "vendor:7", products[0].Tags)
}

func TestClient_ListProductsByID_Limits(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	products, err := client.ListProductsByID(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, products)

	_, err = client.ListProductsByID(context.Background(), make([]int64, MaxIDsPerLookup+1), nil)
	assert.Error(t, err)
	assert.Zero(t, calls)
}

func TestClient_ErrorClassification(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":"[API] Invalid API key or access token"}`))
		})
		_, err := client.ListOrders(context.Background(), ListOrdersParams{})
		assert.ErrorIs(t, err, ErrRequestFailed)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		})
		_, err := client.ListOrders(context.Background(), ListOrdersParams{})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing product in create response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})
		_, err := client.CreateProduct(context.Background(), &Product{Title: "x"})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("timeout", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})
		client.httpClient.Timeout = 20 * time.Millisecond
		_, err := client.ListOrders(context.Background(), ListOrdersParams{})
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
