package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

func envelopeJSON(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"error":"conflict: sku already exists"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateProduct(context.Background(), &domain.Product{
		SKU: "WIDGET-01", Title: "Widget", Price: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 409)")
	assert.Contains(t, err.Error(), "sku already exists")
}

func TestClient_ListProducts(t *testing.T) {
	t.Parallel()

	products := []domain.Product{
		{ID: "p1", SKU: "WIDGET-01", Title: "Widget"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(envelopeJSON(products))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "WIDGET-01", result[0].SKU)
}

func TestClient_CreateProduct(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p domain.Product
		err := json.NewDecoder(r.Body).Decode(&p)
		assert.NoError(t, err)
		p.ID = "p-created"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(envelopeJSON(p))
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.CreateProduct(context.Background(), &domain.Product{
		SKU:   "WIDGET-01",
		Title: "Widget",
		Price: 19.99,
	})
	require.NoError(t, err)
	assert.Equal(t, "p-created", result.ID)
	assert.Equal(t, "WIDGET-01", result.SKU)
}

func TestClient_GetConnection_Null(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ebay/connection", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	conn, err := c.GetConnection(context.Background())
	require.NoError(t, err)
	assert.Nil(t, conn)
}

func TestClient_Publish(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ebay/list/p1", r.URL.Path)

		var req publishRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "12345", req.CategoryID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(envelopeJSON(domain.Listing{
			ID:         "l1",
			ExternalID: "123456",
			Status:     domain.ListingActive,
		}))
	}))
	defer srv.Close()

	c := New(srv.URL)
	listing, err := c.Publish(context.Background(), "p1", "12345")
	require.NoError(t, err)
	assert.Equal(t, "123456", listing.ExternalID)
	assert.Equal(t, domain.ListingActive, listing.Status)
}

func TestClient_DeleteProduct(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":null,"message":"product deleted"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteProduct(context.Background(), "p1"))
}
