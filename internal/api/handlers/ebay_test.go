package handlers_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sunraincyq/inventsync-app/internal/api/handlers"
	"github.com/sunraincyq/inventsync-app/internal/ebay"
	ebayMocks "github.com/sunraincyq/inventsync-app/internal/ebay/mocks"
	"github.com/sunraincyq/inventsync-app/internal/publish"
	"github.com/sunraincyq/inventsync-app/internal/store/mocks"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newEbayHandler builds an EbayHandler whose connector and publisher use the
// given store mock and a factory returning the given client mock.
func newEbayHandler(ms *mocks.MockStore, mc *ebayMocks.MockClient) *handlers.EbayHandler {
	factory := func(domain.Credentials) ebay.Client { return mc }
	log := quietLogger()
	return handlers.NewEbayHandler(ms,
		publish.NewConnector(ms, factory, log),
		publish.NewPublisher(ms, factory, log),
	)
}

func TestEbayHandler_GetConnection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "connected",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetConnection(mock.Anything, domain.MarketplaceEbay).
					Return(&domain.MarketplaceConnection{
						ID:          "conn-1",
						Marketplace: domain.MarketplaceEbay,
						Name:        "eBay Store",
						Status:      domain.ConnectionConnected,
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"eBay Store"`,
		},
		{
			name: "no connection yields null data",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetConnection(mock.Anything, domain.MarketplaceEbay).
					Return(nil, domain.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"data":null`,
		},
		{
			name: "store error",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetConnection(mock.Anything, domain.MarketplaceEbay).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `loading connection`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := newEbayHandler(ms, ebayMocks.NewMockClient(t))

			c, rec := newContext(echo.New(), http.MethodGet, "/api/ebay/connection", "")
			require.NoError(t, h.GetConnection(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestEbayHandler_Connect(t *testing.T) {
	t.Parallel()

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		h := newEbayHandler(mocks.NewMockStore(t), ebayMocks.NewMockClient(t))
		c, rec := newContext(echo.New(), http.MethodPost, "/api/ebay/connect",
			`{"sandbox":true}`)
		require.NoError(t, h.Connect(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "accessToken is required")
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		mc := ebayMocks.NewMockClient(t)
		mc.EXPECT().VerifyToken(mock.Anything).Return(errors.New("Invalid access token"))

		h := newEbayHandler(mocks.NewMockStore(t), mc)
		c, rec := newContext(echo.New(), http.MethodPost, "/api/ebay/connect",
			`{"accessToken":"bad","sandbox":true}`)
		require.NoError(t, h.Connect(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid access token")
	})

	t.Run("valid token stores connection", func(t *testing.T) {
		t.Parallel()

		mc := ebayMocks.NewMockClient(t)
		mc.EXPECT().VerifyToken(mock.Anything).Return(nil)
		mc.EXPECT().EnsureLocation(mock.Anything).Return(nil)

		ms := mocks.NewMockStore(t)
		ms.EXPECT().ReplaceConnection(mock.Anything, mock.Anything).Return(nil)

		h := newEbayHandler(ms, mc)
		c, rec := newContext(echo.New(), http.MethodPost, "/api/ebay/connect",
			`{"accessToken":"tok","sandbox":true}`)
		require.NoError(t, h.Connect(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"eBay connected"`)
		assert.Contains(t, rec.Body.String(), `"connected"`)
	})
}

func TestEbayHandler_Disconnect(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().DeleteConnection(mock.Anything, domain.MarketplaceEbay).Return(nil)

	h := newEbayHandler(ms, ebayMocks.NewMockClient(t))
	c, rec := newContext(echo.New(), http.MethodPost, "/api/ebay/disconnect", "")
	require.NoError(t, h.Disconnect(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "eBay disconnected")
}

func TestEbayHandler_Publish(t *testing.T) {
	t.Parallel()

	product := &domain.Product{
		ID: "p1", SKU: "WIDGET-01", Title: "Widget", Price: 19.99, Quantity: 1,
	}
	conn := &domain.MarketplaceConnection{
		ID:          "conn-1",
		Marketplace: domain.MarketplaceEbay,
		Status:      domain.ConnectionConnected,
	}

	t.Run("missing categoryId", func(t *testing.T) {
		t.Parallel()

		h := newEbayHandler(mocks.NewMockStore(t), ebayMocks.NewMockClient(t))
		c, rec := newContext(echo.New(), http.MethodPost, "/api/ebay/list/p1", `{}`)
		c.SetParamNames("productId")
		c.SetParamValues("p1")

		require.NoError(t, h.Publish(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "categoryId is required")
	})

	t.Run("no connection", func(t *testing.T) {
		t.Parallel()

		ms := mocks.NewMockStore(t)
		ms.EXPECT().GetProduct(mock.Anything, "p1").Return(product, nil)
		ms.EXPECT().GetConnection(mock.Anything, domain.MarketplaceEbay).
			Return(nil, domain.ErrNotFound)

		h := newEbayHandler(ms, ebayMocks.NewMockClient(t))
		c, rec := newContext(echo.New(), http.MethodPost, "/api/ebay/list/p1",
			`{"categoryId":"12345"}`)
		c.SetParamNames("productId")
		c.SetParamValues("p1")

		require.NoError(t, h.Publish(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "not connected")
	})

	t.Run("workflow success", func(t *testing.T) {
		t.Parallel()

		mc := ebayMocks.NewMockClient(t)
		mc.EXPECT().EnsureLocation(mock.Anything).Return(nil)
		mc.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything).Return(nil)
		mc.EXPECT().FetchPolicies(mock.Anything).Return(ebay.Policies{})
		mc.EXPECT().CreateOffer(mock.Anything, mock.Anything).Return("offer-42", nil)
		mc.EXPECT().PublishOffer(mock.Anything, "offer-42").Return("123456", nil)
		mc.EXPECT().ItemURL("123456").Return("https://www.ebay.com/itm/123456")

		ms := mocks.NewMockStore(t)
		ms.EXPECT().GetProduct(mock.Anything, "p1").Return(product, nil)
		ms.EXPECT().GetConnection(mock.Anything, domain.MarketplaceEbay).Return(conn, nil)
		ms.EXPECT().InsertListing(mock.Anything, mock.Anything).Return(nil)

		h := newEbayHandler(ms, mc)
		c, rec := newContext(echo.New(), http.MethodPost, "/api/ebay/list/p1",
			`{"categoryId":"12345"}`)
		c.SetParamNames("productId")
		c.SetParamValues("p1")

		require.NoError(t, h.Publish(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), "123456")
	})

	t.Run("workflow failure maps to client error", func(t *testing.T) {
		t.Parallel()

		mc := ebayMocks.NewMockClient(t)
		mc.EXPECT().EnsureLocation(mock.Anything).Return(nil)
		mc.EXPECT().UpsertInventoryItem(mock.Anything, mock.Anything).
			Return(errors.New("Invalid SKU format"))

		ms := mocks.NewMockStore(t)
		ms.EXPECT().GetProduct(mock.Anything, "p1").Return(product, nil)
		ms.EXPECT().GetConnection(mock.Anything, domain.MarketplaceEbay).Return(conn, nil)
		ms.EXPECT().InsertListing(mock.Anything, mock.Anything).Return(nil)

		h := newEbayHandler(ms, mc)
		c, rec := newContext(echo.New(), http.MethodPost, "/api/ebay/list/p1",
			`{"categoryId":"12345"}`)
		c.SetParamNames("productId")
		c.SetParamValues("p1")

		require.NoError(t, h.Publish(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid SKU format")
	})
}

func TestEbayHandler_Listings(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		ListListings(mock.Anything, domain.MarketplaceEbay).
		Return([]domain.Listing{
			{ID: "l1", ProductSKU: "WIDGET-01", Status: domain.ListingActive},
		}, nil).
		Once()

	h := newEbayHandler(ms, ebayMocks.NewMockClient(t))
	c, rec := newContext(echo.New(), http.MethodGet, "/api/ebay/listings", "")
	require.NoError(t, h.Listings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"WIDGET-01"`)
}

func TestEbayHandler_ProductListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "latest listing",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					LatestListingForProduct(mock.Anything, "p1", domain.MarketplaceEbay).
					Return(&domain.Listing{ID: "l2", Status: domain.ListingActive}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"l2"`,
		},
		{
			name: "never published yields null data",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					LatestListingForProduct(mock.Anything, "p1", domain.MarketplaceEbay).
					Return(nil, domain.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"data":null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := newEbayHandler(ms, ebayMocks.NewMockClient(t))

			c, rec := newContext(echo.New(), http.MethodGet, "/api/ebay/listings/p1", "")
			c.SetParamNames("productId")
			c.SetParamValues("p1")

			require.NoError(t, h.ProductListing(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
