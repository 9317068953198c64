package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sunraincyq/inventsync-app/internal/api/handlers"
	"github.com/sunraincyq/inventsync-app/internal/store/mocks"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

func newContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns products",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListProducts(mock.Anything).
					Return([]domain.Product{
						{ID: "p1", SKU: "WIDGET-01", Title: "Widget"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"WIDGET-01"`,
		},
		{
			name: "empty store returns empty array",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListProducts(mock.Anything).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"data":[]`,
		},
		{
			name: "store error",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListProducts(mock.Anything).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing products`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewProductHandler(ms)

			c, rec := newContext(echo.New(), http.MethodGet, "/api/products", "")
			require.NoError(t, h.List(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestProductHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetProduct(mock.Anything, "p1").
					Return(&domain.Product{ID: "p1", SKU: "WIDGET-01", Title: "Widget"}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name: "not found",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetProduct(mock.Anything, "p1").
					Return(nil, domain.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"success":false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewProductHandler(ms)

			c, rec := newContext(echo.New(), http.MethodGet, "/api/products/p1", "")
			c.SetParamNames("id")
			c.SetParamValues("p1")

			require.NoError(t, h.Get(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid product",
			body: `{"sku":"WIDGET-01","title":"Widget","price":19.99,"quantity":3}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					CreateProduct(mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"WIDGET-01"`,
		},
		{
			name:       "missing sku",
			body:       `{"title":"Widget","price":1}`,
			setupMock:  func(*mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `sku is required`,
		},
		{
			name:       "missing title",
			body:       `{"sku":"WIDGET-01","price":1}`,
			setupMock:  func(*mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `title is required`,
		},
		{
			name:       "missing price",
			body:       `{"sku":"NOPRICE-01","title":"No Price"}`,
			setupMock:  func(*mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `price is required`,
		},
		{
			name:       "negative price",
			body:       `{"sku":"WIDGET-01","title":"Widget","price":-5}`,
			setupMock:  func(*mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `price must be non-negative`,
		},
		{
			name: "explicit zero price is allowed",
			body: `{"sku":"FREEBIE-01","title":"Freebie","price":0}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					CreateProduct(mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"FREEBIE-01"`,
		},
		{
			name: "duplicate sku",
			body: `{"sku":"WIDGET-01","title":"Widget","price":1}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					CreateProduct(mock.Anything, mock.Anything).
					Return(domain.ErrConflict).
					Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `conflict`,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			setupMock:  func(*mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid request body`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewProductHandler(ms)

			c, rec := newContext(echo.New(), http.MethodPost, "/api/products", tt.body)
			require.NoError(t, h.Create(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestProductHandler_Create_NormalizesDefaults(t *testing.T) {
	t.Parallel()

	var created *domain.Product
	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		CreateProduct(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *domain.Product) {
			created = p
		}).
		Return(nil).
		Once()

	h := handlers.NewProductHandler(ms)
	c, rec := newContext(echo.New(), http.MethodPost, "/api/products",
		`{"sku":"BARE-01","title":"Bare","price":1}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, created)
	assert.Equal(t, domain.DefaultCondition, created.Condition)
	assert.Equal(t, []string{}, created.Images)
}

func TestProductHandler_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
	}{
		{
			name: "updates product",
			body: `{"sku":"WIDGET-01","title":"Widget v2","price":24.99}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					UpdateProduct(mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "sku is not required on update",
			body: `{"title":"Widget v2","price":24.99}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					UpdateProduct(mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing price",
			body:       `{"title":"Widget v2"}`,
			setupMock:  func(*mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown id",
			body: `{"title":"Widget v2","price":24.99}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					UpdateProduct(mock.Anything, mock.Anything).
					Return(domain.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewProductHandler(ms)

			c, rec := newContext(echo.New(), http.MethodPut, "/api/products/p1", tt.body)
			c.SetParamNames("id")
			c.SetParamValues("p1")

			require.NoError(t, h.Update(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestProductHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "deletes product",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					DeleteProduct(mock.Anything, "p1").
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `product deleted`,
		},
		{
			name: "unknown id",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					DeleteProduct(mock.Anything, "p1").
					Return(domain.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewProductHandler(ms)

			c, rec := newContext(echo.New(), http.MethodDelete, "/api/products/p1", "")
			c.SetParamNames("id")
			c.SetParamValues("p1")

			require.NoError(t, h.Delete(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
