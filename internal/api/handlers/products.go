// Package handlers implements HTTP handlers for the InventSync API.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sunraincyq/inventsync-app/internal/store"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// ProductHandler handles product CRUD operations.
type ProductHandler struct {
	store store.Store
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(s store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// productRequest is the create/update request body. Price is a pointer so an
// omitted price is distinguishable from a free product.
type productRequest struct {
	SKU         string   `json:"sku"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    int      `json:"quantity"`
	Condition   string   `json:"condition"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}

// validate checks the required request fields. SKU is immutable after
// create, so updates are not required to carry it.
func (r *productRequest) validate(requireSKU bool) error {
	if requireSKU && r.SKU == "" {
		return fmt.Errorf("%w: sku is required", domain.ErrValidation)
	}
	if r.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if r.Price == nil {
		return fmt.Errorf("%w: price is required", domain.ErrValidation)
	}
	if *r.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if r.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", domain.ErrValidation)
	}
	return nil
}

// product materializes the validated request into a domain product with
// persistence defaults applied.
func (r *productRequest) product() domain.Product {
	p := domain.Product{
		SKU:         r.SKU,
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Quantity:    r.Quantity,
		Condition:   r.Condition,
		Brand:       r.Brand,
		Category:    r.Category,
		Images:      r.Images,
	}
	p.Normalize()
	return p
}

// List handles GET /api/products.
//
// @Summary List products
// @Description Returns all products ordered by creation time, newest first.
// @Tags products
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.store.ListProducts(c.Request().Context())
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "listing products: "+err.Error())
	}

	if products == nil {
		products = []domain.Product{}
	}

	return respond(c, http.StatusOK, products)
}

// Get handles GET /api/products/:id.
//
// @Summary Get a product by ID
// @Description Returns a single product by its UUID.
// @Tags products
// @Produce json
// @Param id path string true "Product UUID"
// @Success 200 {object} Envelope
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.store.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondMapped(c, err)
	}

	return respond(c, http.StatusOK, p)
}

// Create handles POST /api/products.
//
// @Summary Create a product
// @Description Creates a new product. SKU must be unique.
// @Tags products
// @Accept json
// @Produce json
// @Param product body productRequest true "Product to create"
// @Success 201 {object} Envelope
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	if err := req.validate(true); err != nil {
		return respondMapped(c, err)
	}

	p := req.product()
	if err := h.store.CreateProduct(c.Request().Context(), &p); err != nil {
		return respondMapped(c, err)
	}

	return respond(c, http.StatusCreated, p)
}

// Update handles PUT /api/products/:id.
//
// @Summary Update a product
// @Description Replaces an existing product's mutable fields by its UUID.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product UUID"
// @Param product body productRequest true "Updated product"
// @Success 200 {object} Envelope
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	if err := req.validate(false); err != nil {
		return respondMapped(c, err)
	}

	p := req.product()
	p.ID = c.Param("id")
	if err := h.store.UpdateProduct(c.Request().Context(), &p); err != nil {
		return respondMapped(c, err)
	}

	return respond(c, http.StatusOK, p)
}

// Delete handles DELETE /api/products/:id.
//
// @Summary Delete a product
// @Description Deletes a product and, by cascade, its listings.
// @Tags products
// @Produce json
// @Param id path string true "Product UUID"
// @Success 200 {object} Envelope
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.store.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return respondMapped(c, err)
	}

	return respondMessage(c, http.StatusOK, nil, "product deleted")
}
