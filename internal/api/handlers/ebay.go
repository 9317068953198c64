package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sunraincyq/inventsync-app/internal/publish"
	"github.com/sunraincyq/inventsync-app/internal/store"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// EbayHandler handles the eBay connection lifecycle and publish endpoints.
type EbayHandler struct {
	store     store.Store
	connector *publish.Connector
	publisher *publish.Publisher
}

// NewEbayHandler creates a new EbayHandler.
func NewEbayHandler(s store.Store, conn *publish.Connector, pub *publish.Publisher) *EbayHandler {
	return &EbayHandler{store: s, connector: conn, publisher: pub}
}

type connectRequest struct {
	AccessToken string `json:"accessToken"`
	Sandbox     bool   `json:"sandbox"`
}

type publishRequest struct {
	CategoryID string `json:"categoryId"`
}

// GetConnection handles GET /api/ebay/connection.
//
// @Summary Get the eBay connection
// @Description Returns the stored eBay connection, or null data when none exists.
// @Tags ebay
// @Produce json
// @Success 200 {object} Envelope
// @Router /api/ebay/connection [get]
func (h *EbayHandler) GetConnection(c echo.Context) error {
	conn, err := h.connector.Get(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respond(c, http.StatusOK, nil)
		}
		return respondError(c, http.StatusInternalServerError, "loading connection: "+err.Error())
	}

	return respond(c, http.StatusOK, conn)
}

// Connect handles POST /api/ebay/connect.
//
// @Summary Connect an eBay account
// @Description Verifies the access token and stores the connection, replacing any prior one.
// @Tags ebay
// @Accept json
// @Produce json
// @Param credentials body connectRequest true "eBay credentials"
// @Success 200 {object} Envelope
// @Failure 400 {object} ErrorResponse
// @Router /api/ebay/connect [post]
func (h *EbayHandler) Connect(c echo.Context) error {
	var req connectRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	if req.AccessToken == "" {
		return respondError(c, http.StatusBadRequest, "accessToken is required")
	}

	conn, err := h.connector.Connect(c.Request().Context(), domain.Credentials{
		AccessToken: req.AccessToken,
		Sandbox:     req.Sandbox,
	})
	if err != nil {
		return respondMapped(c, err)
	}

	return respondMessage(c, http.StatusOK, conn, "eBay connected")
}

// Disconnect handles POST /api/ebay/disconnect.
//
// @Summary Disconnect the eBay account
// @Description Removes the stored eBay connection and its listings.
// @Tags ebay
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} ErrorResponse
// @Router /api/ebay/disconnect [post]
func (h *EbayHandler) Disconnect(c echo.Context) error {
	if err := h.connector.Disconnect(c.Request().Context()); err != nil {
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	return respondMessage(c, http.StatusOK, nil, "eBay disconnected")
}

// Publish handles POST /api/ebay/list/:productId.
//
// @Summary Publish a product to eBay
// @Description Runs the publish workflow and records a listing row for the attempt.
// @Tags ebay
// @Accept json
// @Produce json
// @Param productId path string true "Product UUID"
// @Param request body publishRequest true "Publish parameters"
// @Success 200 {object} Envelope
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/ebay/list/{productId} [post]
func (h *EbayHandler) Publish(c echo.Context) error {
	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
	}

	if req.CategoryID == "" {
		return respondError(c, http.StatusBadRequest, "categoryId is required")
	}

	listing, err := h.publisher.Publish(c.Request().Context(), c.Param("productId"), req.CategoryID)
	if err != nil {
		return respondMapped(c, err)
	}

	if !listing.ListingData.Success {
		return respondError(c, http.StatusBadRequest, listing.ErrorMessage)
	}

	return respond(c, http.StatusOK, listing)
}

// Listings handles GET /api/ebay/listings.
//
// @Summary List eBay listings
// @Description Returns all eBay listing attempts, newest first, with product fields joined.
// @Tags ebay
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} ErrorResponse
// @Router /api/ebay/listings [get]
func (h *EbayHandler) Listings(c echo.Context) error {
	listings, err := h.store.ListListings(c.Request().Context(), domain.MarketplaceEbay)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "listing listings: "+err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	return respond(c, http.StatusOK, listings)
}

// ProductListing handles GET /api/ebay/listings/:productId.
//
// @Summary Get a product's current eBay listing
// @Description Returns the most recent listing attempt for the product, or null data when none exists.
// @Tags ebay
// @Produce json
// @Param productId path string true "Product UUID"
// @Success 200 {object} Envelope
// @Router /api/ebay/listings/{productId} [get]
func (h *EbayHandler) ProductListing(c echo.Context) error {
	listing, err := h.store.LatestListingForProduct(
		c.Request().Context(), c.Param("productId"), domain.MarketplaceEbay)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respond(c, http.StatusOK, nil)
		}
		return respondError(c, http.StatusInternalServerError, "loading listing: "+err.Error())
	}

	return respond(c, http.StatusOK, listing)
}
