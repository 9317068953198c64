package ebay

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
	"time"

	"github.com/sunraincyq/inventsync-app/internal/metrics"
)

const (
	sandboxBaseURL    = "https://api.sandbox.ebay.com"
	productionBaseURL = "https://api.ebay.com"

	defaultMarketplace = "EBAY_US"
	defaultLocationKey = "default-location"

	itemViewBaseURL = "https://www.ebay.com/itm/"
)

// SellClient implements Client against the eBay Sell Inventory and
// Sell Account APIs using a user access token.
type SellClient struct {
	token       string
	baseURL     string
	marketplace string
	locationKey string
	client      *http.Client
}

// SellOption configures the SellClient.
type SellOption func(*SellClient)

// WithBaseURL overrides the environment-derived API base URL.
func WithBaseURL(u string) SellOption {
	return func(c *SellClient) {
		c.baseURL = u
	}
}

// WithMarketplace overrides the default marketplace.
func WithMarketplace(m string) SellOption {
	return func(c *SellClient) {
		c.marketplace = m
	}
}

// WithLocationKey overrides the default merchant location key.
func WithLocationKey(k string) SellOption {
	return func(c *SellClient) {
		c.locationKey = k
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) SellOption {
	return func(c *SellClient) {
		c.client = hc
	}
}

// NewSellClient creates a Sell API client. The sandbox flag selects between
// the sandbox and production environments.
func NewSellClient(accessToken string, sandbox bool, opts ...SellOption) *SellClient {
	c := &SellClient{
		token:       accessToken,
		baseURL:     productionBaseURL,
		marketplace: defaultMarketplace,
		locationKey: defaultLocationKey,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
	if sandbox {
		c.baseURL = sandboxBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// VerifyToken checks the access token by issuing a minimal inventory query.
func (c *SellClient) VerifyToken(ctx context.Context) error {
	err := c.call(ctx, "verify_token",
		http.MethodGet, "/sell/inventory/v1/inventory_item?limit=1", nil, nil)
	if err != nil {
		return fmt.Errorf("verifying token: %w", err)
	}
	return nil
}

// EnsureLocation checks for the default merchant location and creates it
// with a fixed warehouse descriptor when absent.
func (c *SellClient) EnsureLocation(ctx context.Context) error {
	path := "/sell/inventory/v1/location/" + url.PathEscape(c.locationKey)

	if err := c.call(ctx, "get_location", http.MethodGet, path, nil, nil); err == nil {
		return nil
	}

	payload := locationPayload{
		LocationTypes:          []string{"WAREHOUSE"},
		Name:                   "Default Warehouse",
		MerchantLocationStatus: "ENABLED",
	}
	payload.Location.Address = locationAddress{
		AddressLine1:    "123 Main Street",
		City:            "San Jose",
		StateOrProvince: "CA",
		PostalCode:      "95125",
		Country:         "US",
	}

	if err := c.call(ctx, "create_location", http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("creating inventory location: %w", err)
	}
	return nil
}

// UpsertInventoryItem creates or replaces the inventory item keyed by SKU.
func (c *SellClient) UpsertInventoryItem(ctx context.Context, item InventoryItem) error {
	payload := inventoryItemPayload{Condition: item.Condition}
	payload.Availability.ShipToLocationAvailability.Quantity = item.Quantity
	payload.Product = inventoryItemProduct{
		Title:       item.Title,
		Description: item.Description,
		ImageURLs:   item.ImageURLs,
	}
	if item.Brand != "" {
		payload.Product.Aspects = map[string][]string{"Brand": {item.Brand}}
	}

	path := "/sell/inventory/v1/inventory_item/" + url.PathEscape(item.SKU)
	if err := c.call(ctx, "upsert_inventory_item", http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("upserting inventory item: %w", err)
	}
	return nil
}

// FetchPolicies retrieves the seller's first fulfillment, payment, and return
// policy IDs. Each lookup is independent and best-effort: a missing or
// failing policy type leaves its field empty.
func (c *SellClient) FetchPolicies(ctx context.Context) Policies {
	var p Policies

	var fulfillment fulfillmentPoliciesResponse
	if err := c.call(ctx, "fetch_policies", http.MethodGet,
		"/sell/account/v1/fulfillment_policy?marketplace_id="+c.marketplace,
		nil, &fulfillment,
	); err == nil && len(fulfillment.FulfillmentPolicies) > 0 {
		p.FulfillmentPolicyID = fulfillment.FulfillmentPolicies[0].FulfillmentPolicyID
	}

	var payment paymentPoliciesResponse
	if err := c.call(ctx, "fetch_policies", http.MethodGet,
		"/sell/account/v1/payment_policy?marketplace_id="+c.marketplace,
		nil, &payment,
	); err == nil && len(payment.PaymentPolicies) > 0 {
		p.PaymentPolicyID = payment.PaymentPolicies[0].PaymentPolicyID
	}

	var ret returnPoliciesResponse
	if err := c.call(ctx, "fetch_policies", http.MethodGet,
		"/sell/account/v1/return_policy?marketplace_id="+c.marketplace,
		nil, &ret,
	); err == nil && len(ret.ReturnPolicies) > 0 {
		p.ReturnPolicyID = ret.ReturnPolicies[0].ReturnPolicyID
	}

	return p
}

// CreateOffer creates a fixed-price offer for the SKU and returns its offer ID.
func (c *SellClient) CreateOffer(ctx context.Context, offer OfferRequest) (string, error) {
	payload := offerPayload{
		SKU:                offer.SKU,
		MarketplaceID:      c.marketplace,
		Format:             "FIXED_PRICE",
		AvailableQuantity:  1,
		CategoryID:         offer.CategoryID,
		ListingDescription: "Listed via InventSync",
		ListingPolicies: listingPolicies{
			FulfillmentPolicyID: offer.Policies.FulfillmentPolicyID,
			PaymentPolicyID:     offer.Policies.PaymentPolicyID,
			ReturnPolicyID:      offer.Policies.ReturnPolicyID,
		},
		MerchantLocationKey: c.locationKey,
		PricingSummary: pricingSummary{
			Price: priceValue{
				Value:    strconv.FormatFloat(offer.Price, 'f', 2, 64),
				Currency: "USD",
			},
		},
	}

	var resp offerResponse
	if err := c.call(ctx, "create_offer",
		http.MethodPost, "/sell/inventory/v1/offer", payload, &resp); err != nil {
		return "", fmt.Errorf("creating offer: %w", err)
	}
	return resp.OfferID, nil
}

// PublishOffer activates an offer and returns the live listing ID.
func (c *SellClient) PublishOffer(ctx context.Context, offerID string) (string, error) {
	path := "/sell/inventory/v1/offer/" + url.PathEscape(offerID) + "/publish"

	var resp publishResponse
	if err := c.call(ctx, "publish_offer",
		http.MethodPost, path, struct{}{}, &resp); err != nil {
		return "", fmt.Errorf("publishing offer: %w", err)
	}
	return resp.ListingID, nil
}

// ItemURL formats a listing ID into the canonical item-view URL.
func (c *SellClient) ItemURL(listingID string) string {
	return itemViewBaseURL + listingID
}

// call executes one authenticated JSON request. Non-2xx responses are
// normalized to the first error entry's message from the API payload,
// falling back to the HTTP status.
func (c *SellClient) call(
	ctx context.Context,
	name, method, path string,
	body, out any,
) error {
	metrics.EbayAPICallsTotal.WithLabelValues(name).Inc()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Language", "en-US")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.EbayAPIErrorsTotal.WithLabelValues(name).Inc()
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.EbayAPIErrorsTotal.WithLabelValues(name).Inc()
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.EbayAPIErrorsTotal.WithLabelValues(name).Inc()
		return errors.New(apiErrorMessage(resp.StatusCode, data))
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}

	return nil
}

// apiErrorMessage extracts the first error message from a Sell API error
// payload, falling back to the HTTP status.
func apiErrorMessage(status int, body []byte) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Errors) > 0 &&
		apiErr.Errors[0].Message != "" {
		return apiErr.Errors[0].Message
	}
	return fmt.Sprintf("eBay API error (status %d)", status)
}
