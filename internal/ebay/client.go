// Package ebay provides an eBay Sell API client abstracted behind interfaces
// for testability. All vendor-specific detail — base URLs, auth headers,
// endpoint paths, payload shapes, condition codes — lives here.
package ebay

import (
	"context"
)

// InventoryItem is the vendor-neutral inventory payload assembled by the
// publish workflow. Condition must already be a valid Sell API enum value.
type InventoryItem struct {
	SKU         string
	Title       string
	Description string
	Quantity    int
	Condition   string
	Brand       string
	ImageURLs   []string
}

// Policies holds the seller's business policy identifiers. Any field may be
// empty; missing policies are omitted from offers, not treated as errors.
type Policies struct {
	FulfillmentPolicyID string
	PaymentPolicyID     string
	ReturnPolicyID      string
}

// OfferRequest describes a fixed-price single-marketplace offer.
type OfferRequest struct {
	SKU        string
	CategoryID string
	Price      float64
	Policies   Policies
}

// Client defines the capabilities the publish workflow and connection
// manager consume.
type Client interface {
	// VerifyToken checks that the stored access token is accepted.
	VerifyToken(ctx context.Context) error

	// EnsureLocation idempotently creates the default fulfillment location.
	EnsureLocation(ctx context.Context) error

	// UpsertInventoryItem creates or replaces the inventory item keyed by SKU.
	UpsertInventoryItem(ctx context.Context, item InventoryItem) error

	// FetchPolicies returns the seller's business policy IDs, best-effort.
	FetchPolicies(ctx context.Context) Policies

	// CreateOffer creates an unpublished offer and returns its offer ID.
	CreateOffer(ctx context.Context, offer OfferRequest) (string, error)

	// PublishOffer activates an offer and returns the live listing ID.
	PublishOffer(ctx context.Context, offerID string) (string, error)

	// ItemURL formats a listing ID into the canonical item-view URL.
	ItemURL(listingID string) string
}
