// Package publish implements the multi-step eBay publish workflow and the
// marketplace connection lifecycle on top of the store and eBay client
// abstractions.
package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sunraincyq/inventsync-app/internal/ebay"
	"github.com/sunraincyq/inventsync-app/internal/metrics"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// State identifies a step of the publish workflow. A failed run records the
// state it failed in so callers can tell how far the listing progressed.
type State string

// Workflow states, in execution order.
const (
	StateEnsuringLocation   State = "ensuring_location"
	StateUpsertingInventory State = "upserting_inventory"
	StateCreatingOffer      State = "creating_offer"
	StatePublishing         State = "publishing"
	StateDone               State = "done"
)

// defaultImageURL substitutes for products with no images; eBay rejects
// inventory items without at least one picture.
const defaultImageURL = "https://via.placeholder.com/500x500?text=No+Image"

// Workflow runs the four-step publish sequence against a single marketplace
// client. It performs no storage; the caller persists the result.
type Workflow struct {
	client ebay.Client
	log    *slog.Logger
}

// NewWorkflow creates a workflow bound to one client and logger.
func NewWorkflow(client ebay.Client, log *slog.Logger) *Workflow {
	return &Workflow{client: client, log: log}
}

// Run executes the publish sequence for one product. The sequence stops at
// the first failing step; earlier steps are not rolled back, so a failed run
// can leave an inventory item or unpublished offer behind on the
// marketplace. The returned result is always populated, never an error: a
// workflow failure is data, recorded on the listing.
func (w *Workflow) Run(ctx context.Context, p *domain.Product, categoryID string) domain.PublishResult {
	if err := w.client.EnsureLocation(ctx); err != nil {
		return w.fail(StateEnsuringLocation, "", fmt.Errorf("%w: %v", domain.ErrLocation, err))
	}

	item := buildInventoryItem(p)
	if err := w.client.UpsertInventoryItem(ctx, item); err != nil {
		return w.fail(StateUpsertingInventory, "", err)
	}

	policies := w.client.FetchPolicies(ctx)
	offerID, err := w.client.CreateOffer(ctx, ebay.OfferRequest{
		SKU:        p.SKU,
		CategoryID: categoryID,
		Price:      p.Price,
		Policies:   policies,
	})
	if err != nil {
		return w.fail(StateCreatingOffer, "", err)
	}

	listingID, err := w.client.PublishOffer(ctx, offerID)
	if err != nil {
		// The offer exists even though publishing failed; keep its ID so
		// the listing record points at something recoverable.
		return w.fail(StatePublishing, offerID, err)
	}

	w.log.Info("published listing",
		"sku", p.SKU, "offer_id", offerID, "listing_id", listingID)

	return domain.PublishResult{
		Success:    true,
		ListingID:  listingID,
		OfferID:    offerID,
		ListingURL: w.client.ItemURL(listingID),
	}
}

func (w *Workflow) fail(state State, offerID string, err error) domain.PublishResult {
	metrics.PublishStepFailuresTotal.WithLabelValues(string(state)).Inc()
	w.log.Error("publish step failed", "state", string(state), "error", err)

	return domain.PublishResult{
		OfferID:     offerID,
		Error:       err.Error(),
		FailedState: string(state),
	}
}

// buildInventoryItem maps a product onto the marketplace inventory payload:
// the condition is normalized to a Sell API enum, the description falls back
// to the title, imageless products get a placeholder picture, and a zero
// quantity lists a single unit since the marketplace rejects empty stock.
func buildInventoryItem(p *domain.Product) ebay.InventoryItem {
	description := p.Description
	if description == "" {
		description = p.Title
	}

	images := p.Images
	if len(images) == 0 {
		images = []string{defaultImageURL}
	}

	quantity := p.Quantity
	if quantity == 0 {
		quantity = 1
	}

	return ebay.InventoryItem{
		SKU:         p.SKU,
		Title:       p.Title,
		Description: description,
		Quantity:    quantity,
		Condition:   ebay.MapCondition(p.Condition),
		Brand:       p.Brand,
		ImageURLs:   images,
	}
}
