package client

import (
	"context"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

type publishRequest struct {
	CategoryID string `json:"categoryId"`
}

// ListListings returns all eBay listing attempts, newest first.
func (c *Client) ListListings(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.get(ctx, "/api/ebay/listings", &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// ProductListing returns the most recent listing attempt for a product,
// or nil when it has never been published.
func (c *Client) ProductListing(ctx context.Context, productID string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/ebay/listings/"+productID, &l); err != nil {
		return nil, err
	}
	if l.ID == "" {
		return nil, nil
	}
	return &l, nil
}

// Publish runs the publish workflow for a product in the given category.
func (c *Client) Publish(ctx context.Context, productID, categoryID string) (*domain.Listing, error) {
	var l domain.Listing
	req := publishRequest{CategoryID: categoryID}
	if err := c.post(ctx, "/api/ebay/list/"+productID, req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
