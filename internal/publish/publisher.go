package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sunraincyq/inventsync-app/internal/ebay"
	"github.com/sunraincyq/inventsync-app/internal/metrics"
	"github.com/sunraincyq/inventsync-app/internal/store"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// ClientFactory builds a marketplace client from stored credentials. The
// serve command supplies one bound to the configured API base URLs; tests
// supply one returning a mock.
type ClientFactory func(creds domain.Credentials) ebay.Client

// Publisher coordinates publish attempts: it loads the product and
// connection, runs the workflow, and records the outcome as a listing row.
type Publisher struct {
	store   store.Store
	clients ClientFactory
	log     *slog.Logger
}

// NewPublisher creates a Publisher.
func NewPublisher(s store.Store, clients ClientFactory, log *slog.Logger) *Publisher {
	return &Publisher{store: s, clients: clients, log: log}
}

// Publish runs the full publish workflow for a product and persists exactly
// one listing row for the attempt, whether it succeeded or failed. An error
// is returned only when the attempt could not start (unknown product, no
// active connection) or the outcome could not be recorded; a workflow
// failure is reported through the listing's data, not the error.
func (p *Publisher) Publish(ctx context.Context, productID, categoryID string) (*domain.Listing, error) {
	product, err := p.store.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("loading product: %w", err)
	}

	conn, err := p.store.GetConnection(ctx, domain.MarketplaceEbay)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotConnected
		}
		return nil, fmt.Errorf("loading connection: %w", err)
	}
	if conn.Status != domain.ConnectionConnected {
		return nil, domain.ErrNotConnected
	}

	client := p.clients(conn.Credentials)
	wf := NewWorkflow(client, p.log)

	timer := prometheus.NewTimer(metrics.PublishDuration)
	result := wf.Run(ctx, product, categoryID)
	timer.ObserveDuration()

	listing := &domain.Listing{
		ProductID:    product.ID,
		ConnectionID: conn.ID,
		ExternalID:   result.ListingID,
		OfferID:      result.OfferID,
		Status:       domain.ListingActive,
		ListingURL:   result.ListingURL,
		ListingData:  result,
	}
	if !result.Success {
		listing.Status = domain.ListingError
		listing.ErrorMessage = result.Error
		metrics.PublishAttemptsTotal.WithLabelValues("failure").Inc()
	} else {
		metrics.PublishAttemptsTotal.WithLabelValues("success").Inc()
	}

	if err := p.store.InsertListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("recording listing: %w", err)
	}

	return listing, nil
}
