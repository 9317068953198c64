package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sunraincyq/inventsync-app/internal/store"
	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// defaultConnectionName labels newly created eBay connections.
const defaultConnectionName = "eBay Store"

// Connector manages the eBay connection lifecycle: validating tokens,
// storing the single connection row, and tearing it down.
type Connector struct {
	store   store.Store
	clients ClientFactory
	log     *slog.Logger
}

// NewConnector creates a Connector.
func NewConnector(s store.Store, clients ClientFactory, log *slog.Logger) *Connector {
	return &Connector{store: s, clients: clients, log: log}
}

// Connect verifies the supplied credentials against the marketplace and
// replaces any existing eBay connection with a connected one. The
// fulfillment location is prepared eagerly so the first publish does not
// pay for it, but a location failure here is logged, not fatal; the publish
// workflow retries it.
func (c *Connector) Connect(ctx context.Context, creds domain.Credentials) (*domain.MarketplaceConnection, error) {
	client := c.clients(creds)

	if err := client.VerifyToken(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	}

	conn := &domain.MarketplaceConnection{
		Marketplace: domain.MarketplaceEbay,
		Name:        defaultConnectionName,
		Status:      domain.ConnectionConnected,
		Credentials: creds,
	}
	if err := c.store.ReplaceConnection(ctx, conn); err != nil {
		return nil, fmt.Errorf("storing connection: %w", err)
	}

	if err := client.EnsureLocation(ctx); err != nil {
		c.log.Warn("could not prepare inventory location", "error", err)
	}

	c.log.Info("marketplace connected",
		"marketplace", conn.Marketplace, "sandbox", creds.Sandbox)

	return conn, nil
}

// Disconnect removes the stored eBay connection. Listings referencing it
// are removed with it.
func (c *Connector) Disconnect(ctx context.Context) error {
	if err := c.store.DeleteConnection(ctx, domain.MarketplaceEbay); err != nil {
		return fmt.Errorf("deleting connection: %w", err)
	}
	c.log.Info("marketplace disconnected", "marketplace", domain.MarketplaceEbay)
	return nil
}

// Get returns the stored eBay connection, or ErrNotFound when none exists.
func (c *Connector) Get(ctx context.Context) (*domain.MarketplaceConnection, error) {
	return c.store.GetConnection(ctx, domain.MarketplaceEbay)
}
