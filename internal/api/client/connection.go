package client

import (
	"context"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

type connectRequest struct {
	AccessToken string `json:"accessToken"`
	Sandbox     bool   `json:"sandbox"`
}

// GetConnection returns the stored eBay connection, or nil when none exists.
func (c *Client) GetConnection(ctx context.Context) (*domain.MarketplaceConnection, error) {
	var conn domain.MarketplaceConnection
	if err := c.get(ctx, "/api/ebay/connection", &conn); err != nil {
		return nil, err
	}
	if conn.ID == "" {
		return nil, nil
	}
	return &conn, nil
}

// Connect verifies the token and stores an eBay connection.
func (c *Client) Connect(ctx context.Context, accessToken string, sandbox bool) (*domain.MarketplaceConnection, error) {
	var conn domain.MarketplaceConnection
	req := connectRequest{AccessToken: accessToken, Sandbox: sandbox}
	if err := c.post(ctx, "/api/ebay/connect", req, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}

// Disconnect removes the stored eBay connection.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.post(ctx, "/api/ebay/disconnect", nil, nil)
}
