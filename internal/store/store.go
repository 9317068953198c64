// Package store defines the datastore abstraction for InventSync.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

// Store defines all data access operations for InventSync.
type Store interface {
	// Products
	CreateProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// Marketplace connections
	GetConnection(ctx context.Context, marketplace string) (*domain.MarketplaceConnection, error)
	ReplaceConnection(ctx context.Context, c *domain.MarketplaceConnection) error
	DeleteConnection(ctx context.Context, marketplace string) error

	// Listings
	InsertListing(ctx context.Context, l *domain.Listing) error
	ListListings(ctx context.Context, marketplace string) ([]domain.Listing, error)
	LatestListingForProduct(ctx context.Context, productID, marketplace string) (*domain.Listing, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
