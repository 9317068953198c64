// Package domain defines the core business types for InventSync.
package domain

import (
	"time"
)

// ConnectionStatus represents the state of a marketplace connection.
type ConnectionStatus string

// Connection status constants.
const (
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionDisconnected ConnectionStatus = "disconnected"
)

// ListingStatus represents the state of a marketplace listing record.
type ListingStatus string

// Listing status constants.
const (
	ListingDraft  ListingStatus = "draft"
	ListingActive ListingStatus = "active"
	ListingError  ListingStatus = "error"
)

// MarketplaceEbay is the marketplace key for eBay connections.
const MarketplaceEbay = "ebay"

// DefaultCondition is applied when a product has no condition set.
const DefaultCondition = "NEW"

// Product is a catalog item owned by the merchant. SKU is the external
// inventory key; images preserve insertion order.
type Product struct {
	ID          string   `json:"id"                    db:"id"`
	SKU         string   `json:"sku"                   db:"sku"`
	Title       string   `json:"title"                 db:"title"`
	Description string   `json:"description,omitempty" db:"description"`
	Price       float64  `json:"price"                 db:"price"`
	Quantity    int      `json:"quantity"              db:"quantity"`
	Condition   string   `json:"condition"             db:"condition"`
	Brand       string   `json:"brand,omitempty"       db:"brand"`
	Category    string   `json:"category,omitempty"    db:"category"`
	Images      []string `json:"images"                db:"images"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Normalize fills persistence defaults: condition defaults to NEW and
// images to an empty ordered list.
func (p *Product) Normalize() {
	if p.Condition == "" {
		p.Condition = DefaultCondition
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// Credentials is the decoded credential blob stored on a connection.
type Credentials struct {
	AccessToken string `json:"accessToken"`
	Sandbox     bool   `json:"sandbox"`
}

// Settings is the decoded settings blob stored on a connection.
type Settings struct {
	AutoSync bool `json:"autoSync"`
}

// MarketplaceConnection is the stored account link for a marketplace.
// At most one row exists per marketplace; connecting replaces any prior row.
type MarketplaceConnection struct {
	ID          string           `json:"id"          db:"id"`
	Marketplace string           `json:"marketplace" db:"marketplace"`
	Name        string           `json:"name"        db:"name"`
	Status      ConnectionStatus `json:"status"      db:"status"`
	Credentials Credentials      `json:"-"           db:"credentials"`
	Settings    Settings         `json:"settings"    db:"settings"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PublishResult is the terminal outcome of one publish workflow run. It is
// persisted verbatim as the listing's listing_data snapshot.
type PublishResult struct {
	Success     bool   `json:"success"`
	ListingID   string `json:"listingId,omitempty"`
	OfferID     string `json:"offerId,omitempty"`
	ListingURL  string `json:"listingUrl,omitempty"`
	Error       string `json:"error,omitempty"`
	FailedState string `json:"failedState,omitempty"`
}

// Listing records one publish attempt for a product on a marketplace.
// Republishing appends a new row; the most recent row is the current status.
type Listing struct {
	ID           string        `json:"id"                        db:"id"`
	ProductID    string        `json:"product_id"                db:"product_id"`
	ConnectionID string        `json:"marketplace_connection_id" db:"marketplace_connection_id"`
	ExternalID   string        `json:"external_id,omitempty"     db:"external_id"`
	OfferID      string        `json:"offer_id,omitempty"        db:"offer_id"`
	Status       ListingStatus `json:"status"                    db:"status"`
	ListingURL   string        `json:"listing_url,omitempty"     db:"listing_url"`
	ListingData  PublishResult `json:"listing_data"              db:"listing_data"`
	ErrorMessage string        `json:"error_message,omitempty"   db:"error_message"`

	// Joined product columns, populated by listing queries only.
	ProductSKU   string  `json:"sku,omitempty"           db:"sku"`
	ProductTitle string  `json:"product_title,omitempty" db:"product_title"`
	ProductPrice float64 `json:"price,omitempty"         db:"price"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
