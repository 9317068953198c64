package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/sunraincyq/inventsync-app/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PoolOption adjusts pool settings before the pool is created.
type PoolOption func(*pgxpool.Config)

// WithPoolSize caps the number of pooled connections. Non-positive values
// keep the default.
func WithPoolSize(n int) PoolOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n)
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PoolOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateProduct inserts a new product, filling ID and timestamps.
// A duplicate SKU yields domain.ErrConflict.
func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	p.Normalize()

	args := pgx.NamedArgs{
		"sku":         p.SKU,
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"quantity":    p.Quantity,
		"condition":   p.Condition,
		"brand":       p.Brand,
		"category":    p.Category,
		"images":      encodeImages(p.Images),
	}

	err := s.pool.QueryRow(ctx, queryCreateProduct, args).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: sku %q already exists", domain.ErrConflict, p.SKU)
	}
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

// GetProduct retrieves a product by its ID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// ListProducts returns all products, newest first.
func (s *PostgresStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, queryListProducts)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// UpdateProduct overwrites all mutable columns of an existing product.
// Returns domain.ErrNotFound if the ID does not exist.
func (s *PostgresStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	p.Normalize()

	args := pgx.NamedArgs{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"quantity":    p.Quantity,
		"condition":   p.Condition,
		"brand":       p.Brand,
		"category":    p.Category,
		"images":      encodeImages(p.Images),
	}

	err := s.pool.QueryRow(ctx, queryUpdateProduct, args).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, p.ID)
	}
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product; dependent listings cascade at the
// storage level. Returns domain.ErrNotFound if the ID does not exist.
func (s *PostgresStore) DeleteProduct(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteProduct, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, id)
	}
	return nil
}

// GetConnection retrieves the connection row for a marketplace.
// Returns domain.ErrNotFound when no connection exists.
func (s *PostgresStore) GetConnection(
	ctx context.Context,
	marketplace string,
) (*domain.MarketplaceConnection, error) {
	c := &domain.MarketplaceConnection{}
	var credsJSON, settingsJSON []byte

	err := s.pool.QueryRow(ctx, queryGetConnection, marketplace).Scan(
		&c.ID, &c.Marketplace, &c.Name, &c.Status, &credsJSON, &settingsJSON,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: connection for %s", domain.ErrNotFound, marketplace)
	}
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}

	// Opaque blobs decode best-effort; a bad blob yields zero values.
	_ = json.Unmarshal(credsJSON, &c.Credentials)    //nolint:errcheck
	_ = json.Unmarshal(settingsJSON, &c.Settings)    //nolint:errcheck

	return c, nil
}

// ReplaceConnection atomically replaces any existing row for the connection's
// marketplace: delete old, insert new, one transaction.
func (s *PostgresStore) ReplaceConnection(
	ctx context.Context,
	c *domain.MarketplaceConnection,
) error {
	credsJSON, err := json.Marshal(c.Credentials)
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}
	settingsJSON, err := json.Marshal(c.Settings)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, queryDeleteConnection, c.Marketplace); err != nil {
		return fmt.Errorf("removing prior connection: %w", err)
	}

	args := pgx.NamedArgs{
		"marketplace": c.Marketplace,
		"name":        c.Name,
		"status":      string(c.Status),
		"credentials": credsJSON,
		"settings":    settingsJSON,
	}

	if err := tx.QueryRow(ctx, queryInsertConnection, args).Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting connection: %w", err)
	}

	return tx.Commit(ctx)
}

// DeleteConnection removes the connection row for a marketplace.
// Deleting an absent connection is not an error.
func (s *PostgresStore) DeleteConnection(ctx context.Context, marketplace string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteConnection, marketplace); err != nil {
		return fmt.Errorf("deleting connection: %w", err)
	}
	return nil
}

// InsertListing appends a listing row recording one publish attempt.
func (s *PostgresStore) InsertListing(ctx context.Context, l *domain.Listing) error {
	dataJSON, err := json.Marshal(l.ListingData)
	if err != nil {
		return fmt.Errorf("marshaling listing data: %w", err)
	}

	args := pgx.NamedArgs{
		"product_id":                l.ProductID,
		"marketplace_connection_id": l.ConnectionID,
		"external_id":               nullable(l.ExternalID),
		"offer_id":                  nullable(l.OfferID),
		"status":                    string(l.Status),
		"listing_url":               nullable(l.ListingURL),
		"listing_data":              dataJSON,
		"error_message":             nullable(l.ErrorMessage),
	}

	if err := s.pool.QueryRow(ctx, queryInsertListing, args).Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting listing: %w", err)
	}
	return nil
}

// ListListings returns all listing rows for a marketplace, newest first,
// joined with product SKU, title, and price.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	marketplace string,
) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, queryListListings, marketplace)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// LatestListingForProduct returns the most recent listing row for a product
// on a marketplace, or domain.ErrNotFound when none exists.
func (s *PostgresStore) LatestListingForProduct(
	ctx context.Context,
	productID, marketplace string,
) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := scanListing(
		s.pool.QueryRow(ctx, queryLatestListingForProduct, productID, marketplace), l,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: listing for product %s", domain.ErrNotFound, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("getting latest listing: %w", err)
	}
	return l, nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable, p *domain.Product) error {
	var imagesJSON []byte
	if err := row.Scan(
		&p.ID, &p.SKU, &p.Title, &p.Description, &p.Price, &p.Quantity,
		&p.Condition, &p.Brand, &p.Category, &imagesJSON,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return err
	}
	p.Images = decodeImages(imagesJSON)
	return nil
}

func scanListing(row scannable, l *domain.Listing) error {
	var dataJSON []byte
	if err := row.Scan(
		&l.ID, &l.ProductID, &l.ConnectionID, &l.ExternalID, &l.OfferID,
		&l.Status, &l.ListingURL, &dataJSON, &l.ErrorMessage,
		&l.ProductSKU, &l.ProductTitle, &l.ProductPrice,
		&l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return err
	}
	// Snapshot decodes best-effort; a bad blob yields the zero result.
	_ = json.Unmarshal(dataJSON, &l.ListingData) //nolint:errcheck
	return nil
}

// encodeImages serializes the ordered image URL list for storage.
func encodeImages(images []string) []byte {
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return []byte("[]")
	}
	return data
}

// decodeImages restores the ordered image URL list from storage.
// Decode failure yields an empty sequence rather than an error.
func decodeImages(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal(data, &images); err != nil || images == nil {
		return []string{}
	}
	return images
}

// nullable maps empty strings to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
