package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Product queries.
const (
	queryCreateProduct = `
		INSERT INTO products (
			sku, title, description, price, quantity,
			condition, brand, category, images, created_at, updated_at
		) VALUES (
			@sku, @title, @description, @price, @quantity,
			@condition, @brand, @category, @images, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetProduct = `
		SELECT id, sku, title, COALESCE(description, ''), price, quantity,
			condition, COALESCE(brand, ''), COALESCE(category, ''), images,
			created_at, updated_at
		FROM products
		WHERE id = $1`

	queryListProducts = `
		SELECT id, sku, title, COALESCE(description, ''), price, quantity,
			condition, COALESCE(brand, ''), COALESCE(category, ''), images,
			created_at, updated_at
		FROM products
		ORDER BY created_at DESC`

	queryUpdateProduct = `
		UPDATE products SET
			title = @title,
			description = @description,
			price = @price,
			quantity = @quantity,
			condition = @condition,
			brand = @brand,
			category = @category,
			images = @images,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteProduct = `DELETE FROM products WHERE id = $1`
)

// Marketplace connection queries.
const (
	queryGetConnection = `
		SELECT id, marketplace, name, status, credentials, settings,
			created_at, updated_at
		FROM marketplace_connections
		WHERE marketplace = $1
		LIMIT 1`

	queryDeleteConnection = `
		DELETE FROM marketplace_connections WHERE marketplace = $1`

	queryInsertConnection = `
		INSERT INTO marketplace_connections (
			marketplace, name, status, credentials, settings,
			created_at, updated_at
		) VALUES (
			@marketplace, @name, @status, @credentials, @settings, now(), now()
		)
		RETURNING id, created_at, updated_at`
)

// Listing queries.
const (
	queryInsertListing = `
		INSERT INTO listings (
			product_id, marketplace_connection_id, external_id, offer_id,
			status, listing_url, listing_data, error_message,
			created_at, updated_at
		) VALUES (
			@product_id, @marketplace_connection_id, @external_id, @offer_id,
			@status, @listing_url, @listing_data, @error_message, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryListListings = `
		SELECT l.id, l.product_id, l.marketplace_connection_id,
			COALESCE(l.external_id, ''), COALESCE(l.offer_id, ''),
			l.status, COALESCE(l.listing_url, ''), l.listing_data,
			COALESCE(l.error_message, ''),
			p.sku, p.title, p.price,
			l.created_at, l.updated_at
		FROM listings l
		JOIN products p ON l.product_id = p.id
		JOIN marketplace_connections mc ON l.marketplace_connection_id = mc.id
		WHERE mc.marketplace = $1
		ORDER BY l.created_at DESC`

	queryLatestListingForProduct = `
		SELECT l.id, l.product_id, l.marketplace_connection_id,
			COALESCE(l.external_id, ''), COALESCE(l.offer_id, ''),
			l.status, COALESCE(l.listing_url, ''), l.listing_data,
			COALESCE(l.error_message, ''),
			p.sku, p.title, p.price,
			l.created_at, l.updated_at
		FROM listings l
		JOIN products p ON l.product_id = p.id
		JOIN marketplace_connections mc ON l.marketplace_connection_id = mc.id
		WHERE l.product_id = $1 AND mc.marketplace = $2
		ORDER BY l.created_at DESC
		LIMIT 1`
)
