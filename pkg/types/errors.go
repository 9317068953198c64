package domain

import "errors"

// Sentinel errors for the client-visible error taxonomy. Callers classify
// with errors.Is; messages carry the specific detail.
var (
	// ErrValidation indicates a missing or invalid required field.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness violation, e.g. a duplicate SKU.
	ErrConflict = errors.New("conflict")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAuthentication indicates a bad or expired marketplace token.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotConnected indicates no active connection exists for the
	// target marketplace.
	ErrNotConnected = errors.New("marketplace not connected")

	// ErrLocation indicates the fulfillment location could not be
	// created or verified.
	ErrLocation = errors.New("inventory location unavailable")
)
