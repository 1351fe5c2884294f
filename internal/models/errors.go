package models

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not present
	// in the current catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyCart is returned by checkout when the cart has no entries.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingBuyerInfo is returned by checkout when any buyer field
	// is empty. A single error covers all missing fields.
	ErrMissingBuyerInfo = errors.New("missing buyer info")

	// ErrIndexOutOfRange is a contract violation on position-based cart
	// removal. Callers are expected to offer only valid indices.
	ErrIndexOutOfRange = errors.New("cart index out of range")
)
