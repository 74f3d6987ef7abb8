package order

import "errors"

var (
	// ErrEmptyOrder is returned when checkout runs against an empty
	// cart. Callers treat it as a no-op, never as a user-facing
	// failure.
	ErrEmptyOrder = errors.New("order has no lines")
)
