package domain

import "errors"

// All failures below are recoverable and surfaced as return values; nothing
// in the core panics on bad input or a bad record.
var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrInvalidItem      = errors.New("invalid item")
	ErrEmptyCart        = errors.New("empty cart")
	ErrNotFound         = errors.New("not found")
	ErrMalformedRecord  = errors.New("malformed record")
)
