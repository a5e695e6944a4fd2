package errors

import "errors"

var (
	ErrNotFound            = errors.New("order not found")
	ErrNotEligible         = errors.New("action not eligible")
	ErrInvalidConfirmation = errors.New("invalid confirmation phrase")
	ErrMalformedRecord     = errors.New("malformed order record")
	ErrPersistence         = errors.New("persistence failure")
)
