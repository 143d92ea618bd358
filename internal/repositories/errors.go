package repositories

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned by DecrementStock when the guarded
	// update matches no row, i.e. the remaining stock is below the
	// requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)
