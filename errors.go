package scagnostics

import "errors"

// Errors:
//
//	ErrInsufficientPoints - fewer than 3 input points.
//	ErrInvalidOption      - a supplied Options field is out of its valid range.
var (
	// ErrInsufficientPoints indicates fewer than three points were
	// supplied; a triangulation needs at least three sites to exist.
	ErrInsufficientPoints = errors.New("scagnostics: fewer than 3 points")

	// ErrInvalidOption indicates a malformed Options value: a negative
	// size, minBins > maxBins, an unknown BinType, or a non-finite
	// OutlyingUpperBound.
	ErrInvalidOption = errors.New("scagnostics: invalid option")
)
