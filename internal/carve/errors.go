package carve

import "errors"

// Error kinds returned by this package. Callers test for them with
// errors.Is; the returned errors wrap these with positional detail.
var (
	// ErrInvalidBorder reports an active border of zero or one exceeding
	// the grid's dimension along the seam axis.
	ErrInvalidBorder = errors.New("invalid active border")

	// ErrInsufficientDimension reports a carve request removing at least
	// as many seams as the grid has to give. It is raised before any
	// mutation takes place.
	ErrInsufficientDimension = errors.New("insufficient dimension for requested seams")

	// ErrEmptySeam reports a seam trace over a grid with no scan lines.
	ErrEmptySeam = errors.New("no scan lines to trace")
)
