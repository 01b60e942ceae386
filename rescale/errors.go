package rescale

import "errors"

// Sentinel errors for rescale operations. Return sites wrap these with the
// offending dimensions/factors via fmt.Errorf("...: %w", Err); callers match
// with errors.Is.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("rescale: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("rescale: all rows must have the same length")
	// ErrInvalidScale indicates a scale that is not an integer or pair of integers.
	ErrInvalidScale = errors.New("rescale: scale must be an integer or an integer pair")
	// ErrMixedDirection indicates row and column factors of opposite signs.
	ErrMixedDirection = errors.New("rescale: row and column factors must scale in the same direction")
	// ErrNonDivisible indicates a strict downscale by a factor that does not
	// evenly divide the matching grid dimension.
	ErrNonDivisible = errors.New("rescale: grid can only be scaled down by a factor of its dimensions")
)
