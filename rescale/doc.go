// Package rescale resamples a 2D grid of numeric samples by an integer
// factor, in either direction.
//
// What:
//
//   - Rescale takes a rectangular [][]float64 grid and a signed Scale pair.
//   - Positive factors upscale: every input cell becomes a Row×Col block of
//     identical values (block replication).
//   - Negative factors downscale: every |Row|×|Col| block collapses into its
//     arithmetic mean (block averaging).
//   - A zero Scale is the identity and returns a copy of the input.
//
// Why:
//
//   - Raster resampling: move a tile between resolutions that are integer
//     multiples of one another.
//   - Coarsening simulation grids: aggregate fine samples into mean cells.
//   - Test-data synthesis: blow a small fixture up into a large uniform grid.
//
// Strict vs. lenient downscaling:
//
//   - Strict (default) requires the factor to evenly divide the matching
//     grid dimension and fails with ErrNonDivisible otherwise.
//   - Lenient virtually pads the grid with zero rows/columns on the bottom
//     and right until it divides evenly, averages over the padded blocks,
//     then corrects the boundary cells so each one is the true mean of only
//     the real samples that map into it. Padding never leaks into a result.
//
// Complexity:
//
//   - Rescale: O(rows×cols) time over the larger of input and output,
//     Memory: O(output).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidScale: a textual scale does not parse as an integer pair.
//   - ErrMixedDirection: row and column factors point in opposite directions.
//   - ErrNonDivisible: strict downscale with a non-divisible dimension.
package rescale
