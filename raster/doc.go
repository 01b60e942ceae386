// Package raster reads and writes ESRI ASCII Grid files and binds their
// sample matrices to the rescale package.
//
// What:
//
//   - Raster couples a [][]float64 sample grid with the georeferencing
//     header of the ASCII Grid format: dimensions, lower-left corner,
//     cell size, nodata marker, and an optional reference system.
//   - Decode / Encode convert between the textual format and Raster.
//   - Raster.Rescale resamples the grid by an integer factor and recomputes
//     the cell size so the raster keeps covering the same ground.
//
// Why:
//
//   - ASCII Grid is the simplest interchange format for single-band rasters
//     and needs no native library, which keeps this module pure Go.
//
// Format:
//
//	ncols 4
//	nrows 2
//	xllcorner 0.0
//	yllcorner 0.0
//	cellsize 50.0
//	NODATA_value -9999
//	1 2 3 4
//	5 6 7 8
//
// Header keys are case-insensitive; NODATA_value is optional and defaults
// to -9999. Data rows run north to south.
//
// Errors:
//
//   - ErrBadHeader: missing, duplicate, or non-numeric header fields.
//   - ErrBadCell: a data token that does not parse as a number.
//   - ErrShortGrid: fewer data values than nrows×ncols.
//   - ErrAnisotropicScale: per-axis factors differ; the format has a single
//     square cell size.
package raster
