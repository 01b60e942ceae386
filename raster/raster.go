// Package raster defines the Raster type and its resampling binding.
package raster

import (
	"errors"
	"fmt"

	"github.com/terralab/gridscale/rescale"
	"github.com/terralab/gridscale/srs"
)

// DefaultNoData is the nodata marker assumed when a file omits NODATA_value.
const DefaultNoData = -9999

// Sentinel errors for raster operations.
var (
	// ErrBadHeader indicates a missing, duplicate, or non-numeric header field.
	ErrBadHeader = errors.New("raster: invalid ASCII grid header")
	// ErrBadCell indicates a data token that does not parse as a number.
	ErrBadCell = errors.New("raster: invalid data value")
	// ErrShortGrid indicates fewer data values than nrows×ncols.
	ErrShortGrid = errors.New("raster: data section shorter than nrows*ncols")
	// ErrAnisotropicScale indicates per-axis factors that differ; ASCII grids
	// carry a single square cell size.
	ErrAnisotropicScale = errors.New("raster: per-axis factors must match for square cells")
)

// Raster is a single-band grid of samples with ASCII Grid georeferencing.
// Data[r][c] addresses row r (north to south) and column c (west to east).
type Raster struct {
	Ncols, Nrows         int
	Xllcorner, Yllcorner float64
	CellSize             float64
	NoDataValue          float64
	SRS                  srs.SRS
	Data                 [][]float64
}

// Dims returns the grid dimensions as (cols, rows).
func (r *Raster) Dims() (c, rows int) {
	return r.Ncols, r.Nrows
}

// Z returns the sample at column c, row rr.
// It panics if c or rr are out of bounds for the grid.
func (r *Raster) Z(c, rr int) float64 {
	return r.Data[rr][c]
}

// X returns the west-east coordinate of the center of column c.
func (r *Raster) X(c int) float64 {
	return r.Xllcorner + (float64(c)+0.5)*r.CellSize
}

// Y returns the south-north coordinate of the center of row rr.
func (r *Raster) Y(rr int) float64 {
	return r.Yllcorner + (float64(r.Nrows-rr)-0.5)*r.CellSize
}

// Rescale resamples the raster by the integer factor in scale and returns a
// new Raster; the receiver is unchanged. Both factors must match because the
// format has one square cell size (ErrAnisotropicScale otherwise). Upscaling
// divides the cell size by the factor, downscaling multiplies it, so the
// covered extent stays put. A lenient downscale of a non-divisible grid pads
// on the south and east edges, which moves Yllcorner south by the padded rows.
func (r *Raster) Rescale(scale rescale.Scale, opts rescale.Options) (*Raster, error) {
	if scale.Row != scale.Col {
		return nil, fmt.Errorf("factors (%d,%d): %w", scale.Row, scale.Col, ErrAnisotropicScale)
	}

	data, err := rescale.Rescale(r.Data, scale, opts)
	if err != nil {
		return nil, err
	}

	out := &Raster{
		Xllcorner:   r.Xllcorner,
		Yllcorner:   r.Yllcorner,
		CellSize:    r.CellSize,
		NoDataValue: r.NoDataValue,
		SRS:         r.SRS,
		Nrows:       len(data),
		Ncols:       len(data[0]),
		Data:        data,
	}
	switch {
	case scale.Row > 0:
		out.CellSize = r.CellSize / float64(scale.Row)
	case scale.Row < 0:
		factor := -scale.Row
		out.CellSize = r.CellSize * float64(factor)
		if pad := out.Nrows*factor - r.Nrows; pad > 0 {
			out.Yllcorner -= float64(pad) * r.CellSize
		}
	}

	return out, nil
}
