package rescale

import "fmt"

// Rescale resizes grid by the integer factors in scale and returns a newly
// allocated result; the input is never mutated and may be shared freely
// between concurrent calls.
//
// Behavior by sign of the factors:
//  1. Both zero: identity. A deep copy of the input is returned.
//  2. Both positive: block replication. Output is rows*scale.Row by
//     cols*scale.Col and cell (r,c) holds grid[r/scale.Row][c/scale.Col].
//  3. Both negative: block averaging. Each |Row|×|Col| block collapses to
//     its arithmetic mean. With opts.Strict the factors must divide the
//     grid dimensions exactly; otherwise the grid is virtually zero-padded
//     bottom/right and the boundary cells re-averaged over real samples only.
//  4. Opposite signs: ErrMixedDirection, before any allocation.
//
// Complexity: O(max(input, output)) time, O(output) memory.
func Rescale(grid [][]float64, scale Scale, opts Options) ([][]float64, error) {
	rows, cols, err := dims(grid)
	if err != nil {
		return nil, err
	}

	switch {
	case scale.Row == 0 && scale.Col == 0:
		return clone(grid, rows, cols), nil
	case scale.Row > 0 && scale.Col > 0:
		return upscale(grid, rows, cols, scale.Row, scale.Col), nil
	case scale.Row < 0 && scale.Col < 0:
		return downscale(grid, rows, cols, -scale.Row, -scale.Col, opts.Strict)
	default:
		return nil, fmt.Errorf("factors (%d,%d): %w", scale.Row, scale.Col, ErrMixedDirection)
	}
}

// dims validates that grid is non-empty and rectangular and returns its shape.
func dims(grid [][]float64) (rows, cols int, err error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	rows, cols = len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, cols, nil
}

// clone deep-copies grid so the identity path still returns a fresh buffer.
func clone(grid [][]float64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]float64, cols)
		copy(out[r], grid[r])
	}

	return out
}

// upscale replicates every input cell into a ys×xs block of identical values.
func upscale(grid [][]float64, rows, cols, ys, xs int) [][]float64 {
	out := make([][]float64, rows*ys)
	for r := range out {
		row := make([]float64, cols*xs)
		src := grid[r/ys]
		for c := range row {
			row[c] = src[c/xs]
		}
		out[r] = row
	}

	return out
}

// downscale collapses every ys×xs block of grid into its arithmetic mean.
//
// Strict mode fails with ErrNonDivisible unless ys divides rows and xs
// divides cols. Lenient mode virtually pads the grid with zero rows/columns
// on the bottom and right until it divides evenly, averages over the padded
// blocks, then rescales the boundary cells so the injected zeros drop back
// out of the denominator: every output cell ends up as the mean of exactly
// the real samples that map into its block.
func downscale(grid [][]float64, rows, cols, ys, xs int, strict bool) ([][]float64, error) {
	var yPad, xPad int
	if strict {
		if rows%ys != 0 || cols%xs != 0 {
			return nil, fmt.Errorf("%dx%d grid, factors (%d,%d): %w", rows, cols, ys, xs, ErrNonDivisible)
		}
	} else {
		if rem := rows % ys; rem != 0 {
			yPad = ys - rem
		}
		if rem := cols % xs; rem != 0 {
			xPad = xs - rem
		}
	}

	outRows, outCols := (rows+yPad)/ys, (cols+xPad)/xs
	out := make([][]float64, outRows)
	for i := range out {
		out[i] = make([]float64, outCols)
	}

	// Accumulate block sums; the virtual padding contributes nothing.
	for r := 0; r < rows; r++ {
		dst := out[r/ys]
		for c := 0; c < cols; c++ {
			dst[c/xs] += grid[r][c]
		}
	}
	denom := float64(ys * xs)
	for i := range out {
		for j := range out[i] {
			out[i][j] /= denom
		}
	}

	// Boundary correction: re-average the padded edge cells over real
	// samples only. The shared bottom-right cell is excluded from both
	// single-axis passes and corrected once for both axes together.
	if yPad > 0 {
		f := float64(ys) / float64(ys-yPad)
		for j := 0; j < outCols-1; j++ {
			out[outRows-1][j] *= f
		}
	}
	if xPad > 0 {
		f := float64(xs) / float64(xs-xPad)
		for i := 0; i < outRows-1; i++ {
			out[i][outCols-1] *= f
		}
	}
	if yPad > 0 || xPad > 0 {
		out[outRows-1][outCols-1] *= float64(ys*xs) / float64((ys-yPad)*(xs-xPad))
	}

	return out, nil
}
