package raster_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terralab/gridscale/raster"
	"github.com/terralab/gridscale/rescale"
)

const sampleGrid = `ncols 4
nrows 2
xllcorner 0
yllcorner 0
cellsize 50
NODATA_value -9999
1 2 3 4
5 6 7 8
`

func decodeSample(t *testing.T) *raster.Raster {
	t.Helper()
	r, err := raster.Decode(strings.NewReader(sampleGrid))
	require.NoError(t, err)

	return r
}

//----------------------------------------------------------------------------//
// Codec
//----------------------------------------------------------------------------//

// TestDecode parses the reference file and checks every header field and cell.
func TestDecode(t *testing.T) {
	r := decodeSample(t)

	assert.Equal(t, 4, r.Ncols)
	assert.Equal(t, 2, r.Nrows)
	assert.Equal(t, 0.0, r.Xllcorner)
	assert.Equal(t, 0.0, r.Yllcorner)
	assert.Equal(t, 50.0, r.CellSize)
	assert.Equal(t, -9999.0, r.NoDataValue)
	assert.Equal(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}, r.Data)
}

// TestDecode_HeaderVariants checks case-insensitive keys, the optional nodata
// line, and values split across lines.
func TestDecode_HeaderVariants(t *testing.T) {
	in := "NCOLS 2\nNROWS 2\nXLLCORNER 1.5\nYLLCORNER -2.5\nCELLSIZE 10\n1 2 3\n4\n"
	r, err := raster.Decode(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, -9999.0, r.NoDataValue, "nodata defaults when the line is absent")
	assert.Equal(t, 1.5, r.Xllcorner)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, r.Data)
}

// TestDecode_Errors drives each malformed-input sentinel.
func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"MissingKey", "ncols 2\nnrows 2\ncellsize 10\n1 2 3 4\n", raster.ErrBadHeader},
		{"UnknownKey", "ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 10\nbands 3\n1 2 3 4\n", raster.ErrBadHeader},
		{"DuplicateKey", "ncols 2\nncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 10\n1 2 3 4\n", raster.ErrBadHeader},
		{"NonNumericValue", "ncols two\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 10\n1 2 3 4\n", raster.ErrBadHeader},
		{"FractionalDim", "ncols 2.5\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 10\n1 2 3 4\n", raster.ErrBadHeader},
		{"BadCell", "ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 10\n1 2 x 4\n", raster.ErrBadCell},
		{"ShortGrid", "ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 10\n1 2 3\n", raster.ErrShortGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := raster.Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestEncodeRoundTrip verifies Encode output decodes back to an equal raster.
func TestEncodeRoundTrip(t *testing.T) {
	orig := decodeSample(t)

	var buf bytes.Buffer
	require.NoError(t, raster.Encode(&buf, orig))

	back, err := raster.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

// TestCoordinates checks cell-center georeferencing.
func TestCoordinates(t *testing.T) {
	r := decodeSample(t)

	c, rows := r.Dims()
	assert.Equal(t, 4, c)
	assert.Equal(t, 2, rows)

	assert.Equal(t, 25.0, r.X(0))
	assert.Equal(t, 175.0, r.X(3))
	assert.Equal(t, 75.0, r.Y(0), "row 0 is the northernmost")
	assert.Equal(t, 25.0, r.Y(1))
	assert.Equal(t, 7.0, r.Z(2, 1))
}

//----------------------------------------------------------------------------//
// Rescaling
//----------------------------------------------------------------------------//

// TestRasterRescale_Up verifies the grid and cell size after block replication.
func TestRasterRescale_Up(t *testing.T) {
	r := decodeSample(t)

	out, err := r.Rescale(rescale.Uniform(2), rescale.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 8, out.Ncols)
	assert.Equal(t, 4, out.Nrows)
	assert.Equal(t, 25.0, out.CellSize, "cell size halves so the extent is unchanged")
	assert.Equal(t, 0.0, out.Yllcorner)
	assert.Equal(t, []float64{1, 1, 2, 2, 3, 3, 4, 4}, out.Data[0])

	// Input raster stays untouched.
	assert.Equal(t, 4, r.Ncols)
	assert.Equal(t, 50.0, r.CellSize)
}

// TestRasterRescale_Down verifies strict block averaging.
func TestRasterRescale_Down(t *testing.T) {
	r := decodeSample(t)

	out, err := r.Rescale(rescale.Uniform(-2), rescale.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, out.Ncols)
	assert.Equal(t, 1, out.Nrows)
	assert.Equal(t, 100.0, out.CellSize)
	assert.Equal(t, [][]float64{{3.5, 5.5}}, out.Data)
}

// TestRasterRescale_Lenient verifies the padded path: a 2×4 grid by -3 pads
// one row south and two columns east, so Yllcorner moves south by the padded
// rows while each output cell still averages real samples only.
func TestRasterRescale_Lenient(t *testing.T) {
	r := decodeSample(t)

	out, err := r.Rescale(rescale.Uniform(-3), rescale.Options{Strict: false})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Ncols)
	assert.Equal(t, 1, out.Nrows)
	assert.Equal(t, 150.0, out.CellSize)
	assert.Equal(t, -50.0, out.Yllcorner, "one padded row extends the extent south")
	assert.Equal(t, 0.0, out.Xllcorner)
	assert.InDelta(t, 4.0, out.Data[0][0], 1e-12)
	assert.InDelta(t, 6.0, out.Data[0][1], 1e-12)
}

// TestRasterRescale_Errors covers the raster-level guards around the core.
func TestRasterRescale_Errors(t *testing.T) {
	r := decodeSample(t)

	_, err := r.Rescale(rescale.PerAxis(2, 3), rescale.DefaultOptions())
	assert.ErrorIs(t, err, raster.ErrAnisotropicScale)

	_, err = r.Rescale(rescale.Uniform(-3), rescale.DefaultOptions())
	assert.ErrorIs(t, err, rescale.ErrNonDivisible)
}
