// Package raster: ESRI ASCII Grid codec.
package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// required header keys, in canonical output order.
var headerOrder = []string{"ncols", "nrows", "xllcorner", "yllcorner", "cellsize"}

// Decode parses an ESRI ASCII Grid from rd. Header keys are matched
// case-insensitively; data rows run north to south. Trailing content after
// nrows×ncols values is ignored.
func Decode(rd io.Reader) (*Raster, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	// Header section: "key value" lines until the first data row.
	hdr := make(map[string]float64, len(headerOrder)+1)
	var fields []string
	for sc.Scan() {
		fields = strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !isHeaderKey(fields[0]) {
			break // fields now holds the first data row
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("header line %q: %w", sc.Text(), ErrBadHeader)
		}
		key := strings.ToLower(fields[0])
		if !knownHeaderKey(key) {
			return nil, fmt.Errorf("header key %q: %w", fields[0], ErrBadHeader)
		}
		if _, dup := hdr[key]; dup {
			return nil, fmt.Errorf("duplicate header key %q: %w", fields[0], ErrBadHeader)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("header value %q for %q: %w", fields[1], fields[0], ErrBadHeader)
		}
		hdr[key] = v
		fields = nil
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("raster: read ASCII grid: %w", err)
	}
	for _, key := range headerOrder {
		if _, ok := hdr[key]; !ok {
			return nil, fmt.Errorf("missing header key %q: %w", key, ErrBadHeader)
		}
	}

	ncols, err := headerDim(hdr, "ncols")
	if err != nil {
		return nil, err
	}
	nrows, err := headerDim(hdr, "nrows")
	if err != nil {
		return nil, err
	}

	out := &Raster{
		Ncols:       ncols,
		Nrows:       nrows,
		Xllcorner:   hdr["xllcorner"],
		Yllcorner:   hdr["yllcorner"],
		CellSize:    hdr["cellsize"],
		NoDataValue: DefaultNoData,
		Data:        make([][]float64, nrows),
	}
	if v, ok := hdr["nodata_value"]; ok {
		out.NoDataValue = v
	}
	for r := range out.Data {
		out.Data[r] = make([]float64, ncols)
	}

	// Data section: nrows×ncols whitespace-separated values, row-major.
	need, count := nrows*ncols, 0
	for {
		for _, tok := range fields {
			if count == need {
				return out, nil
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("value %q at index %d: %w", tok, count, ErrBadCell)
			}
			out.Data[count/ncols][count%ncols] = v
			count++
		}
		if !sc.Scan() {
			break
		}
		fields = strings.Fields(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("raster: read ASCII grid: %w", err)
	}
	if count < need {
		return nil, fmt.Errorf("got %d of %d values: %w", count, need, ErrShortGrid)
	}

	return out, nil
}

// Encode writes r to w in ESRI ASCII Grid form, one grid row per line.
func Encode(w io.Writer, r *Raster) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ncols %d\n", r.Ncols)
	fmt.Fprintf(bw, "nrows %d\n", r.Nrows)
	fmt.Fprintf(bw, "xllcorner %s\n", formatValue(r.Xllcorner))
	fmt.Fprintf(bw, "yllcorner %s\n", formatValue(r.Yllcorner))
	fmt.Fprintf(bw, "cellsize %s\n", formatValue(r.CellSize))
	fmt.Fprintf(bw, "NODATA_value %s\n", formatValue(r.NoDataValue))
	for _, row := range r.Data {
		for c, v := range row {
			if c > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("raster: write ASCII grid: %w", err)
				}
			}
			if _, err := bw.WriteString(formatValue(v)); err != nil {
				return fmt.Errorf("raster: write ASCII grid: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("raster: write ASCII grid: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("raster: write ASCII grid: %w", err)
	}

	return nil
}

// ReadFile decodes the ASCII grid at path.
func ReadFile(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile encodes r to path, truncating any existing file.
func WriteFile(path string, r *Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err = Encode(f, r); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("raster: %w", err)
	}

	return nil
}

// isHeaderKey reports whether tok opens a header line rather than a data row;
// data tokens start with a digit, sign, or decimal point.
func isHeaderKey(tok string) bool {
	c := tok[0]

	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func knownHeaderKey(key string) bool {
	if key == "nodata_value" {
		return true
	}
	for _, k := range headerOrder {
		if key == k {
			return true
		}
	}

	return false
}

// headerDim extracts a positive integer dimension from the parsed header.
func headerDim(hdr map[string]float64, key string) (int, error) {
	v := hdr[key]
	if v < 1 || v != math.Trunc(v) {
		return 0, fmt.Errorf("%s=%g must be a positive integer: %w", key, v, ErrBadHeader)
	}

	return int(v), nil
}

// formatValue renders a float the shortest way that round-trips.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
