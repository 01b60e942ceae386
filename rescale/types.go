// Package rescale defines the Scale descriptor, options, and the boundary
// parser that normalizes the descriptor's textual forms.
package rescale

import (
	"fmt"
	"strconv"
	"strings"
)

// Scale is a pair of signed integer factors, one per axis. Both components
// must point in the same direction: both positive (upscale), both negative
// (downscale), or both zero (identity). Mixed signs are rejected by Rescale.
type Scale struct {
	// Row is the factor applied along the row (vertical) axis.
	Row int
	// Col is the factor applied along the column (horizontal) axis.
	Col int
}

// Uniform returns a Scale applying the same factor to both axes.
func Uniform(n int) Scale {
	return Scale{Row: n, Col: n}
}

// PerAxis returns a Scale with explicit per-axis factors.
func PerAxis(row, col int) Scale {
	return Scale{Row: row, Col: col}
}

// String renders a Scale in the form accepted by ParseScale.
func (s Scale) String() string {
	if s.Row == s.Col {
		return strconv.Itoa(s.Row)
	}

	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

// ParseScale normalizes the textual dual shape of a scale descriptor:
// a single integer ("3", "-2") applied to both axes, or an explicit
// comma-separated pair ("3,2"). Non-integer tokens fail with ErrInvalidScale.
func ParseScale(text string) (Scale, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return Scale{}, fmt.Errorf("parse %q: %w", text, ErrInvalidScale)
		}

		return Uniform(n), nil
	case 2:
		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return Scale{}, fmt.Errorf("parse %q: %w", text, ErrInvalidScale)
		}
		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return Scale{}, fmt.Errorf("parse %q: %w", text, ErrInvalidScale)
		}

		return PerAxis(row, col), nil
	default:
		return Scale{}, fmt.Errorf("parse %q: %w", text, ErrInvalidScale)
	}
}

// Options contains tunable parameters for Rescale.
type Options struct {
	// Strict demands that a downscale factor evenly divides the matching
	// grid dimension. When false, non-divisible grids are virtually
	// zero-padded and the boundary cells corrected afterward.
	Strict bool
}

// DefaultOptions returns an Options with default settings: Strict=true.
func DefaultOptions() Options {
	return Options{Strict: true}
}
