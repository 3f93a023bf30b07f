package series

import "github.com/tsviz/downsample/errs"

// Validate checks the input contract shared by both downsampling
// variants: the x column must be non-decreasing and the target count
// must not exceed the series length.
//
// The remaining checks (identity short-circuit on nOut == len(s), the
// minimum of 3 output points) depend on the call outcome and live with
// the entry points.
//
// Parameters:
//   - s: Input series
//   - nOut: Target output point count
//
// Returns:
//   - error: errs.ErrNotSorted or errs.ErrOutOfRange, nil when valid
func Validate(s Series, nOut int) error {
	for i := 1; i < len(s); i++ {
		if s[i].X < s[i-1].X {
			return errs.ErrNotSorted
		}
	}

	if nOut > len(s) {
		return errs.ErrOutOfRange
	}

	return nil
}
