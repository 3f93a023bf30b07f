// Package downsample reduces a large ordered 2-D time series to a fixed
// number of points for visual rendering, preserving peaks, troughs and
// trend changes better than naive decimation.
//
// Two variants share the same point-selection rule (within each bucket,
// pick the point forming the largest triangle with the previous output
// point and the next bucket's centroid):
//
//   - LTTB: static near-equal buckets (Largest-Triangle-Three-Buckets)
//   - LTD: buckets iteratively resized toward regions of high local
//     nonlinearity, measured by linear-regression fit error
//     (Largest-Triangle-Dynamic)
//
// Reference: Sveinn Steinarsson. 2013. Downsampling Time Series for
// Visual Representation. MSc thesis. University of Iceland.
//
// # Basic Usage
//
//	import "github.com/tsviz/downsample"
//
//	out, err := downsample.LTTB(pts, 500)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Row-form input ([][]float64 with [x, y] rows) is accepted through the
// Rows variants:
//
//	rows, err := downsample.LTDRows(rawRows, 500)
//
// The returned series always has exactly nOut points, with the first
// and last input points pinned at both ends and the global maximum and
// minimum y points preserved.
//
// For shipping results to a rendering layer, the frame subpackage
// serializes a downsampled series into a compact binary frame with
// optional compression.
package downsample

import (
	"slices"

	"github.com/tsviz/downsample/errs"
	"github.com/tsviz/downsample/format"
	"github.com/tsviz/downsample/internal/options"
	"github.com/tsviz/downsample/series"
)

// Point is a single (x, y) sample. Alias of series.Point.
type Point = series.Point

// Series is an ordered sequence of points. Alias of series.Series.
type Series = series.Series

// LTTB downsamples the series to exactly nOut points using static
// near-equal buckets.
//
// Parameters:
//   - data: Input series, sorted on X (non-decreasing)
//   - nOut: Target output length, 3 <= nOut <= len(data)
//
// Returns:
//   - Series: nOut selected points, endpoints pinned
//   - error: errs.ErrNotSorted, errs.ErrOutOfRange or errs.ErrTooFewPoints
//
// When nOut equals the series length a copy of the input is returned
// unchanged.
func LTTB(data Series, nOut int) (Series, error) {
	if err := validate(data, nOut); err != nil {
		return nil, err
	}
	if nOut == len(data) {
		return slices.Clone(data), nil
	}

	return lttb(data, nOut), nil
}

// LTD downsamples the series to exactly nOut points using dynamic
// buckets, refined toward regions with high linear-fit error.
//
// The refinement budget is len(data)/(nOut*10) iterations; small series
// get zero iterations, making LTD identical to LTTB for them.
//
// Parameters and error behavior match LTTB.
func LTD(data Series, nOut int) (Series, error) {
	if err := validate(data, nOut); err != nil {
		return nil, err
	}
	if nOut == len(data) {
		return slices.Clone(data), nil
	}

	return ltd(data, nOut), nil
}

// LTTBRows is LTTB over row-form input. Each row must hold exactly
// [x, y]; otherwise errs.ErrShapeMismatch is returned.
func LTTBRows(rows [][]float64, nOut int) ([][]float64, error) {
	s, err := series.FromRows(rows)
	if err != nil {
		return nil, err
	}

	out, err := LTTB(s, nOut)
	if err != nil {
		return nil, err
	}

	return out.Rows(), nil
}

// LTDRows is LTD over row-form input. Each row must hold exactly
// [x, y]; otherwise errs.ErrShapeMismatch is returned.
func LTDRows(rows [][]float64, nOut int) ([][]float64, error) {
	s, err := series.FromRows(rows)
	if err != nil {
		return nil, err
	}

	out, err := LTD(s, nOut)
	if err != nil {
		return nil, err
	}

	return out.Rows(), nil
}

type config struct {
	method format.MethodType
}

// Option configures the Downsample convenience entry point.
type Option = options.Option[*config]

// WithMethod selects the downsampling variant. Defaults to
// format.MethodLTTB.
func WithMethod(method format.MethodType) Option {
	return options.New(func(cfg *config) error {
		switch method {
		case format.MethodLTTB, format.MethodLTD:
			cfg.method = method
			return nil
		default:
			return errs.ErrUnknownMethod
		}
	})
}

// Downsample runs the configured variant over the series. Without
// options it behaves exactly like LTTB.
//
// Example:
//
//	out, err := downsample.Downsample(pts, 500,
//	    downsample.WithMethod(format.MethodLTD),
//	)
func Downsample(data Series, nOut int, opts ...Option) (Series, error) {
	cfg := &config{method: format.MethodLTTB}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.method == format.MethodLTD {
		return LTD(data, nOut)
	}

	return LTTB(data, nOut)
}

// validate applies the shared input contract. The check order follows
// the reference behavior: sortedness and range first, then the identity
// short-circuit (handled by the callers), then the minimum output size.
func validate(data Series, nOut int) error {
	if err := series.Validate(data, nOut); err != nil {
		return err
	}
	if nOut < 3 && nOut != len(data) {
		return errs.ErrTooFewPoints
	}

	return nil
}
