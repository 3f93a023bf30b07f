// Package series defines the point and series types shared by the
// downsampling algorithms and the frame codec, along with input
// validation and row/column conversion helpers.
package series

import "github.com/tsviz/downsample/errs"

// Point is a single sample of a 2-D time series. X is the independent
// coordinate (typically time) and Y the dependent value.
type Point struct {
	X float64
	Y float64
}

// Series is an ordered sequence of points with non-decreasing X values.
// A Series is treated as read-only input once validated; the algorithms
// never mutate it.
type Series []Point

// FromRows converts row-form input (an N×2 numeric array) into a Series.
//
// Every row must have exactly 2 columns; otherwise errs.ErrShapeMismatch
// is returned. Sortedness is not checked here, see Validate.
//
// Parameters:
//   - rows: Input rows, each holding [x, y]
//
// Returns:
//   - Series: The converted series
//   - error: errs.ErrShapeMismatch if any row is not 2 columns wide
func FromRows(rows [][]float64) (Series, error) {
	s := make(Series, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, errs.ErrShapeMismatch
		}
		s[i] = Point{X: row[0], Y: row[1]}
	}

	return s, nil
}

// Rows converts the series back into row form, one [x, y] row per point.
func (s Series) Rows() [][]float64 {
	rows := make([][]float64, len(s))
	for i, p := range s {
		rows[i] = []float64{p.X, p.Y}
	}

	return rows
}

// Columns returns the X and Y coordinates as separate columns.
//
// The returned slices are newly allocated and owned by the caller. This
// is the layout the frame codec encodes.
func (s Series) Columns() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return xs, ys
}

// ArgExtrema returns the indices of the points holding the global
// maximum and minimum Y values. Ties resolve to the first occurrence.
//
// The result is undefined for an empty series; callers validate first.
func (s Series) ArgExtrema() (maxIdx, minIdx int) {
	for i, p := range s {
		if p.Y > s[maxIdx].Y {
			maxIdx = i
		}
		if p.Y < s[minIdx].Y {
			minIdx = i
		}
	}

	return maxIdx, minIdx
}
