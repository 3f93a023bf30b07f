// Package fit provides the least-squares linear fit statistic used to
// score bucket windows during dynamic refinement.
package fit

import (
	"math"

	"github.com/tsviz/downsample/series"
)

// StdErr returns the standard error of the slope of the least-squares
// line through the given points. A high value indicates the window is
// poorly described by a line, i.e. high local nonlinearity.
//
// Degenerate windows score 0 rather than failing: fewer than three
// points, zero x-variance (all points sharing one x value), or a
// non-finite intermediate all yield 0. Scoring such windows as
// perfectly linear makes them merge candidates and never split winners,
// which keeps split/merge selection total and deterministic.
func StdErr(pts []series.Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}

	var sumX, sumY float64
	for _, p := range pts {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, syy, sxy float64
	for _, p := range pts {
		dx := p.X - meanX
		dy := p.Y - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}

	if sxx == 0 {
		return 0
	}

	// Residual sum of squares of the fitted line; clamp tiny negative
	// values produced by floating-point cancellation.
	rss := syy - sxy*sxy/sxx
	if rss < 0 {
		rss = 0
	}

	se := math.Sqrt(rss / float64(n-2) / sxx)
	if math.IsNaN(se) || math.IsInf(se, 0) {
		return 0
	}

	return se
}
