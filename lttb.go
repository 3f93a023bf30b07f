package downsample

import (
	"math"

	"github.com/tsviz/downsample/internal/bucket"
	"github.com/tsviz/downsample/series"
)

// lttb runs the static variant: partition the interior into nOut-2
// near-equal buckets and select one representative per bucket.
// Validation and the identity short-circuit have already happened.
func lttb(s series.Series, nOut int) series.Series {
	ranges := bucket.Partition(len(s)-2, nOut-2)

	return selectPoints(s, ranges)
}

// selectPoints assembles the output for a given bucket partition. This
// is a strictly left-to-right fold: the triangle for bucket i uses the
// point already selected for position i, so position i+1 can only be
// resolved after position i is fixed.
func selectPoints(s series.Series, ranges []bucket.Range) series.Series {
	out := make(series.Series, len(ranges)+2)
	out[0] = s[0]
	out[len(out)-1] = s[len(s)-1]

	// Interior index i maps to series index i+1. Extrema on the series
	// endpoints never fall inside a bucket and need no special casing.
	maxIdx, minIdx := s.ArgExtrema()
	interior := s[1 : len(s)-1]

	for i, r := range ranges {
		switch {
		case r.Contains(maxIdx - 1):
			// The global maximum overrides triangle selection. When the
			// global minimum shares the bucket it is dropped entirely;
			// the reference behavior does not re-home it.
			out[i+1] = s[maxIdx]
		case r.Contains(minIdx - 1):
			out[i+1] = s[minIdx]
		default:
			var next series.Point
			if i < len(ranges)-1 {
				nr := ranges[i+1]
				next = centroid(interior[nr.Start:nr.End])
			} else {
				next = s[len(s)-1]
			}

			out[i+1] = largestTriangle(interior[r.Start:r.End], out[i], next)
		}
	}

	return out
}

// largestTriangle returns the candidate maximizing the triangle area
// with the previous output point and the next anchor. Ties resolve to
// the first maximal candidate in bucket order.
func largestTriangle(candidates []series.Point, prev, next series.Point) series.Point {
	best := 0
	bestArea := -1.0
	for i, p := range candidates {
		if area := triangleArea(prev, p, next); area > bestArea {
			best, bestArea = i, area
		}
	}

	return candidates[best]
}

// triangleArea computes the shoelace area of the triangle (a, b, c).
func triangleArea(a, b, c series.Point) float64 {
	return 0.5 * math.Abs((a.X-c.X)*(b.Y-a.Y)-(a.X-b.X)*(c.Y-a.Y))
}

// centroid returns the coordinate-wise mean of the points.
func centroid(pts []series.Point) series.Point {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(pts))

	return series.Point{X: cx / n, Y: cy / n}
}
