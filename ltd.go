package downsample

import (
	"github.com/tsviz/downsample/internal/bucket"
	"github.com/tsviz/downsample/internal/fit"
	"github.com/tsviz/downsample/internal/pool"
	"github.com/tsviz/downsample/series"
)

// refineDivisor sets the iteration budget of the dynamic variant:
// len(s) / (nOut * refineDivisor) passes. The budget is fixed rather
// than convergence-checked; series shorter than nOut*10 get zero passes
// and keep the static partition.
const refineDivisor = 10

// ltd runs the dynamic variant: start from the static partition, bias
// bucket boundaries toward regions with poor linear fit, then select
// representatives the same way as the static variant.
func ltd(s series.Series, nOut int) series.Series {
	ranges := refine(s, bucket.Partition(len(s)-2, nOut-2))

	return selectPoints(s, ranges)
}

// refine runs the fixed budget of split/merge passes. Each pass scores
// every bucket on one snapshot, splits the highest-scoring bucket with
// at least 2 points, and merges the adjacent pair with the lowest score
// sum, keeping the bucket count constant.
func refine(s series.Series, ranges []bucket.Range) []bucket.Range {
	nOut := len(ranges) + 2
	iterations := len(s) / (nOut * refineDivisor)
	if iterations == 0 {
		return ranges
	}

	scores, release := pool.GetFloat64Slice(len(ranges))
	defer release()

	// Window scratch reused across buckets; worst case is the whole
	// interior plus both boundary neighbors.
	window := make(series.Series, 0, len(s))

	for iter := 0; iter < iterations; iter++ {
		for i, r := range ranges {
			window = appendWindow(window[:0], s, r)
			scores[i] = fit.StdErr(window)
		}

		splitIdx := splitTarget(ranges, scores)
		mergeIdx := mergeTarget(scores, splitIdx)
		if mergeIdx < 0 {
			// No adjacent pair disjoint from the split target; the pass
			// would corrupt the partition, and repeating it cannot
			// change the outcome.
			break
		}

		ranges = bucket.Resize(ranges, splitIdx, mergeIdx)
	}

	return ranges
}

// appendWindow appends the bucket's points augmented with its true
// boundary neighbors: the interior point just before the bucket (the
// series' first point for the first bucket) and the one just after (the
// series' last point for the last bucket). Ranges are contiguous, so
// the previous bucket's last point is interior[r.Start-1] and the next
// bucket's first point is interior[r.End].
func appendWindow(window, s series.Series, r bucket.Range) series.Series {
	interior := s[1 : len(s)-1]

	if r.Start > 0 {
		window = append(window, interior[r.Start-1])
	} else {
		window = append(window, s[0])
	}

	window = append(window, interior[r.Start:r.End]...)

	if r.End < len(interior) {
		window = append(window, interior[r.End])
	} else {
		window = append(window, s[len(s)-1])
	}

	return window
}

// splitTarget returns the highest-scoring bucket with at least 2 points,
// preferring the lowest index on ties. If no bucket is splittable (not
// reachable through the public entry points, which guarantee the
// interior outnumbers the buckets) it falls back to the globally
// highest-scoring bucket.
func splitTarget(ranges []bucket.Range, scores []float64) int {
	best := -1
	for i, r := range ranges {
		if r.Len() < 2 {
			continue
		}
		if best < 0 || scores[i] > scores[best] {
			best = i
		}
	}
	if best >= 0 {
		return best
	}

	for i, sc := range scores {
		if best < 0 || sc > scores[best] {
			best = i
		}
	}

	return best
}

// mergeTarget returns the start index of the adjacent pair with the
// minimum score sum among pairs disjoint from the split target, or -1
// when no such pair exists. Restricting to disjoint pairs keeps the
// split and merge of one pass from touching the same bucket, preserving
// the exact-cover partition invariant.
func mergeTarget(scores []float64, splitIdx int) int {
	best := -1
	bestSum := 0.0
	for j := 0; j+1 < len(scores); j++ {
		if j == splitIdx || j+1 == splitIdx {
			continue
		}
		sum := scores[j] + scores[j+1]
		if best < 0 || sum < bestSum {
			best, bestSum = j, sum
		}
	}

	return best
}
