// Package bucket maintains the contiguous bucket partition over the
// interior of a series (all points except the first and last).
//
// Buckets are stored as half-open index ranges into the interior slice
// rather than as copies of point data, so the dynamic refiner can split
// and merge buckets without copying or aliasing points. The partition
// invariant holds after every operation: ranges are ordered,
// non-overlapping, and cover the interior exactly once.
package bucket

// Range is a half-open [Start, End) window over the interior index space.
type Range struct {
	Start int
	End   int
}

// Len returns the number of interior points covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether the interior index i falls within the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// split returns the two near-equal halves of the range, the first half
// taking the extra element for odd lengths.
func (r Range) split() (Range, Range) {
	mid := r.Start + (r.Len()+1)/2

	return Range{Start: r.Start, End: mid}, Range{Start: mid, End: r.End}
}

// Partition splits n interior points into k contiguous near-equal
// ranges. Sizes differ by at most one element and earlier ranges take
// the remainder, matching the usual "split into k nearly-equal
// contiguous parts" convention.
//
// Callers guarantee 1 <= k <= n, which the entry-point validation
// establishes (nOut <= N implies interior >= k).
func Partition(n, k int) []Range {
	ranges := make([]Range, k)
	size := n / k
	rem := n % k

	start := 0
	for i := range ranges {
		length := size
		if i < rem {
			length++
		}
		ranges[i] = Range{Start: start, End: start + length}
		start += length
	}

	return ranges
}

// Resize applies one refinement pass to the partition: the range at
// splitIdx is replaced by its two near-equal halves and the adjacent
// pair (mergeIdx, mergeIdx+1) is replaced by its union. Both indices
// refer to the input partition and must be disjoint (mergeIdx and
// mergeIdx+1 both differ from splitIdx), which keeps the range count
// and the exact-cover invariant intact.
func Resize(ranges []Range, splitIdx, mergeIdx int) []Range {
	out := make([]Range, 0, len(ranges))
	for i := 0; i < len(ranges); i++ {
		switch i {
		case splitIdx:
			a, b := ranges[i].split()
			out = append(out, a, b)
		case mergeIdx:
			out = append(out, Range{Start: ranges[i].Start, End: ranges[i+1].End})
			i++ // skip the merged partner
		default:
			out = append(out, ranges[i])
		}
	}

	return out
}

// Covers reports whether the partition covers [0, n) exactly once in
// order. Used by tests to assert the partition invariant.
func Covers(ranges []Range, n int) bool {
	next := 0
	for _, r := range ranges {
		if r.Start != next || r.End < r.Start {
			return false
		}
		next = r.End
	}

	return next == n
}
