package bucket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition_NearEqualSizes(t *testing.T) {
	ranges := Partition(8, 3)
	require.Equal(t, []Range{{0, 3}, {3, 6}, {6, 8}}, ranges,
		"earlier buckets take the remainder")
	require.True(t, Covers(ranges, 8))
}

func TestPartition_EvenSplit(t *testing.T) {
	ranges := Partition(10, 5)
	for _, r := range ranges {
		require.Equal(t, 2, r.Len())
	}
	require.True(t, Covers(ranges, 10))
}

func TestPartition_SingletonBuckets(t *testing.T) {
	ranges := Partition(4, 4)
	require.Len(t, ranges, 4)
	for i, r := range ranges {
		require.Equal(t, Range{Start: i, End: i + 1}, r)
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{Start: 2, End: 5}

	require.False(t, r.Contains(1))
	require.True(t, r.Contains(2))
	require.True(t, r.Contains(4))
	require.False(t, r.Contains(5), "End is exclusive")
}

func TestResize_SplitBeforeMerge(t *testing.T) {
	ranges := Partition(12, 4) // {0,3} {3,6} {6,9} {9,12}

	out := Resize(ranges, 0, 2)
	require.Equal(t, []Range{{0, 2}, {2, 3}, {3, 6}, {6, 12}}, out)
	require.Len(t, out, len(ranges))
	require.True(t, Covers(out, 12))
}

func TestResize_MergeBeforeSplit(t *testing.T) {
	ranges := Partition(12, 4)

	out := Resize(ranges, 3, 0)
	require.Equal(t, []Range{{0, 6}, {6, 9}, {9, 11}, {11, 12}}, out)
	require.Len(t, out, len(ranges))
	require.True(t, Covers(out, 12))
}

func TestResize_OddSplitFirstHalfLarger(t *testing.T) {
	ranges := []Range{{0, 5}, {5, 7}, {7, 9}}

	out := Resize(ranges, 0, 1)
	require.Equal(t, []Range{{0, 3}, {3, 5}, {5, 9}}, out)
	require.True(t, Covers(out, 9))
}

func TestCovers(t *testing.T) {
	require.True(t, Covers([]Range{{0, 2}, {2, 5}}, 5))
	require.False(t, Covers([]Range{{0, 2}, {3, 5}}, 5), "gap")
	require.False(t, Covers([]Range{{0, 3}, {2, 5}}, 5), "overlap")
	require.False(t, Covers([]Range{{0, 2}, {2, 4}}, 5), "short")
}
