package series

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsviz/downsample/errs"
)

func TestFromRows(t *testing.T) {
	s, err := FromRows([][]float64{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	require.Equal(t, Series{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 3}}, s)
}

func TestFromRows_ShapeMismatch(t *testing.T) {
	_, err := FromRows([][]float64{{0, 1, 2}})
	require.ErrorIs(t, err, errs.ErrShapeMismatch)

	_, err = FromRows([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestRows_RoundTrip(t *testing.T) {
	rows := [][]float64{{0, 5}, {1.5, -2}, {3, 0}}

	s, err := FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, rows, s.Rows())
}

func TestColumns(t *testing.T) {
	s := Series{{X: 0, Y: 5}, {X: 1, Y: 6}, {X: 2, Y: 7}}

	xs, ys := s.Columns()
	require.Equal(t, []float64{0, 1, 2}, xs)
	require.Equal(t, []float64{5, 6, 7}, ys)
}

func TestArgExtrema(t *testing.T) {
	s := Series{{X: 0, Y: 3}, {X: 1, Y: 9}, {X: 2, Y: -4}, {X: 3, Y: 9}, {X: 4, Y: -4}}

	maxIdx, minIdx := s.ArgExtrema()
	require.Equal(t, 1, maxIdx, "first occurrence of the max wins")
	require.Equal(t, 2, minIdx, "first occurrence of the min wins")
}

func TestValidate(t *testing.T) {
	sorted := Series{{X: 0}, {X: 1}, {X: 1}, {X: 2}}
	require.NoError(t, Validate(sorted, 3), "equal consecutive x values are allowed")

	unsorted := Series{{X: 0}, {X: 2}, {X: 1}}
	require.ErrorIs(t, Validate(unsorted, 3), errs.ErrNotSorted)

	require.ErrorIs(t, Validate(sorted, 5), errs.ErrOutOfRange)
}
