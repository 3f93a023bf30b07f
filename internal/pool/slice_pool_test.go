package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	s, cleanup := GetFloat64Slice(100)
	require.Len(t, s, 100)

	for i := range s {
		s[i] = float64(i)
	}
	cleanup()

	// A fresh slice of any size is usable after cleanup.
	s2, cleanup2 := GetFloat64Slice(10)
	defer cleanup2()
	require.Len(t, s2, 10)
}

func TestGetFloat64Slice_Zero(t *testing.T) {
	s, cleanup := GetFloat64Slice(0)
	defer cleanup()
	require.Empty(t, s)
}

func TestGetByteSlice(t *testing.T) {
	s, cleanup := GetByteSlice(64)
	defer cleanup()

	require.Empty(t, s)
	require.GreaterOrEqual(t, cap(s), 64)

	s = append(s, 1, 2, 3)
	require.Len(t, s, 3)
}
