// Package pool provides pooled scratch slices for the hot paths of the
// module: per-pass bucket scores in the dynamic refiner and payload
// assembly buffers in the frame codec.
package pool

import "sync"

var (
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
)

// GetFloat64Slice retrieves a float64 slice of the requested length from
// the pool, allocating a larger backing array only when the pooled one
// has insufficient capacity. The cleanup function returns the slice to
// the pool and must be called, typically with defer.
//
// Contents are not zeroed; callers overwrite every element.
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	s := (*ptr)[:0]

	if cap(s) < size {
		s = make([]float64, size)
	} else {
		s = s[:size]
	}
	*ptr = s

	return s, func() { float64SlicePool.Put(ptr) }
}

// GetByteSlice retrieves an empty byte slice with at least the requested
// capacity from the pool. The cleanup function returns the slice to the
// pool and must be called, typically with defer.
//
// The slice has zero length; callers append into it.
func GetByteSlice(capacity int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	s := (*ptr)[:0]

	if cap(s) < capacity {
		s = make([]byte, 0, capacity)
	}
	*ptr = s

	return s, func() { byteSlicePool.Put(ptr) }
}
