package conv

import (
	"fmt"
	"unsafe"
)

// Signed is the set of fixed-width signed integers handled by this package.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// BitSize returns the width of T in bits.
func BitSize[T Signed]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MinOf returns the two's-complement minimum of T.
func MinOf[T Signed]() T {
	return T(-1) << (BitSize[T]() - 1)
}

// MaxOf returns the maximum of T.
func MaxOf[T Signed]() T {
	return ^MinOf[T]()
}

// Pattern returns the two's-complement bit pattern of v, zero-extended to
// uint64. Pattern(int8(-1)) is 0xff, not 0xffffffffffffffff.
func Pattern[T Signed](v T) uint64 {
	bits := BitSize[T]()
	if bits == 64 {
		return uint64(v)
	}
	return uint64(v) & (1<<bits - 1)
}

// Int64ToSigned converts v to T safely, rejecting values outside the range
// of T.
func Int64ToSigned[T Signed](v int64) (T, error) {
	if v < int64(MinOf[T]()) || v > int64(MaxOf[T]()) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int%d", v, BitSize[T]())
	}
	return T(v), nil
}
