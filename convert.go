package balanced

import (
	"github.com/hupe1980/balanced/internal/conv"
)

// FromInt64 converts v to a balanced integer of width T, failing with
// *ErrOutOfRange when v lies outside [Min[T], Max[T]].
func FromInt64[T Signed](v int64) (Int[T], error) {
	n, err := conv.Int64ToSigned[T](v)
	if err != nil {
		return Int[T]{}, &ErrOutOfRange{Value: v, Bits: conv.BitSize[T](), cause: err}
	}
	b, ok := New(n)
	if !ok {
		return Int[T]{}, newOutOfRange[T](v)
	}
	return b, nil
}

// Convert changes the width of b. Widening always succeeds; narrowing fails
// with *ErrOutOfRange when b does not fit the target range.
func Convert[To, From Signed](b Int[From]) (Int[To], error) {
	if conv.BitSize[To]() >= conv.BitSize[From]() {
		// A wider balanced range contains every narrower one.
		return fromRaw(To(b.v)), nil
	}
	return FromInt64[To](int64(b.v))
}
