package balanced

import (
	"cmp"

	"github.com/hupe1980/balanced/internal/conv"
)

// Signed is the set of primitives a balanced integer can wrap.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Int is a balanced signed integer: a T whose value is never the
// two's-complement minimum of T. The range [Min, Max] is symmetric around
// zero and the excluded bit pattern is left free for Option to use as its
// "none" marker.
//
// The zero value is balanced 0.
type Int[T Signed] struct {
	v T
}

// New creates a balanced integer unless v is the minimum of T.
//
// New is the only validating constructor; use it (or Parse, FromInt64)
// whenever the input is untrusted.
func New[T Signed](v T) (Int[T], bool) {
	if v > conv.MinOf[T]() {
		return Int[T]{v: v}, true
	}
	return Int[T]{}, false
}

// MustNew is like New but panics if v is the minimum of T.
// It simplifies safe initialization of package-level values.
func MustNew[T Signed](v T) Int[T] {
	b, ok := New(v)
	if !ok {
		panic(newOutOfRange[T](int64(v)))
	}
	return b
}

// NewUnchecked creates a balanced integer without checking that v is not
// the minimum of T.
//
// The caller asserts v != minimum of T. Passing the minimum does not report
// an error; it produces a value outside the balanced domain and every later
// use of it is undefined: Abs returns a negative number, ordering against
// Min is wrong and Some of it reads back as none. Never pass untrusted input.
//
// Builds with the balanced_assert tag panic on a violated precondition.
func NewUnchecked[T Signed](v T) Int[T] {
	if assertUnchecked && v == conv.MinOf[T]() {
		panic(newOutOfRange[T](int64(v)))
	}
	return fromRaw(v)
}

// fromRaw wraps a value already known to be in range.
func fromRaw[T Signed](v T) Int[T] {
	return Int[T]{v: v}
}

// Min returns the smallest balanced value of T, one above the primitive
// minimum.
func Min[T Signed]() Int[T] {
	return fromRaw(conv.MinOf[T]() + 1)
}

// Max returns the largest balanced value of T, the primitive maximum.
func Max[T Signed]() Int[T] {
	return fromRaw(conv.MaxOf[T]())
}

// Get returns the value as a primitive.
func (b Int[T]) Get() T {
	return b.v
}

// Int64 returns the value widened to int64.
func (b Int[T]) Int64() int64 {
	return int64(b.v)
}

// Abs computes the absolute value of b. The only input whose absolute value
// overflows T is excluded from the domain, so Abs cannot overflow.
//
//	balanced.MinInt8.Abs() == balanced.MaxInt8
func (b Int[T]) Abs() Int[T] {
	if b.v < 0 {
		return fromRaw(-b.v)
	}
	return b
}

// Compare returns -1, 0 or +1 depending on whether b is less than, equal to
// or greater than o.
func (b Int[T]) Compare(o Int[T]) int {
	return cmp.Compare(b.v, o.v)
}

// Less reports whether b < o.
func (b Int[T]) Less(o Int[T]) bool {
	return b.v < o.v
}

// Compare is the function form of Int.Compare, for slices.SortFunc and
// friends.
func Compare[T Signed](a, b Int[T]) int {
	return a.Compare(b)
}
