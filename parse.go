package balanced

import (
	"strconv"

	"github.com/hupe1980/balanced/internal/conv"
)

// Parse interprets s in the given base (0, 2 to 36) as a balanced integer
// of width T, following strconv.ParseInt conventions. Text that denotes the
// minimum of T is rejected with *ErrOutOfRange.
func Parse[T Signed](s string, base int) (Int[T], error) {
	n, err := strconv.ParseInt(s, base, conv.BitSize[T]())
	if err != nil {
		return Int[T]{}, &ErrParse{Input: s, Base: base, cause: err}
	}
	b, ok := New(T(n))
	if !ok {
		return Int[T]{}, newOutOfRange[T](n)
	}
	return b, nil
}
