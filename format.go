package balanced

import (
	"fmt"
	"strconv"

	"github.com/hupe1980/balanced/internal/conv"
)

// String returns the signed decimal representation of b.
func (b Int[T]) String() string {
	return strconv.FormatInt(int64(b.v), 10)
}

// Format implements fmt.Formatter by deferring to the primitive.
//
// The radix verbs %b, %o, %O, %x and %X print the two's-complement bit
// pattern of the width, so MinInt8 prints as 81 under %x and 201 under %o.
// %s prints like %d. Every other verb, plus width, precision and flags, is
// handled exactly as fmt handles a T.
func (b Int[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), conv.Pattern(b.v))
	case 's':
		fmt.Fprintf(f, fmt.FormatString(f, 'd'), b.v)
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), b.v)
	}
}
