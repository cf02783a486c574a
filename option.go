package balanced

import (
	"fmt"

	"github.com/hupe1980/balanced/internal/conv"
)

// Option is an optional balanced integer that occupies exactly the storage
// of T. The bit pattern Int excludes (the minimum of T) marks "none".
//
// The value is kept XOR the minimum of T so that the zero Option is none;
// Bits exposes the plain niche encoding.
type Option[T Signed] struct {
	enc T
}

// Some returns an option holding b.
func Some[T Signed](b Int[T]) Option[T] {
	return Option[T]{enc: b.v ^ conv.MinOf[T]()}
}

// None returns the empty option. It equals the zero Option.
func None[T Signed]() Option[T] {
	return Option[T]{}
}

// OptionOf decodes a primitive in niche encoding: the minimum of T is none,
// any other value is some. It is the inverse of Option.Bits and is total.
func OptionOf[T Signed](bits T) Option[T] {
	return Option[T]{enc: bits ^ conv.MinOf[T]()}
}

// Bits returns the niche encoding of o: the held value, or the minimum of T
// if o is none.
func (o Option[T]) Bits() T {
	return o.enc ^ conv.MinOf[T]()
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.enc != 0
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return o.enc == 0
}

// Get returns the held value and true, or the zero Int and false.
func (o Option[T]) Get() (Int[T], bool) {
	if o.enc == 0 {
		return Int[T]{}, false
	}
	return fromRaw(o.Bits()), true
}

// MustGet returns the held value and panics with ErrNone if o is empty.
func (o Option[T]) MustGet() Int[T] {
	b, ok := o.Get()
	if !ok {
		panic(ErrNone)
	}
	return b
}

// Or returns the held value, or def if o is empty.
func (o Option[T]) Or(def Int[T]) Int[T] {
	if b, ok := o.Get(); ok {
		return b
	}
	return def
}

// String returns the decimal value, or "none".
func (o Option[T]) String() string {
	if b, ok := o.Get(); ok {
		return b.String()
	}
	return "none"
}

// Format implements fmt.Formatter: a held value formats exactly like the
// Int it holds, none formats as the string "none" padded per the state.
func (o Option[T]) Format(f fmt.State, verb rune) {
	if b, ok := o.Get(); ok {
		b.Format(f, verb)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, 's'), "none")
}
