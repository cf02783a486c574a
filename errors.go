package balanced

import (
	"errors"
	"fmt"

	"github.com/hupe1980/balanced/internal/conv"
)

var (
	// ErrExcludedMinimum is returned when a value is the two's-complement
	// minimum of its width, the one value a balanced integer cannot hold.
	ErrExcludedMinimum = errors.New("value is the excluded two's-complement minimum")

	// ErrNone is the panic value of Option.MustGet on an empty option.
	ErrNone = errors.New("option is none")
)

// ErrOutOfRange indicates a value that does not fit the balanced range of a
// width.
//
// When Value is the excluded minimum, errors.Is(err, ErrExcludedMinimum)
// reports true.
type ErrOutOfRange struct {
	Value int64
	Bits  int
	cause error
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("value %d out of balanced int%d range", e.Value, e.Bits)
}

func (e *ErrOutOfRange) Unwrap() error { return e.cause }

func newOutOfRange[T Signed](v int64) *ErrOutOfRange {
	e := &ErrOutOfRange{Value: v, Bits: conv.BitSize[T]()}
	if v == int64(conv.MinOf[T]()) {
		e.cause = ErrExcludedMinimum
	}
	return e
}

// ErrParse indicates text that is not an integer of the requested width.
//
// The underlying *strconv.NumError can be accessed via errors.Unwrap.
type ErrParse struct {
	Input string
	Base  int
	cause error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("parse %q (base %d): %v", e.Input, e.Base, e.cause)
}

func (e *ErrParse) Unwrap() error { return e.cause }
