// Package balanced provides balanced signed integers: fixed-width signed
// integers whose range excludes the two's-complement minimum.
//
// A balanced int8 holds -127 through 127, so its range is symmetric around
// zero and the bit pattern of -128 is never used. That spare pattern (a
// "niche") lets Option hold "no value" in the same single byte.
//
// # Types
//
// One generic type is instantiated for the four widths:
//
//	balanced.Int8   balanced.OptionInt8    // int8
//	balanced.Int16  balanced.OptionInt16   // int16
//	balanced.Int32  balanced.OptionInt32   // int32
//	balanced.Int64  balanced.OptionInt64   // int64
//
// unsafe.Sizeof(balanced.OptionInt8{}) == unsafe.Sizeof(int8(0)), and likewise
// for every width.
//
// # Construction
//
// New is the checked constructor and the one to use for untrusted input:
//
//	b, ok := balanced.New(int8(-128)) // ok == false
//	b, ok = balanced.New(int8(-127))  // ok == true
//
// Parse, FromInt64 and Convert validate the same way and report failures as
// *ErrOutOfRange or *ErrParse. MustNew panics instead.
//
// NewUnchecked skips validation. Handing it the minimum of the width is a
// broken contract, not an error: the result is outside the domain and its
// behaviour is undefined. Build with -tags balanced_assert to turn the
// contract into a panic while testing.
//
// # Operations
//
// Get returns the primitive, Abs the absolute value. Abs never overflows,
// since the one input whose absolute value does not fit is excluded:
//
//	balanced.MinInt8.Abs() == balanced.MaxInt8
//
// There is deliberately no other arithmetic.
//
// # Formatting
//
// Int implements fmt.Formatter and formats exactly as its primitive does,
// with the radix verbs (%b, %o, %O, %x, %X) printing the two's-complement
// bit pattern:
//
//	fmt.Sprintf("%d %x %o", balanced.MinInt8, balanced.MinInt8, balanced.MinInt8)
//	// -127 81 201
//
// Layout adds a custom fill rune and centering on top of that.
//
// # Logging
//
// Int and Option implement slog.LogValuer and log as integers.
//
// # Concurrency
//
// All types are immutable values and may be shared between goroutines
// without synchronization.
package balanced
