// Package conv provides width arithmetic and safe integer conversion for
// fixed-width signed integers.
//
// The helpers are generic over the four signed widths and derive every
// bound from the width of the type parameter, so callers never hard-code
// per-width constants.
//
// Use cases:
//   - Computing the primitive minimum/maximum of a type parameter
//   - Validating int64 values before narrowing them to a smaller width
//   - Rendering the two's-complement bit pattern of a negative value
//
// For conversions that are provably safe by domain constraints (e.g.
// widening), use direct type casts instead to avoid overhead.
package conv
