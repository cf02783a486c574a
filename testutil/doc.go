// Package testutil provides testing utilities for balanced.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for sampling primitive integers
// where exhaustive enumeration is not feasible.
//
// # Sampling
//
//	rng := testutil.NewRNG(seed)
//	vals := testutil.Sample[int32](rng, 1000) // boundary values first
package testutil
