package testutil

import (
	"math/rand"
	"sync"
	"unsafe"
)

// Signed is the set of primitives Sample can produce.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// FillUint64 fills dst with pseudo-random uint64s.
// Locks only once per call (preferred over calling Uint64 in a loop).
func (r *RNG) FillUint64(dst []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Uint64()
	}
}

// Boundaries returns the values of T where off-by-one mistakes live:
// min, min+1, -1, 0, 1, max-1 and max.
func Boundaries[T Signed]() []T {
	var zero T
	minVal := T(-1) << (unsafe.Sizeof(zero)*8 - 1)
	maxVal := ^minVal
	return []T{minVal, minVal + 1, -1, 0, 1, maxVal - 1, maxVal}
}

// Sample returns n values of T: the Boundaries first, then uniformly
// distributed bit patterns. n smaller than the boundary count is raised to it.
func Sample[T Signed](r *RNG, n int) []T {
	out := Boundaries[T]()
	if n <= len(out) {
		return out
	}

	raw := make([]uint64, n-len(out))
	r.FillUint64(raw)
	for _, u := range raw {
		out = append(out, T(u))
	}
	return out
}
