package problemgen

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source generators draw from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a deterministic PCG-backed source. A zero seed is replaced
// by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntBetween returns a uniform integer in [lo, hi].
func IntBetween(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// Chance returns true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// PickN returns n distinct elements of items in random order.
func PickN[T any](r Rand, items []T, n int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < n && i < len(pool); i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// ScriptedRand replays fixed draws, for tests that need exact parameters.
// IntN returns the next scripted integer reduced modulo n; Float64 the next
// scripted float. Exhausted scripts return zero.
type ScriptedRand struct {
	Ints   []int
	Floats []float64

	i, f int
}

func (s *ScriptedRand) IntN(n int) int {
	if s.i >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.i]
	s.i++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (s *ScriptedRand) Float64() float64 {
	if s.f >= len(s.Floats) {
		return 0
	}
	v := s.Floats[s.f]
	s.f++
	return v
}
