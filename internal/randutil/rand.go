// Package randutil builds deterministically-seeded random sources for the
// solver. sdk/engine.Deck.Shuffle consumes a v1 *math/rand.Rand, but the
// mixing function used to spread a caller's seed across two 64-bit PCG
// state words is v2 (math/rand/v2's PCG). v2Wrapper bridges the two.
package randutil

import (
	"math/rand"
	randv2 "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. The two PCG
// state words are derived by mixing seed and seed+goldenRatio64
// separately, so adjacent seeds don't produce correlated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	src := randv2.NewPCG(mix(u), mix(u+goldenRatio64))
	return rand.New(&v2Wrapper{src: src})
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// v2Wrapper adapts a math/rand/v2 PCG source to the v1 math/rand.Source
// interface, so code that only accepts *rand.Rand (sdk/engine) can
// still run on rand/v2's generator.
type v2Wrapper struct {
	src *randv2.PCG
}

func (w *v2Wrapper) Int63() int64 {
	return int64(w.src.Uint64() >> 1)
}

func (w *v2Wrapper) Seed(seed int64) {
	u := uint64(seed)
	*w.src = *randv2.NewPCG(mix(u), mix(u+goldenRatio64))
}
