package core

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
)

// RandSource provides random number generation for the bidding strategies.
// This interface enables dependency injection for deterministic testing.
type RandSource interface {
	// Intn returns a random integer in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// cryptoRandSource wraps crypto/rand for production use
type cryptoRandSource struct{}

// Intn returns a cryptographically secure random integer in [0, n).
// Panics if n <= 0 (programmer error).
func (cryptoRandSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("cryptoRandSource.Intn: n must be positive, got %d", n))
	}
	// rand.Int does not error when using rand.Reader
	// https://pkg.go.dev/crypto/rand#Int
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}

// DefaultRandSource returns the crypto/rand backed source. It carries no state,
// so every caller gets an independent source.
func DefaultRandSource() RandSource {
	return cryptoRandSource{}
}

// seededRandSource is a reproducible PCG source owned by a single bidder.
// Not safe for concurrent use.
type seededRandSource struct {
	rng *mathrand.Rand
}

// NewSeededRandSource returns a deterministic source for simulations that
// need to be replayed. Sources built from the same seed yield the same sequence.
func NewSeededRandSource(seed uint64) RandSource {
	return &seededRandSource{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRandSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("seededRandSource.Intn: n must be positive, got %d", n))
	}
	return s.rng.IntN(n)
}
