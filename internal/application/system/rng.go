package system

import (
	"math/rand"
	"time"
)

// Rand is the random source used by world generation and enemy AI.
// *rand.Rand satisfies it; tests supply scripted sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand creates a seeded random source
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed returns fixed when non-zero, otherwise a time-based seed
func NewSeed(fixed int64) int64 {
	if fixed != 0 {
		return fixed
	}
	return time.Now().UnixNano()
}
