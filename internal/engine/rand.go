package engine

import "math/rand/v2"

// Rand is the source of randomness for relief rolls, alert trials and remark
// picks. Tests inject a scripted implementation to pin outcomes.
type Rand interface {
	// IntN returns a uniform random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// systemRand delegates to the shared math/rand/v2 source.
type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }
