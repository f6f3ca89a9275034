package cputimer

import "math/rand"

// DPRNG is a Deterministic Pseudo-Random Number Generator based on the xorshift* algorithm
// (see https://en.wikipedia.org/wiki/Xorshift#xorshift*).
// It is used as a workload: its cost per call is constant, and its output depends on every
// previous call, so the compiler cannot drop a loop that consumes it.
// This randum number generator is not cryptographically secure.
// This randum number generator is not thread-safe.
// The initial state must not be zero.
type DPRNG struct {
	State uint64
	Round uint64 // for debugging purposes
}

// NewDPRNG returns a DPRNG starting at the given seed. Without a seed, or with a seed of 0,
// a random non-zero state is chosen.
func NewDPRNG(seed ...uint64) DPRNG {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	}
	for s == 0 {
		s = rand.Uint64()
	}
	return DPRNG{State: s}
}

// This function returns the next pseudo-random number in the sequence.
// It has a deterministic (i.e. constant) runtime and a high probability to be inlined by the compiler.
func (thisState *DPRNG) Uint64() uint64 {
	x := thisState.State
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	thisState.State = x
	thisState.Round++
	return x * 0x2545F4914F6CDD1D
}
