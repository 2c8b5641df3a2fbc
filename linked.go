package dsdemo

import (
	_ "runtime"
	_ "unsafe"
)

//go:linkname CheapRandN runtime.cheaprandn
//go:nosplit
func CheapRandN(n uint32) uint32

// CheapRand is a random source backed by the runtime's per-M generator. It
// needs no seeding or locking, so it's the default source of the card
// shuffles. It can't be seeded; use math/rand for reproducible sequences.
// The zero value is ready to use.
type CheapRand struct{}

// Intn returns a number in [0,n). n must be in (0, 1<<32).
func (CheapRand) Intn(n int) int {
	return int(CheapRandN(uint32(n)))
}
