package engine

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Source is the randomness the spawner consumes.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SystemSource returns a source seeded from the operating system's entropy.
func SystemSource() *rand.Rand {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// spawnOneIn is the inverse probability of spawning a rank 2 tile.
const spawnOneIn = 8

// spawnRank draws a new tile's rank: 1 with probability 7/8, 2 otherwise.
func spawnRank(src Source) uint8 {
	if src.IntN(spawnOneIn) == 0 {
		return 2
	}
	return 1
}

// Spawn places one new tile in an empty cell chosen uniformly at random.
// A full board is returned unchanged.
func Spawn(b Board, src Source) Board {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b
	}

	b[empty[src.IntN(len(empty))]] = spawnRank(src)
	return b
}
