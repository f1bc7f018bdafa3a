// Package merkletesting generates deterministic leaf data for the test
// suites. Seeding the generator with a fixed value makes the generated
// leaves, and hence the trees and proofs built from them, identical from
// run to run.
package merkletesting

import (
	"crypto/sha256"
	"math/rand"

	"github.com/google/uuid"
)

type LeafGenerator struct {
	rng *rand.Rand
}

// NewLeafGenerator returns a generator whose output is fully determined by
// seed.
func NewLeafGenerator(seed int64) *LeafGenerator {
	return &LeafGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Leaf returns one 32 byte leaf hash. The leaf content is a generated uuid,
// standing in for the identity of a committed item, hashed to node size.
func (g *LeafGenerator) Leaf() []byte {
	id := uuid.Must(uuid.NewRandomFromReader(g.rng))
	sum := sha256.Sum256([]byte(id.String()))
	return sum[:]
}

// Leaves returns n leaf hashes.
func (g *LeafGenerator) Leaves(n int) [][]byte {
	leaves := make([][]byte, n)
	for i := range leaves {
		leaves[i] = g.Leaf()
	}
	return leaves
}
