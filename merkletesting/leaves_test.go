package merkletesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafGeneratorDeterministic(t *testing.T) {
	a := NewLeafGenerator(1234).Leaves(16)
	b := NewLeafGenerator(1234).Leaves(16)
	assert.Equal(t, a, b)
}

func TestLeafGeneratorDistinctLeaves(t *testing.T) {
	leaves := NewLeafGenerator(1).Leaves(64)
	seen := map[string]bool{}
	for _, leaf := range leaves {
		require.Len(t, leaf, 32)
		require.False(t, seen[string(leaf)], "generated a duplicate leaf")
		seen[string(leaf)] = true
	}
}

func TestLeafGeneratorSeedsDiffer(t *testing.T) {
	assert.NotEqual(t, NewLeafGenerator(1).Leaf(), NewLeafGenerator(2).Leaf())
}
