package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoyanov-kaloyan/merklerust/hashes"
	"github.com/stoyanov-kaloyan/merklerust/merkletesting"
)

func TestInclusionProofRejectsNonLeaf(t *testing.T) {
	g := merkletesting.NewLeafGenerator(10)
	tree, err := BuildHashes(g.Leaves(2), hashes.SHA256Node)
	require.NoError(t, err)

	type args struct {
		i int
	}
	tests := []struct {
		name string
		args args
	}{
		{name: "root of a 2 leaf tree is internal", args: args{0}},
		{name: "index past the end", args: args{3}},
		{name: "negative index", args: args{-1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InclusionProof(tree, tt.args.i)
			assert.ErrorIs(t, err, ErrNotLeafIndex)
		})
	}
}

func TestInclusionProofSingleLeaf(t *testing.T) {
	g := merkletesting.NewLeafGenerator(11)
	leaf := g.Leaf()
	tree, err := BuildHashes([][]byte{leaf}, hashes.SHA256Node)
	require.NoError(t, err)

	proof, err := InclusionProof(tree, 0)
	require.NoError(t, err)
	assert.Empty(t, proof)
}

func TestInclusionProofSiblingPath(t *testing.T) {
	// For 4 leaves the proof for node 5 must be its sibling then its
	// parent's sibling:
	//
	//	        0
	//	      /   \
	//	     1     2
	//	    / \   / \
	//	   3   4 5   6
	g := merkletesting.NewLeafGenerator(12)
	tree, err := BuildHashes(g.Leaves(4), hashes.SHA256Node)
	require.NoError(t, err)

	proof, err := InclusionProof(tree, 5)
	require.NoError(t, err)
	require.Len(t, proof, 2)
	assert.Equal(t, tree[6], proof[0])
	assert.Equal(t, tree[1], proof[1])
}

func TestInclusionProofLengths(t *testing.T) {
	// In the 2n-1 layout every leaf's proof has one entry per level
	// between it and the root.
	for _, n := range []int{1, 2, 3, 4, 5, 6, 7, 8, 16, 33} {
		g := merkletesting.NewLeafGenerator(int64(100 + n))
		tree, err := BuildHashes(g.Leaves(n), hashes.SHA256Node)
		require.NoError(t, err)

		for k := 0; k < n; k++ {
			i := TreeIndex(len(tree), k)
			proof, err := InclusionProof(tree, i)
			require.NoError(t, err)

			depth := 0
			for j := i; j > 0; j = Parent(j) {
				depth++
			}
			assert.Len(t, proof, depth, "leaf %d of %d", k, n)
		}
	}
}
