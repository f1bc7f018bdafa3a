package merkle

import (
	"errors"
	"fmt"
)

var ErrNotLeafIndex = errors.New("index does not identify a leaf node")

// InclusionProof collects the merkle proof for the leaf stored at node
// index i: the sibling hashes on the path from i up to, but excluding, the
// root, in bottom up order.
//
// For the 4 leaf tree
//
//	        0
//	      /   \
//	     1     2
//	    / \   / \
//	   3   4 5   6
//
// the proof for node 5 is [tree[6], tree[1]].
//
// i must be a node index (see TreeIndex for converting from input leaf
// order) and must identify a leaf, otherwise ErrNotLeafIndex is returned.
func InclusionProof(tree [][]byte, i int) ([][]byte, error) {
	if !IsLeafNode(i, len(tree)) {
		return nil, fmt.Errorf("%w: index %d in tree of length %d", ErrNotLeafIndex, i, len(tree))
	}

	var proof [][]byte
	for i > 0 {
		if s := Sibling(i); IsTreeNode(s, len(tree)) {
			proof = append(proof, tree[s])
		}
		i = Parent(i)
	}
	return proof, nil
}
