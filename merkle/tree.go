package merkle

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTree         = errors.New("expected non-zero number of leaves")
	ErrInvalidLeafLength = errors.New("leaf must be exactly 32 bytes")
	ErrNodeHashLength    = errors.New("node hash must produce exactly 32 bytes")
)

// Build constructs the flat tree for any ordered leaf values, combining
// children with nodeHash. The input leaves are placed reversed in the
// trailing slots (see TreeIndex) and the interior nodes are filled from the
// last interior index down to the root, always combining the structural
// left child first.
//
// Build performs no validation of the leaf values themselves; use
// BuildHashes for the standard 32 byte node trees.
func Build[T any](leaves []T, nodeHash func(left, right T) T) ([]T, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	tree := make([]T, 2*len(leaves)-1)
	for i, leaf := range leaves {
		tree[TreeIndex(len(tree), i)] = leaf
	}
	for i := len(tree) - len(leaves) - 1; i >= 0; i-- {
		tree[i] = nodeHash(tree[LeftChild(i)], tree[RightChild(i)])
	}
	return tree, nil
}

// BuildHashes constructs the tree for 32 byte leaf hashes. Each leaf is
// rejected unless it is exactly NodeSize bytes, and the nodeHash output is
// checked at every interior node.
//
// The returned tree aliases the caller's leaf slices; the caller must not
// modify them afterwards.
func BuildHashes(leaves [][]byte, nodeHash NodeHash) ([][]byte, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	for i, leaf := range leaves {
		if !IsValidNode(leaf) {
			return nil, fmt.Errorf("%w: leaf %d has length %d", ErrInvalidLeafLength, i, len(leaf))
		}
	}

	tree := make([][]byte, 2*len(leaves)-1)
	for i, leaf := range leaves {
		tree[TreeIndex(len(tree), i)] = leaf
	}
	for i := len(tree) - len(leaves) - 1; i >= 0; i-- {
		parent := nodeHash(tree[LeftChild(i)], tree[RightChild(i)])
		if !IsValidNode(parent) {
			return nil, fmt.Errorf("%w: got length %d", ErrNodeHashLength, len(parent))
		}
		tree[i] = parent
	}
	return tree, nil
}
