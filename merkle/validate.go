package merkle

import "bytes"

// IsValidTree reports whether tree is a structurally sound merkle tree
// under nodeHash: every node is 32 bytes, no node has a dangling single
// child, and every interior node equals the combination of its children in
// structural left, right order (matching BuildHashes). An empty tree is
// invalid.
//
// Structural invalidity is an expected outcome for this check, so it is
// reported as a plain boolean rather than an error.
func IsValidTree(tree [][]byte, nodeHash NodeHash) bool {
	for _, n := range tree {
		if !IsValidNode(n) {
			return false
		}
	}

	for i := range tree {
		l := LeftChild(i)
		r := RightChild(i)

		if r >= len(tree) {
			if l < len(tree) {
				// A node with only a left child cannot occur in the
				// 2n-1 layout.
				return false
			}
			continue
		}

		expected := nodeHash(tree[l], tree[r])
		if !IsValidNode(expected) {
			return false
		}
		if !bytes.Equal(expected, tree[i]) {
			return false
		}
	}

	return len(tree) > 0
}
