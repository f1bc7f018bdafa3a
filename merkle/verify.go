package merkle

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrInvalidProofNodeLength = errors.New("proof node must be exactly 32 bytes")

// IncludedRoot computes the root obtained by folding the proof into the
// leaf, bottom up. Each step orders the pair lexicographically before
// combining, so the caller does not need to know whether the running value
// was a left or a right child at that level.
//
// Tree construction does *not* sort (it always passes the structural left
// child first), so the computed root only agrees with BuildHashes when
// nodeHash is symmetric under swapping its arguments. See the package
// documentation.
//
// The returned value is a candidate root; compare it against a trusted
// root, or use VerifyInclusion which does the comparison.
func IncludedRoot(leaf []byte, proof [][]byte, nodeHash NodeHash) ([]byte, error) {
	if !IsValidNode(leaf) {
		return nil, fmt.Errorf("%w: got length %d", ErrInvalidLeafLength, len(leaf))
	}
	for i, p := range proof {
		if !IsValidNode(p) {
			return nil, fmt.Errorf("%w: proof node %d has length %d", ErrInvalidProofNodeLength, i, len(p))
		}
	}

	computed := leaf
	for _, p := range proof {
		var parent []byte
		if bytes.Compare(computed, p) <= 0 {
			parent = nodeHash(computed, p)
		} else {
			parent = nodeHash(p, computed)
		}
		if !IsValidNode(parent) {
			return nil, fmt.Errorf("%w: got length %d", ErrNodeHashLength, len(parent))
		}
		computed = parent
	}
	return computed, nil
}

// VerifyInclusion reports whether leaf, combined with proof, reproduces
// root.
func VerifyInclusion(root, leaf []byte, proof [][]byte, nodeHash NodeHash) (bool, error) {
	computed, err := IncludedRoot(leaf, proof, nodeHash)
	if err != nil {
		return false, err
	}
	return bytes.Equal(root, computed), nil
}
