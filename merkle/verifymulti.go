package merkle

import (
	"bytes"
	"errors"
	"fmt"
)

var ErrProofInvariant = errors.New("multiproof invariant violated")

// MultiIncludedRoot replays a MultiProof's flag sequence to reconstruct the
// candidate root.
//
// The proven leaves seed a FIFO of derived values. For each flag, the front
// derived value is combined with either the next derived value (flag true)
// or the next Proof entry (flag false), and the result joins the back of
// the FIFO. After the last flag exactly one value must remain between the
// two queues; that value is the candidate root.
//
// Unlike IncludedRoot, the pair is combined in pop order and is NOT sorted
// first. The two verifiers still agree because the required NodeHash
// symmetry makes the pair order irrelevant; see the package documentation.
func MultiIncludedRoot(mp MultiProof, nodeHash NodeHash) ([]byte, error) {
	falseFlags := 0
	for _, f := range mp.ProofFlags {
		if !f {
			falseFlags++
		}
	}
	if len(mp.Proof) < falseFlags || len(mp.Leaves)+len(mp.Proof) != len(mp.ProofFlags)+1 {
		return nil, fmt.Errorf(
			"%w: %d leaves and %d proof nodes are incompatible with %d flags",
			ErrProofInvariant, len(mp.Leaves), len(mp.Proof), len(mp.ProofFlags))
	}
	for i, l := range mp.Leaves {
		if !IsValidNode(l) {
			return nil, fmt.Errorf("%w: leaf %d has length %d", ErrInvalidLeafLength, i, len(l))
		}
	}
	for i, p := range mp.Proof {
		if !IsValidNode(p) {
			return nil, fmt.Errorf("%w: proof node %d has length %d", ErrInvalidProofNodeLength, i, len(p))
		}
	}

	stack := make([][]byte, len(mp.Leaves))
	copy(stack, mp.Leaves)
	proof := make([][]byte, len(mp.Proof))
	copy(proof, mp.Proof)

	for _, flag := range mp.ProofFlags {
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w: ran out of derived values", ErrProofInvariant)
		}
		a := stack[0]
		stack = stack[1:]

		var b []byte
		if flag {
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: ran out of derived values", ErrProofInvariant)
			}
			b = stack[0]
			stack = stack[1:]
		} else {
			if len(proof) == 0 {
				return nil, fmt.Errorf("%w: ran out of proof nodes", ErrProofInvariant)
			}
			b = proof[0]
			proof = proof[1:]
		}

		parent := nodeHash(a, b)
		if !IsValidNode(parent) {
			return nil, fmt.Errorf("%w: got length %d", ErrNodeHashLength, len(parent))
		}
		stack = append(stack, parent)
	}

	if len(stack)+len(proof) != 1 {
		return nil, fmt.Errorf(
			"%w: %d values remain after replay", ErrProofInvariant, len(stack)+len(proof))
	}
	if len(stack) == 1 {
		return stack[0], nil
	}
	return proof[0], nil
}

// VerifyMultiInclusion reports whether mp reconstructs root.
func VerifyMultiInclusion(root []byte, mp MultiProof, nodeHash NodeHash) (bool, error) {
	computed, err := MultiIncludedRoot(mp, nodeHash)
	if err != nil {
		return false, err
	}
	return bytes.Equal(root, computed), nil
}
