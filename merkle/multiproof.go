package merkle

import (
	"errors"
	"fmt"
	"sort"
)

var ErrDuplicateIndex = errors.New("cannot prove duplicated index")

// MultiProof is a compacted inclusion proof for several leaves at once.
//
// Leaves holds the proven leaf hashes ordered by descending node index
// (which is ascending input leaf order). Proof holds the sibling hashes
// that cannot be derived from the proven leaves themselves. ProofFlags
// describes, one entry per combine step, where the second operand of that
// step comes from: true means the next already derived value, false means
// the next entry of Proof.
//
// A well formed MultiProof satisfies
//
//	len(Leaves) + len(Proof) == len(ProofFlags) + 1
//
// and has at least as many Proof entries as false flags.
type MultiProof struct {
	Leaves     [][]byte
	Proof      [][]byte
	ProofFlags []bool
}

// InclusionMultiProof produces the MultiProof for the leaves stored at the
// given node indices. Every index must identify a leaf and no index may
// repeat.
//
// The compaction walks the requested indices as a queue ordered by
// descending index. Each round pops the front index, and either its sibling
// is the next queued index, in which case that sibling's value will itself
// be derived during verification and the step is flagged true, or the
// sibling's hash must be carried in Proof and the step is flagged false.
// The parent index joins the back of the queue either way, so the queue
// stays ordered and each shared ancestor is derived exactly once.
//
// Proving the empty set degenerates to revealing the root: the returned
// Proof then contains the root hash alone.
func InclusionMultiProof(tree [][]byte, indices []int) (MultiProof, error) {
	for _, i := range indices {
		if !IsLeafNode(i, len(tree)) {
			return MultiProof{}, fmt.Errorf("%w: index %d in tree of length %d", ErrNotLeafIndex, i, len(tree))
		}
	}

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return MultiProof{}, fmt.Errorf("%w: index %d", ErrDuplicateIndex, sorted[i])
		}
	}

	queue := make([]int, len(sorted))
	copy(queue, sorted)

	var proof [][]byte
	var flags []bool

	for len(queue) > 0 && queue[0] > 0 {
		j := queue[0]
		queue = queue[1:]

		s := Sibling(j)
		p := Parent(j)

		if len(queue) > 0 && queue[0] == s {
			// The sibling is itself being proven, so its value is
			// derived during verification rather than carried.
			flags = append(flags, true)
			queue = queue[1:]
		} else {
			flags = append(flags, false)
			proof = append(proof, tree[s])
		}
		queue = append(queue, p)
	}

	if len(sorted) == 0 {
		proof = append(proof, tree[0])
	}

	leaves := make([][]byte, len(sorted))
	for k, i := range sorted {
		leaves[k] = tree[i]
	}

	return MultiProof{Leaves: leaves, Proof: proof, ProofFlags: flags}, nil
}
