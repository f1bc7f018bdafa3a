// Package merkle builds binary merkle trees over fixed size leaf hashes and
// produces compact proofs of inclusion for one or many leaves.
//
// The tree is a complete binary tree realised as a single flat slice in the
// classic heap layout: the root is at index 0, and for any index i the left
// child is 2i+1, the right child is 2i+2 and the parent is (i-1)/2. A tree
// committing n leaves always has exactly 2n-1 nodes. The leaves occupy the
// trailing n slots in *reverse* input order, so the k'th input leaf lands at
// index len-1-k.
//
// For 4 input leaves A, B, C, D the node indices and contents are
//
//	        0
//	      /   \
//	     1     2
//	    / \   / \
//	   3   4 5   6
//	   D   C B   A
//
// Because navigation is pure index arithmetic, no node ever holds a
// reference to another node and nothing needs to be materialised beyond the
// one backing slice. The index primitives in index.go are the only way any
// function in this package moves around the tree.
//
// The function combining two children into their parent is supplied by the
// caller as a NodeHash. Construction always combines the structural left
// child first. Single proof verification instead orders each pair
// lexicographically before combining, and multiproof verification combines
// in replay order without sorting. For all three to reproduce the same root
// the supplied NodeHash MUST be symmetric under swapping its arguments,
// for example by sorting its two inputs before hashing, as the combiners in
// the hashes package do. This requirement is on the caller; nothing in this
// package can detect an asymmetric NodeHash.
//
// All functions are pure: they never retain state, never mutate their
// inputs, and a built tree is safe for concurrent read use.
package merkle
