package merkle

// The navigation primitives for the flat heap layout. Every other file in
// this package reaches children, parents and siblings exclusively through
// these functions.
//
// Note that Parent and Sibling are undefined at the root: Parent(0) and
// Sibling(0) yield values the caller must not use. The callers in this
// package only ever apply them to indices > 0.

// LeftChild returns the index of the left child of i.
func LeftChild(i int) int {
	return 2*i + 1
}

// RightChild returns the index of the right child of i.
func RightChild(i int) int {
	return 2*i + 2
}

// Parent returns the index of the parent of i. Undefined for the root.
func Parent(i int) int {
	return (i - 1) / 2
}

// Sibling returns the index of the other child of i's parent. Undefined for
// the root.
func Sibling(i int) int {
	if i%2 == 0 {
		return i - 1
	}
	return i + 1
}

// IsTreeNode reports whether i is a node position in a tree of treeLen
// nodes.
func IsTreeNode(i, treeLen int) bool {
	return i >= 0 && i < treeLen
}

// IsInternalNode reports whether i has children in a tree of treeLen nodes.
func IsInternalNode(i, treeLen int) bool {
	return IsTreeNode(LeftChild(i), treeLen)
}

// IsLeafNode reports whether i is a leaf position in a tree of treeLen
// nodes. A leaf is a node whose left child index falls outside the tree.
func IsLeafNode(i, treeLen int) bool {
	return IsTreeNode(i, treeLen) && !IsInternalNode(i, treeLen)
}

// TreeIndex returns the node index holding the leafIndex'th input leaf for
// a tree of treeLen nodes. The leaves are stored reversed in the trailing
// slots, so the first input leaf is at the *highest* index.
func TreeIndex(treeLen, leafIndex int) int {
	return treeLen - 1 - leafIndex
}

// LeafIndex returns the input order position of the leaf stored at node
// treeIndex. It is the inverse of TreeIndex.
func LeafIndex(treeLen, treeIndex int) int {
	return treeLen - 1 - treeIndex
}
