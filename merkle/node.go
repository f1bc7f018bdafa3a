package merkle

// NodeSize is the required length, in bytes, of every leaf, interior node
// and proof entry. It matches the output size of the 256 bit digests the
// scheme is normally used with.
const NodeSize = 32

// NodeHash combines two child nodes into their parent node. It must be
// deterministic, must return a NodeSize byte value, and must be symmetric
// under swapping left and right. See the package documentation for why
// symmetry is load bearing.
type NodeHash func(left, right []byte) []byte

// IsValidNode reports whether node is usable as a tree node.
func IsValidNode(node []byte) bool {
	return len(node) == NodeSize
}
