package merkle

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyTreeRender = errors.New("expected non-zero number of nodes")

// RenderTree produces a multi line, depth first dump of the tree for
// debugging. Each line carries the node index and the node hash in hex,
// prefixed with glyphs depicting the branch structure:
//
//	0) 46f6...
//	├─ 1) d253...
//	│  ├─ 3) 23a9...
//	│  └─ 4) 708e...
//	└─ 2) 8076...
//	   ├─ 5) 02d1...
//	   └─ 6) 5842...
//
// The rendering has no validation role.
func RenderTree(tree [][]byte) (string, error) {
	if len(tree) == 0 {
		return "", ErrEmptyTreeRender
	}

	// Each stack entry carries the node index and its ancestry path, one
	// entry per ancestor: branchLeft for a left child, branchLast for a
	// right (final) child.
	type frame struct {
		i    int
		path []byte
	}
	const (
		branchLast = byte(0)
		branchLeft = byte(1)
	)

	stack := []frame{{i: 0}}
	var lines []string

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var line strings.Builder
		for k := 0; k+1 < len(f.path); k++ {
			if f.path[k] == branchLast {
				line.WriteString("   ")
			} else {
				line.WriteString("│  ")
			}
		}
		if len(f.path) > 0 {
			if f.path[len(f.path)-1] == branchLast {
				line.WriteString("└─ ")
			} else {
				line.WriteString("├─ ")
			}
		}
		line.WriteString(fmt.Sprintf("%d) %s", f.i, hex.EncodeToString(tree[f.i])))
		lines = append(lines, line.String())

		if RightChild(f.i) < len(tree) {
			// Push the right child first so the left child renders first.
			rightPath := make([]byte, len(f.path), len(f.path)+1)
			copy(rightPath, f.path)
			stack = append(stack, frame{i: RightChild(f.i), path: append(rightPath, branchLast)})

			leftPath := make([]byte, len(f.path), len(f.path)+1)
			copy(leftPath, f.path)
			stack = append(stack, frame{i: LeftChild(f.i), path: append(leftPath, branchLeft)})
		}
	}

	return strings.Join(lines, "\n"), nil
}
