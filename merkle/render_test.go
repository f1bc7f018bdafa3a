package merkle

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

// RenderTree has no role in verification, so it accepts nodes of any
// length; single byte nodes keep the expected output readable.

func TestRenderTreeEmpty(t *testing.T) {
	_, err := RenderTree(nil)
	assert.ErrorIs(t, err, ErrEmptyTreeRender)
}

func TestRenderTreeSingleNode(t *testing.T) {
	out, err := RenderTree([][]byte{{0xaa}})
	assert.NilError(t, err)
	assert.Equal(t, out, "0) aa")
}

func TestRenderTreeThreeNodes(t *testing.T) {
	out, err := RenderTree([][]byte{{0xaa}, {0xbb}, {0xcc}})
	assert.NilError(t, err)
	assert.Equal(t, out, strings.Join([]string{
		"0) aa",
		"├─ 1) bb",
		"└─ 2) cc",
	}, "\n"))
}

func TestRenderTreeFiveNodes(t *testing.T) {
	// Three leaves: node 2 is a leaf while node 1 has children.
	out, err := RenderTree([][]byte{{0x00}, {0x01}, {0x02}, {0x03}, {0x04}})
	assert.NilError(t, err)
	assert.Equal(t, out, strings.Join([]string{
		"0) 00",
		"├─ 1) 01",
		"│  ├─ 3) 03",
		"│  └─ 4) 04",
		"└─ 2) 02",
	}, "\n"))
}

func TestRenderTreeSevenNodes(t *testing.T) {
	tree := make([][]byte, 7)
	for i := range tree {
		tree[i] = []byte{byte(i)}
	}
	out, err := RenderTree(tree)
	assert.NilError(t, err)
	assert.Equal(t, out, strings.Join([]string{
		"0) 00",
		"├─ 1) 01",
		"│  ├─ 3) 03",
		"│  └─ 4) 04",
		"└─ 2) 02",
		"   ├─ 5) 05",
		"   └─ 6) 06",
	}, "\n"))
}
