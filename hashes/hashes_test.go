package hashes

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoyanov-kaloyan/merklerust/merkletesting"
)

func TestKeccak256KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{
			name: "empty input",
			in:   nil,
			want: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			name: "abc",
			in:   []byte("abc"),
			want: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hex.EncodeToString(Keccak256(tt.in)))
		})
	}
}

// TestNodeHashSymmetry checks the property the merkle package depends on:
// the pair order must never influence the combined value.
func TestNodeHashSymmetry(t *testing.T) {
	g := merkletesting.NewLeafGenerator(50)
	combiners := map[string]func(a, b []byte) []byte{
		"sha256":    SHA256Node,
		"keccak256": Keccak256Node,
	}
	for name, combine := range combiners {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 64; i++ {
				a, b := g.Leaf(), g.Leaf()
				assert.Equal(t, combine(a, b), combine(b, a))
				assert.Len(t, combine(a, b), 32)
			}
		})
	}
}

func TestSHA256NodeSortsBeforeHashing(t *testing.T) {
	g := merkletesting.NewLeafGenerator(51)
	a, b := g.Leaf(), g.Leaf()

	lo, hi := a, b
	if string(hi) < string(lo) {
		lo, hi = hi, lo
	}
	h := sha256.New()
	h.Write(lo)
	h.Write(hi)
	want := h.Sum(nil)

	require.Equal(t, want, SHA256Node(a, b))
	require.Equal(t, want, SHA256Node(b, a))
}

func TestKeccak256NodeSortsBeforeHashing(t *testing.T) {
	g := merkletesting.NewLeafGenerator(52)
	a, b := g.Leaf(), g.Leaf()

	lo, hi := a, b
	if string(hi) < string(lo) {
		lo, hi = hi, lo
	}
	want := Keccak256(lo, hi)

	assert.Equal(t, want, Keccak256Node(a, b))
	assert.Equal(t, want, Keccak256Node(b, a))
}
