// Package hashes provides concrete node hash functions for use with the
// merkle package.
//
// Both combiners order the pair lexicographically before hashing, which
// makes them symmetric under argument swap. That symmetry is a hard
// requirement of the merkle package: construction combines children in
// structural order while verification may combine in sorted or replay
// order, and only a symmetric combiner makes all of them agree on the same
// root.
package hashes

import (
	"bytes"
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the keccak-256 digest of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// SHA256Node combines two child nodes with SHA-256 over the sorted pair.
// This is the scheme's default node hash.
func SHA256Node(a, b []byte) []byte {
	left, right := sortPair(a, b)
	h := sha256.New()
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

// Keccak256Node combines two child nodes with keccak-256 over the sorted
// pair, compatible with the common solidity merkle proof verifiers.
func Keccak256Node(a, b []byte) []byte {
	left, right := sortPair(a, b)
	return Keccak256(left, right)
}

func sortPair(a, b []byte) ([]byte, []byte) {
	if bytes.Compare(a, b) <= 0 {
		return a, b
	}
	return b, a
}
