package internal

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair(l, r [32]byte) [32]byte {
	return sha256.Sum256(append(l[:], r[:]...))
}

func TestHashLeaf(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value []byte
		want  [32]byte
	}{
		{"empty", "", nil, sha256.Sum256([]byte{LeafPrefix, 0})},
		{"name only", "Boolean", nil, sha256.Sum256(append([]byte{LeafPrefix}, "Boolean\x00"...))},
		{"name and value", "Boolean", []byte{0, 1}, sha256.Sum256(append([]byte{LeafPrefix}, "Boolean\x00\x00\x01"...))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashLeaf(tt.key, tt.value))
		})
	}
}

func TestHashLeaf_SeparatesNameAndValue(t *testing.T) {
	assert.NotEqual(t, HashLeaf("ab", []byte("c")), HashLeaf("a", []byte("bc")))
}

func TestRoot(t *testing.T) {
	a := HashLeaf("a", []byte{1})
	b := HashLeaf("b", []byte{2})
	c := HashLeaf("c", []byte{3})
	d := HashLeaf("d", []byte{4})
	var zero [32]byte

	tests := []struct {
		name   string
		leaves [][32]byte
		want   [32]byte
	}{
		{"no leaves", nil, EmptyRoot()},
		{"one leaf", [][32]byte{a}, a},
		{"two leaves", [][32]byte{a, b}, pair(a, b)},
		{"three leaves", [][32]byte{a, b, c}, pair(pair(a, b), pair(c, zero))},
		{"four leaves", [][32]byte{a, b, c, d}, pair(pair(a, b), pair(c, d))},
		{"five leaves", [][32]byte{a, b, c, d, a}, pair(pair(pair(a, b), pair(c, d)), pair(pair(a, zero), zero))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Root(tt.leaves)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoot_DoesNotModifyInput(t *testing.T) {
	leaves := [][32]byte{HashLeaf("a", nil), HashLeaf("b", nil), HashLeaf("c", nil)}
	before := append([][32]byte(nil), leaves...)
	_, err := Root(leaves)
	require.NoError(t, err)
	assert.Equal(t, before, leaves)
}
