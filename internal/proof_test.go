package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLeaves(n int) [][32]byte {
	leaves := make([][32]byte, n)
	for i := range leaves {
		leaves[i] = HashLeaf(fmt.Sprintf("leaf%d", i), []byte{byte(i)})
	}
	return leaves
}

func TestProve_VerifyAllLeaves(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 9, 33} {
		t.Run(fmt.Sprintf("%d leaves", n), func(t *testing.T) {
			leaves := makeLeaves(n)
			root, err := Root(leaves)
			require.NoError(t, err)
			for i, leaf := range leaves {
				proof, err := Prove(leaves, i)
				require.NoError(t, err)
				assert.True(t, proof.Verify(leaf, root), "leaf %d", i)

				other := leaves[(i+1)%n]
				if other != leaf {
					assert.False(t, proof.Verify(other, root), "leaf %d verified with the wrong leaf", i)
				}
			}
		})
	}
}

func TestProve_Shape(t *testing.T) {
	leaves := makeLeaves(3)
	var zero [32]byte

	proof, err := Prove(leaves, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, proof.Index)
	assert.Equal(t, [][32]byte{zero, pair(leaves[0], leaves[1])}, proof.Nodes)

	single, err := Prove(leaves[:1], 0)
	require.NoError(t, err)
	assert.Empty(t, single.Nodes)
}

func TestProve_OutOfRange(t *testing.T) {
	leaves := makeLeaves(4)
	for _, idx := range []int{-1, 4} {
		_, err := Prove(leaves, idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	_, err := Prove(nil, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestProof_VerifyRejectsTampering(t *testing.T) {
	leaves := makeLeaves(6)
	root, err := Root(leaves)
	require.NoError(t, err)
	proof, err := Prove(leaves, 3)
	require.NoError(t, err)

	moved := proof
	moved.Index = 2
	assert.False(t, moved.Verify(leaves[3], root))

	outside := proof
	outside.Index = 1 << len(proof.Nodes)
	assert.False(t, outside.Verify(leaves[3], root))

	tampered := Proof{Index: proof.Index, Nodes: append([][32]byte(nil), proof.Nodes...)}
	tampered.Nodes[0][0] ^= 1
	assert.False(t, tampered.Verify(leaves[3], root))

	var otherRoot [32]byte
	assert.False(t, proof.Verify(leaves[3], otherRoot))
}
