package internal

import (
	"crypto/sha256"
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("leaf index out of range")

// Proof is the inclusion proof of one leaf: the sibling of every node on
// the path from the leaf to the root, leaf level first.
type Proof struct {
	Index int
	Nodes [][32]byte
}

// Prove returns the inclusion proof of leaves[index] in Root(leaves).
func Prove(leaves [][32]byte, index int) (Proof, error) {
	if index < 0 || index >= len(leaves) {
		return Proof{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(leaves))
	}
	proof := Proof{Index: index}
	level := make([][32]byte, len(leaves), len(leaves)+1)
	copy(level, leaves)
	for i := index; len(level) > 1; i /= 2 {
		sibling := i ^ 1
		if sibling < len(level) {
			proof.Nodes = append(proof.Nodes, level[sibling])
		} else {
			proof.Nodes = append(proof.Nodes, [32]byte{})
		}
		next, err := reduce(level)
		if err != nil {
			return Proof{}, err
		}
		level = next
	}
	return proof, nil
}

// Verify reports whether leaf is included in the tree with the given root.
func (p Proof) Verify(leaf, root [32]byte) bool {
	if p.Index < 0 || (len(p.Nodes) < 63 && p.Index >= 1<<len(p.Nodes)) {
		return false
	}
	h := leaf
	buf := make([]byte, 64)
	for i, node := range p.Nodes {
		if (p.Index>>i)&1 == 0 {
			copy(buf[:32], h[:])
			copy(buf[32:], node[:])
		} else {
			copy(buf[:32], node[:])
			copy(buf[32:], h[:])
		}
		h = sha256.Sum256(buf)
	}
	return h == root
}
