package internal

import (
	"crypto/sha256"
	"fmt"

	"github.com/prysmaticlabs/gohashtree"
)

const (
	LeafPrefix = 0
	NodePrefix = 1
)

// HashLeaf computes sha256(LeafPrefix || name || 0x00 || value). The zero
// byte separates the name from the encoded value so that no two (name, value)
// pairs share a preimage.
func HashLeaf(name string, value []byte) [32]byte {
	h := sha256.New()
	data := make([]byte, 0, 2+len(name)+len(value))
	data = append(data, LeafPrefix)
	data = append(data, name...)
	data = append(data, 0)
	data = append(data, value...)
	//nolint:errcheck
	h.Write(data)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// EmptyRoot is the root of a tree without leaves.
func EmptyRoot() [32]byte {
	return sha256.Sum256([]byte{NodePrefix})
}

// Root returns the Merkle root of leaves. Each level is padded with a zero
// chunk when it has an odd number of nodes, and pairs are reduced with
// sha256(left || right). A single leaf is its own root.
func Root(leaves [][32]byte) ([32]byte, error) {
	if len(leaves) == 0 {
		return EmptyRoot(), nil
	}
	level := make([][32]byte, len(leaves), len(leaves)+1)
	copy(level, leaves)
	for len(level) > 1 {
		next, err := reduce(level)
		if err != nil {
			return [32]byte{}, err
		}
		level = next
	}
	return level[0], nil
}

// reduce hashes one level into the next. level is padded in place, so it
// must have spare capacity for one chunk.
func reduce(level [][32]byte) ([][32]byte, error) {
	if len(level)%2 == 1 {
		level = append(level, [32]byte{})
	}
	next := make([][32]byte, len(level)/2, len(level)/2+1)
	if err := gohashtree.Hash(next, level); err != nil {
		return nil, fmt.Errorf("hash level of %d nodes: %w", len(level), err)
	}
	return next, nil
}
