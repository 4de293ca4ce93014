package nodeid

import (
	"cmp"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// NodeID addresses one node of the information model: a namespace index
// qualifying an Identifier.
//
// NodeID is an immutable value type. It is comparable, so two NodeIDs can be
// checked with == and used as map keys. The zero value is the null NodeID
// (namespace 0, Numeric(0)).
type NodeID struct {
	ns uint16
	id Identifier
}

// Null is the null NodeID. It is a regular value, not a marker for absence.
var Null = NodeID{}

// New returns the NodeID for the identifier in namespace ns.
func New(ns uint16, id Identifier) NodeID {
	return NodeID{ns: ns, id: id}
}

func NewNumeric(ns uint16, v uint32) NodeID {
	return New(ns, Numeric(v))
}

func NewString(ns uint16, s string) NodeID {
	return New(ns, Text(s))
}

func NewGUID(ns uint16, g uuid.UUID) NodeID {
	return New(ns, GUID(g))
}

// NewOpaque returns an opaque NodeID. The bytes are copied.
func NewOpaque(ns uint16, b []byte) NodeID {
	return New(ns, Opaque(b))
}

// Namespace returns the namespace index of the NodeID.
func (n NodeID) Namespace() uint16 {
	return n.ns
}

// Identifier returns the identifier payload of the NodeID.
func (n NodeID) Identifier() Identifier {
	return n.id
}

// Type returns the identifier variant of the NodeID.
func (n NodeID) Type() Type {
	return n.id.typ
}

// IsNull reports whether n is the null NodeID.
func (n NodeID) IsNull() bool {
	return n == Null
}

// Equal returns true if n == other, otherwise, false.
func (n NodeID) Equal(other NodeID) bool {
	return n == other
}

// Less returns true if n < other, otherwise, false.
func (n NodeID) Less(other NodeID) bool {
	return Compare(n, other) < 0
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to or
// after b. NodeIDs are ordered by namespace index, then by identifier variant
// (Numeric < String < Guid < Opaque), then by payload. The order is only
// meant for deterministic output and has no protocol meaning.
func Compare(a, b NodeID) int {
	if c := cmp.Compare(a.ns, b.ns); c != 0 {
		return c
	}
	return a.id.compare(b.id)
}

// Sort sorts ids in place in ascending Compare order.
func Sort(ids []NodeID) {
	slices.SortFunc(ids, Compare)
}

// Hash returns a 64-bit hash of n. Equal NodeIDs have equal hashes, and the
// value is stable across processes since it is derived from the binary
// encoding only.
func (n NodeID) Hash() uint64 {
	var scratch [32]byte
	return xxhash.Sum64(n.AppendBinary(scratch[:0]))
}
