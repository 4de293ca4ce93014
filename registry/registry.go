package registry

import (
	"fmt"
	"iter"
	"slices"

	"github.com/uastack/nodeid"
	"github.com/uastack/nodeid/internal"
	"github.com/uastack/nodeid/storage"
)

// Entry is one standard node: its symbolic name, NodeID and node class.
type Entry struct {
	Name  string        `json:"name" yaml:"name"`
	ID    nodeid.NodeID `json:"id" yaml:"id"`
	Class NodeClass     `json:"class" yaml:"class"`
}

// Registry is a bidirectional name <-> NodeID table restricted to namespace 0.
type Registry struct {
	store   *storage.InMemoryNodeStore
	classes map[string]NodeClass

	// leaves holds the digest leaves in NodeID order, positions the index
	// of each name in leaves.
	leaves    [][32]byte
	positions map[string]int
	digest    [32]byte
}

// New builds a Registry from one or more segments. Names and NodeIDs must be
// unique across all segments and every NodeID must be in namespace 0;
// otherwise New returns an *IntegrityError and no Registry.
func New(segments ...[]Entry) (*Registry, error) {
	size := 0
	for _, seg := range segments {
		size += len(seg)
	}
	r := &Registry{
		store:   storage.NewInMemoryNodeStore(size),
		classes: make(map[string]NodeClass, size),
	}
	for _, seg := range segments {
		for _, e := range seg {
			if err := checkNamespace(e.ID); err != nil {
				return nil, &IntegrityError{Entry: e, Err: err}
			}
			if err := r.store.Put(e.Name, e.ID); err != nil {
				return nil, &IntegrityError{Entry: e, Err: err}
			}
			r.classes[e.Name] = e.Class
		}
	}
	if err := r.computeDigest(); err != nil {
		return nil, fmt.Errorf("registry: digest: %w", err)
	}
	return r, nil
}

// ByName returns the NodeID registered under name.
func (r *Registry) ByName(name string) (nodeid.NodeID, bool) {
	return r.store.GetByName(name)
}

// NameOf returns the name registered for id. NodeIDs outside namespace 0
// are never found.
func (r *Registry) NameOf(id nodeid.NodeID) (string, bool) {
	return r.store.GetByID(id)
}

// Lookup returns the full entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	id, ok := r.store.GetByName(name)
	if !ok {
		return Entry{}, false
	}
	return Entry{Name: name, ID: id, Class: r.classes[name]}, true
}

// All yields every (name, NodeID) pair. The order is fixed for a given
// build of the table but carries no meaning. The sequence can be ranged
// over any number of times.
func (r *Registry) All() iter.Seq2[string, nodeid.NodeID] {
	return func(yield func(string, nodeid.NodeID) bool) {
		for _, name := range r.store.Keys() {
			id, _ := r.store.GetByName(name)
			if !yield(name, id) {
				return
			}
		}
	}
}

// Entries yields every entry in the same order as All.
func (r *Registry) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for name, id := range r.All() {
			if !yield(Entry{Name: name, ID: id, Class: r.classes[name]}) {
				return
			}
		}
	}
}

// Sorted returns all entries ordered by NodeID.
func (r *Registry) Sorted() []Entry {
	out := slices.Collect(r.Entries())
	slices.SortFunc(out, func(a, b Entry) int {
		return nodeid.Compare(a.ID, b.ID)
	})
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return r.store.Count()
}

// Digest returns the Merkle root over the entries ordered by NodeID. Each
// leaf commits to the name and the binary encoding of the NodeID, so the
// digest changes whenever an entry is added, removed or renumbered.
func (r *Registry) Digest() [32]byte {
	return r.digest
}

// Proof shows that one entry is part of the table with a given Digest.
type Proof struct {
	Index int
	Nodes [][32]byte
}

// Prove returns the inclusion proof of the entry registered under name.
func (r *Registry) Prove(name string) (Proof, bool) {
	pos, ok := r.positions[name]
	if !ok {
		return Proof{}, false
	}
	p, err := internal.Prove(r.leaves, pos)
	if err != nil {
		return Proof{}, false
	}
	return Proof{Index: p.Index, Nodes: p.Nodes}, true
}

// VerifyEntry reports whether p proves that e is part of the table whose
// Digest is root.
func VerifyEntry(root [32]byte, e Entry, p Proof) bool {
	leaf := internal.HashLeaf(e.Name, nodeid.Encode(e.ID))
	return internal.Proof{Index: p.Index, Nodes: p.Nodes}.Verify(leaf, root)
}

func (r *Registry) computeDigest() error {
	sorted := r.Sorted()
	r.leaves = make([][32]byte, len(sorted))
	r.positions = make(map[string]int, len(sorted))
	var buf []byte
	for i, e := range sorted {
		buf = e.ID.AppendBinary(buf[:0])
		r.leaves[i] = internal.HashLeaf(e.Name, buf)
		r.positions[e.Name] = i
	}
	digest, err := internal.Root(r.leaves)
	if err != nil {
		return err
	}
	r.digest = digest
	return nil
}
