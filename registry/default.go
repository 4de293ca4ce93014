package registry

import (
	"iter"
	"sync"

	"github.com/uastack/nodeid"
)

// segments lists the generated tables, one per node class.
func segments() [][]Entry {
	return [][]Entry{
		dataTypes,
		referenceTypes,
		objectTypes,
		variableTypes,
		objects,
		variables,
		methods,
	}
}

// NewStandard builds a fresh registry from the generated tables. Most
// callers want Default, which builds it once per process.
func NewStandard() (*Registry, error) {
	return New(segments()...)
}

var standard = sync.OnceValue(func() *Registry {
	r, err := NewStandard()
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the registry of the standard namespace. It is built on
// the first call; a corrupt generated table makes that call panic.
func Default() *Registry {
	return standard()
}

// ByName looks name up in the Default registry.
func ByName(name string) (nodeid.NodeID, bool) {
	return Default().ByName(name)
}

// NameOf looks id up in the Default registry.
func NameOf(id nodeid.NodeID) (string, bool) {
	return Default().NameOf(id)
}

// All iterates over the Default registry.
func All() iter.Seq2[string, nodeid.NodeID] {
	return Default().All()
}

// Len returns the size of the Default registry.
func Len() int {
	return Default().Len()
}
