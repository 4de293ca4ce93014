package namespace

import (
	"errors"
	"fmt"
)

var (
	ErrNotStandardFirst = errors.New("namespace array must start with the standard namespace URI")
	ErrDuplicateURI     = errors.New("duplicate namespace URI")
	ErrEmptyURI         = errors.New("empty namespace URI")
	ErrTooManyURIs      = errors.New("too many namespaces")
)

// Table resolves namespace indexes to URIs and back.
type Table interface {
	// URIOf returns the URI registered at index.
	URIOf(index uint16) (string, bool)
	// IndexOf returns the index of uri.
	IndexOf(uri string) (uint16, bool)
}

var _ Table = (*Array)(nil)

// Array is a Table backed by a namespace array, the position of a URI
// being its index. It is immutable and safe for concurrent use.
type Array struct {
	uris    []string
	indexes map[string]uint16
}

// NewArray returns the Array for the given namespace array. The first URI
// must be StandardURI; with no URIs the array only holds the standard
// namespace.
func NewArray(uris ...string) (*Array, error) {
	if len(uris) == 0 {
		uris = []string{StandardURI}
	}
	if len(uris) > MaxLen {
		return nil, fmt.Errorf("%w: got: %v, max: %v", ErrTooManyURIs, len(uris), MaxLen)
	}
	if uris[0] != StandardURI {
		return nil, fmt.Errorf("%w: got: %q", ErrNotStandardFirst, uris[0])
	}
	a := &Array{
		uris:    make([]string, len(uris)),
		indexes: make(map[string]uint16, len(uris)),
	}
	copy(a.uris, uris)
	for i, uri := range a.uris {
		if uri == "" {
			return nil, fmt.Errorf("%w: at index %d", ErrEmptyURI, i)
		}
		if prev, found := a.indexes[uri]; found {
			return nil, fmt.Errorf("%w: %q at index %d and %d", ErrDuplicateURI, uri, prev, i)
		}
		a.indexes[uri] = uint16(i)
	}
	return a, nil
}

func (a *Array) URIOf(index uint16) (string, bool) {
	if int(index) >= len(a.uris) {
		return "", false
	}
	return a.uris[index], true
}

func (a *Array) IndexOf(uri string) (uint16, bool) {
	i, ok := a.indexes[uri]
	return i, ok
}

// Len returns the number of namespaces in the array.
func (a *Array) Len() int {
	return len(a.uris)
}

// URIs returns a copy of the namespace array.
func (a *Array) URIs() []string {
	out := make([]string, len(a.uris))
	copy(out, a.uris)
	return out
}
