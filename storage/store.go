package storage

import (
	"errors"
	"fmt"

	"github.com/uastack/nodeid"
)

var (
	ErrDuplicateName = errors.New("name already stored")
	ErrDuplicateID   = errors.New("node id already stored")
)

// NodeStorer is a bidirectional name <-> NodeID index.
type NodeStorer interface {
	// Put stores the pair. It fails without modifying the store if either
	// the name or the NodeID is already present.
	Put(name string, id nodeid.NodeID) error
	GetByName(name string) (nodeid.NodeID, bool)
	GetByID(id nodeid.NodeID) (string, bool)
	// Keys returns the stored names in insertion order.
	Keys() []string
	Count() int
}

var _ NodeStorer = &InMemoryNodeStore{}

// InMemoryNodeStore keeps both directions in maps and the names in a slice
// to traverse the pairs in insertion order.
//
// Puts are not synchronized. Once the last Put has returned, any number of
// goroutines may read concurrently.
type InMemoryNodeStore struct {
	ids   map[string]nodeid.NodeID
	names map[nodeid.NodeID]string
	keys  []string
}

// NewInMemoryNodeStore returns an empty store with room for capacity pairs.
func NewInMemoryNodeStore(capacity int) *InMemoryNodeStore {
	return &InMemoryNodeStore{
		ids:   make(map[string]nodeid.NodeID, capacity),
		names: make(map[nodeid.NodeID]string, capacity),
		keys:  make([]string, 0, capacity),
	}
}

func (s *InMemoryNodeStore) Put(name string, id nodeid.NodeID) error {
	if prev, present := s.ids[name]; present {
		return fmt.Errorf("%w: %q is %v, pushed: %v", ErrDuplicateName, name, prev, id)
	}
	if prev, present := s.names[id]; present {
		return fmt.Errorf("%w: %v is %q, pushed: %q", ErrDuplicateID, id, prev, name)
	}
	s.ids[name] = id
	s.names[id] = name
	s.keys = append(s.keys, name)
	return nil
}

func (s *InMemoryNodeStore) GetByName(name string) (nodeid.NodeID, bool) {
	id, ok := s.ids[name]
	return id, ok
}

func (s *InMemoryNodeStore) GetByID(id nodeid.NodeID) (string, bool) {
	name, ok := s.names[id]
	return name, ok
}

// Keys returns the stored names in insertion order. The slice is shared
// with the store and must not be modified.
func (s *InMemoryNodeStore) Keys() []string {
	return s.keys
}

func (s *InMemoryNodeStore) Count() int {
	return len(s.keys)
}
