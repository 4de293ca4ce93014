// Package registry maps the symbolic names of the standard nodes (namespace 0)
// to their NodeIDs and back.
//
// The table is generated from the published NodeIds.csv and split into one
// segment per node class. The split is not visible through the API: a
// Registry behaves as one bidirectional table.
//
// # Thread Safety
//
// A Registry is immutable once New returns. Default builds the standard
// registry on first use and every method may then be called from any number
// of goroutines without locking.
package registry
