// Package namespace maps namespace indexes to namespace URIs.
//
// NodeIDs carry a compact namespace index that is only meaningful together
// with the namespace array of the server or document they came from. The
// Table interface is that mapping; Array is an immutable in-memory Table.
// Index 0 is always the standard namespace.
package namespace
