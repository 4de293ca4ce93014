/*
Package internal computes the digest of the well-known node table: a binary
Merkle tree over SHA-256 leaf hashes whose inner nodes are hashed with
gohashtree. It also builds and checks inclusion proofs against that digest.

This is an internal package s.t. the digest construction can change without
touching the public registry API.
*/
package internal
