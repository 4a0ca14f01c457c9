// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import "errors"

var (
	// ErrKeyNotFound is returned by Get when no leaf in the
	// tree has the key given. It is a normal outcome for
	// absent keys, not a failure.
	ErrKeyNotFound = errors.New("key not found")
	// ErrValuePruned is returned by Get when the leaf for the
	// key only holds the digest of its value.
	ErrValuePruned = errors.New("value is pruned")
	// ErrPruned is returned when an operation reaches a pruned
	// subtree and cannot tell what it contains.
	ErrPruned = errors.New("subtree is pruned")
	// ErrDuplicateKey is returned by Build when two items
	// share the same key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrConflict is returned by Merge when the two trees
	// do not have the same root hash.
	ErrConflict = errors.New("tree root hashes differ")
	// ErrUnsupportedNodeType is returned when a node variant
	// appears where it cannot, for example a deletion marker
	// outside of a patch tree.
	ErrUnsupportedNodeType = errors.New("unsupported node type")
	// ErrHashMismatch is returned by Load when a node loaded
	// from the database does not hash to its database key.
	ErrHashMismatch = errors.New("node merkle value mismatch")
)
