// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package node defines the node variants of the merbinner tree
// together with their hashing and wire encoding.
package node

import (
	"io"

	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/qdm12/gotree"
)

// Node is a node in the tree and can be an empty node, a leaf,
// an inner node, a pruned inner node or a deletion marker.
type Node interface {
	Type() Type
	// MerkleValue returns the merkle value of the node.
	// It is computed when the node is created so this
	// is safe to call concurrently.
	MerkleValue() (merkleValue common.Hash)
	Encode(writer io.Writer) (err error)
	String() string
	StringNode() (stringNode *gotree.Node)
}
