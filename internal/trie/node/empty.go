// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/qdm12/gotree"
)

var _ Node = (*Empty)(nil)

// Empty is the empty node, marking the absence of any key
// under its position. All empty nodes share the same merkle
// value.
type Empty struct{}

var emptySingleton = &Empty{}

var emptyNodeMerkleValue = emptyMerkleValue()

// EmptyNode returns the shared empty node.
func EmptyNode() *Empty {
	return emptySingleton
}

// Type returns EmptyType.
func (e *Empty) Type() Type {
	return EmptyType
}

// MerkleValue returns the merkle value of the empty node.
func (e *Empty) MerkleValue() (merkleValue common.Hash) {
	return emptyNodeMerkleValue
}

func (e *Empty) String() string {
	return e.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (e *Empty) StringNode() (stringNode *gotree.Node) {
	return gotree.New("Empty")
}
