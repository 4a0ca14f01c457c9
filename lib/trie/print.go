// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"github.com/qdm12/gotree"
)

// String returns a human readable tree representation
// of the tree, for logging and debugging.
func (t *Trie) String() string {
	return t.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (t *Trie) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Tree root hash " + t.Hash().Short())
	stringNode.AppendNode(t.root.StringNode())
	return stringNode
}
