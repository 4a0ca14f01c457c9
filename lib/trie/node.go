// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"github.com/ChainSafe/merbinner/internal/trie/node"
)

// Node is a node in the tree.
type Node = node.Node

// Leaf is a leaf node holding a key and its value,
// or only the digest of its value.
type Leaf = node.Leaf
