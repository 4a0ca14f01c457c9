// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

// Wire encoding variant bytes, one per node variant.
// A full leaf has a distinct variant from a leaf reduced
// to its value digest so decoding is unambiguous.
const (
	emptyVariant       byte = 0x00
	leafVariant        byte = 0x01
	innerVariant       byte = 0x02
	prunedInnerVariant byte = 0x03
	fullLeafVariant    byte = 0x04
	deletionVariant    byte = 0x05
)

// Hashing domain separation tags, appended to the
// hashing payload of each node variant. Pruned inner
// nodes have no tag since they carry the merkle value
// of the node they replaced verbatim.
const (
	emptyHashTag byte = 0x00
	leafHashTag  byte = 0x01
	innerHashTag byte = 0x02
)
