// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

// Type is the byte type for the node.
type Type byte

const (
	// EmptyType type is 0
	EmptyType Type = iota
	// LeafType type is 1
	LeafType
	// InnerType type is 2
	InnerType
	// PrunedInnerType type is 3
	PrunedInnerType
	// DeletionType type is 4
	DeletionType
)

func (t Type) String() string {
	switch t {
	case EmptyType:
		return "empty"
	case LeafType:
		return "leaf"
	case InnerType:
		return "inner"
	case PrunedInnerType:
		return "pruned inner"
	case DeletionType:
		return "deletion"
	default:
		return "unknown"
	}
}
