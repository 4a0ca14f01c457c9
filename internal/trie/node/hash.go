// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"hash"

	"github.com/ChainSafe/merbinner/internal/trie/pools"
	"github.com/ChainSafe/merbinner/lib/common"
)

// Each node variant hashes a fixed size payload ending with
// its domain separation tag, so two variants can never share
// a merkle value for different contents.

func emptyMerkleValue() (merkleValue common.Hash) {
	hasher := pools.GetHasher()
	defer pools.Hashers.Put(hasher)
	_, _ = hasher.Write([]byte{emptyHashTag})
	return sumHash(hasher)
}

func leafMerkleValue(key, valueDigest common.Hash) (merkleValue common.Hash) {
	hasher := pools.GetHasher()
	defer pools.Hashers.Put(hasher)
	_, _ = hasher.Write(key[:])
	_, _ = hasher.Write(valueDigest[:])
	_, _ = hasher.Write([]byte{leafHashTag})
	return sumHash(hasher)
}

func innerMerkleValue(leftMerkleValue, rightMerkleValue common.Hash) (merkleValue common.Hash) {
	hasher := pools.GetHasher()
	defer pools.Hashers.Put(hasher)
	_, _ = hasher.Write(leftMerkleValue[:])
	_, _ = hasher.Write(rightMerkleValue[:])
	_, _ = hasher.Write([]byte{innerHashTag})
	return sumHash(hasher)
}

func sumHash(hasher hash.Hash) (digest common.Hash) {
	hasher.Sum(digest[:0])
	return digest
}
