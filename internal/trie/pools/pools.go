// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package pools contains synchronised pools of variables
// to reduce memory allocations.
package pools

import (
	"bytes"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// EncodingBuffers is a sync pool of buffers of capacity 128B,
// enough to hold any node hashing payload without growing.
var EncodingBuffers = &sync.Pool{
	New: func() interface{} {
		const initialBufferCapacity = 128
		b := make([]byte, 0, initialBufferCapacity)
		return bytes.NewBuffer(b)
	},
}

// Hashers is a sync pool of blake2b 256 hashers.
var Hashers = &sync.Pool{
	New: func() interface{} {
		hasher, err := blake2b.New256(nil)
		if err != nil {
			panic("cannot create Blake2b-256 hasher: " + err.Error())
		}
		return hasher
	},
}

// GetHasher returns a blake2b 256 hasher from the pool,
// resetting it before returning it.
func GetHasher() hash.Hash {
	hasher := Hashers.Get().(hash.Hash)
	hasher.Reset()
	return hasher
}
