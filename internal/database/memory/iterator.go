// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package memory

import (
	"sort"

	"github.com/ChainSafe/merbinner/internal/database"
)

// iterator iterates over a sorted snapshot of the database keys.
type iterator struct {
	index     int
	keys      []string
	keyValues map[string][]byte
}

var _ database.Iterator = (*iterator)(nil)

func (it *iterator) Valid() bool {
	return it.index >= 0 && it.index < len(it.keys)
}

func (it *iterator) Next() bool {
	it.index++
	return it.Valid()
}

func (it *iterator) First() bool {
	it.index = 0
	return it.Valid()
}

func (it *iterator) SeekGE(key []byte) bool {
	it.index = sort.SearchStrings(it.keys, string(key))
	return it.Valid()
}

func (it *iterator) Key() []byte {
	if !it.Valid() {
		return nil
	}
	return []byte(it.keys[it.index])
}

func (it *iterator) Value() []byte {
	if !it.Valid() {
		return nil
	}
	return it.keyValues[it.keys[it.index]]
}

func (it *iterator) Release() {
	it.index = -1
	it.keys = nil
	it.keyValues = nil
}
