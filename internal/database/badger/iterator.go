// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"github.com/ChainSafe/merbinner/internal/database"
	badger "github.com/dgraph-io/badger/v3"
)

// iterator wraps a badger iterator and its read transaction.
type iterator struct {
	started        bool
	txn            *badger.Txn
	badgerIterator *badger.Iterator
	prefix         []byte
}

var _ database.Iterator = (*iterator)(nil)

func (it *iterator) Valid() bool {
	return it.started && it.badgerIterator.ValidForPrefix(it.prefix)
}

func (it *iterator) Next() bool {
	if !it.started {
		return it.First()
	}
	it.badgerIterator.Next()
	return it.Valid()
}

func (it *iterator) First() bool {
	it.started = true
	it.badgerIterator.Rewind()
	return it.Valid()
}

func (it *iterator) SeekGE(key []byte) bool {
	it.started = true
	it.badgerIterator.Seek(key)
	return it.Valid()
}

func (it *iterator) Key() []byte {
	if !it.Valid() {
		return nil
	}
	return it.badgerIterator.Item().KeyCopy(nil)
}

func (it *iterator) Value() []byte {
	if !it.Valid() {
		return nil
	}
	value, err := it.badgerIterator.Item().ValueCopy(nil)
	if err != nil {
		return nil
	}
	return value
}

func (it *iterator) Release() {
	it.badgerIterator.Close()
	it.txn.Discard()
}
