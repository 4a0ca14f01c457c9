// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"github.com/ChainSafe/merbinner/internal/database"
	badger "github.com/dgraph-io/badger/v3"
)

// writeBatch wraps the badger write batch.
type writeBatch struct {
	count            int
	badgerWriteBatch *badger.WriteBatch
}

var _ database.Batch = (*writeBatch)(nil)

func (wb *writeBatch) Put(key, value []byte) (err error) {
	err = wb.badgerWriteBatch.Set(key, value)
	if err != nil {
		return err
	}
	wb.count++
	return nil
}

func (wb *writeBatch) Del(key []byte) (err error) {
	err = wb.badgerWriteBatch.Delete(key)
	if err != nil {
		return err
	}
	wb.count++
	return nil
}

func (wb *writeBatch) Flush() (err error) {
	err = wb.badgerWriteBatch.Flush()
	wb.count = 0
	return err
}

func (wb *writeBatch) ValueSize() int {
	return wb.count
}

func (wb *writeBatch) Reset() {
	wb.badgerWriteBatch.Cancel()
	wb.count = 0
}

func (wb *writeBatch) Close() error {
	wb.badgerWriteBatch.Cancel()
	return nil
}
