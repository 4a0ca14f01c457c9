// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package memory

import (
	"github.com/ChainSafe/merbinner/internal/database"
)

// writeBatch accumulates writes and deletions and applies
// them to the database when Flush is called.
type writeBatch struct {
	database  *Database
	keyValues map[string][]byte
	deletions map[string]struct{}
}

var _ database.Batch = (*writeBatch)(nil)

func (wb *writeBatch) Put(key, value []byte) error {
	valueCpy := make([]byte, len(value))
	copy(valueCpy, value)

	wb.keyValues[string(key)] = valueCpy
	delete(wb.deletions, string(key))
	return nil
}

func (wb *writeBatch) Del(key []byte) error {
	wb.deletions[string(key)] = struct{}{}
	delete(wb.keyValues, string(key))
	return nil
}

func (wb *writeBatch) Flush() error {
	wb.database.mutex.Lock()
	defer wb.database.mutex.Unlock()
	wb.database.panicOnClosed()

	for key, value := range wb.keyValues {
		wb.database.keyValues[key] = value
	}
	for key := range wb.deletions {
		delete(wb.database.keyValues, key)
	}

	wb.Reset()
	return nil
}

func (wb *writeBatch) ValueSize() int {
	return len(wb.keyValues) + len(wb.deletions)
}

func (wb *writeBatch) Reset() {
	wb.keyValues = make(map[string][]byte)
	wb.deletions = make(map[string]struct{})
}

func (wb *writeBatch) Close() error {
	wb.Reset()
	return nil
}
