// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/circled/fault"
)

// PoolHandle - the structure of a pool handle
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *Database
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a committed value for a given key
//
// this returns the actual element copied from the database
func (p *PoolHandle) Get(key []byte) []byte {
	db := p.database.db
	if nil == db {
		return nil
	}
	value, err := db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	fault.PanicIfError("pool.Get", err)
	return value
}

// GetN - read a committed record and decode the first 8 bytes as big endian uint64
//
// the second value is false if the key was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check if a committed key exists
func (p *PoolHandle) Has(key []byte) bool {
	db := p.database.db
	if nil == db {
		return false
	}
	value, err := db.Has(p.prefixKey(key), nil)
	fault.PanicIfError("pool.Has", err)
	return value
}

// Iterate - visit all committed elements whose key starts with prefix
// in ascending key order until the callback returns false
//
// keys are passed without the pool prefix; both slices are copies
func (p *PoolHandle) Iterate(prefix []byte, fn func(key []byte, value []byte) bool) {
	p.iterate(ldb_util.BytesPrefix(p.prefixKey(prefix)), fn)
}

// IterateFrom - visit all committed elements whose key is at or after start
func (p *PoolHandle) IterateFrom(start []byte, fn func(key []byte, value []byte) bool) {
	r := &ldb_util.Range{
		Start: p.prefixKey(start), // Start of key range, included in the range
		Limit: p.limit,            // Limit of key range, excluded from the range
	}
	p.iterate(r, fn)
}

func (p *PoolHandle) iterate(r *ldb_util.Range, fn func(key []byte, value []byte) bool) {
	db := p.database.db
	if nil == db {
		return
	}

	iter := db.NewIterator(r, nil)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !fn(dataKey, dataValue) {
			break
		}
	}
	iter.Release()
	fault.PanicIfError("pool.Iterate", iter.Error())
}

// LastElement - the committed element with the highest key
func (p *PoolHandle) LastElement() (Element, bool) {
	db := p.database.db
	if nil == db {
		return Element{}, false
	}

	maxRange := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
	iter := db.NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {
		key := iter.Key()
		value := iter.Value()

		result.Key = make([]byte, len(key)-1)
		copy(result.Key, key[1:])

		result.Value = make([]byte, len(value))
		copy(result.Value, value)
		found = true
	}
	iter.Release()
	fault.PanicIfError("pool.LastElement", iter.Error())
	return result, found
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		fault.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}
