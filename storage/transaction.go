// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/circled/fault"
)

// TxIdLength - bytes in a transaction id
const TxIdLength = 32

// TxId - identifies a committed operation
type TxId [TxIdLength]byte

// String - hex form
func (id TxId) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// MarshalText - convert to text for JSON
func (id TxId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert text into a transaction id
func (id *TxId) UnmarshalText(s []byte) error {
	if len(s) > 2 && '0' == s[0] && ('x' == s[1] || 'X' == s[1]) {
		s = s[2:]
	}
	if 2*TxIdLength != len(s) {
		return fault.ErrUnmarshalTextFail
	}
	if _, err := hex.Decode(id[:], s); nil != err {
		return fault.ErrUnmarshalTextFail
	}
	return nil
}

// Transaction - a set of writes that is committed as a whole or not at all
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)

	Id() TxId
	Sequence() uint64
	Timestamp() uint64

	Note(interface{})
	Notes() []interface{}
}

type transaction struct {
	batch     *leveldb.Batch
	cache     pending
	closed    bool
	id        TxId
	sequence  uint64
	timestamp uint64
	notes     []interface{}
}

var sequenceKey = []byte("transaction")

// Atomic - run fn inside a transaction
//
// transactions are serialised; all writes are committed in a single
// batch if fn returns nil, otherwise all are discarded and the
// error is returned
func (d *Database) Atomic(timestamp uint64, fn func(trx Transaction) error) (Transaction, error) {
	d.Lock()
	defer d.Unlock()

	if err := d.writable(); nil != err {
		return nil, err
	}

	trx := &transaction{
		batch:     new(leveldb.Batch),
		cache:     newCache(),
		timestamp: timestamp,
	}
	defer trx.cache.Clear()

	n, _ := trx.GetN(d.Pool.Counters, sequenceKey)
	trx.sequence = n + 1
	trx.PutN(d.Pool.Counters, sequenceKey, trx.sequence)
	trx.id = makeTxId(trx.sequence, timestamp)

	if err := fn(trx); nil != err {
		trx.closed = true
		d.log.Debugf("abort transaction: %d  error: %s", trx.sequence, err)
		return nil, err
	}

	trx.closed = true
	err := d.db.Write(trx.batch, &ldb_opt.WriteOptions{Sync: true})
	fault.PanicIfError("transaction.Commit", err)

	d.log.Debugf("commit transaction: %d  id: %s  writes: %d", trx.sequence, trx.id, trx.batch.Len())
	return trx, nil
}

func makeTxId(sequence uint64, timestamp uint64) TxId {
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[:8], sequence)
	binary.BigEndian.PutUint64(buffer[8:], timestamp)
	return TxId(sha3.Sum256(buffer))
}

func (t *transaction) mustBeOpen(op string) {
	if t.closed {
		fault.Panicf("transaction.%s: transaction is closed", op)
	}
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.mustBeOpen("Put")
	k := p.prefixKey(key)
	t.batch.Put(k, value)
	t.cache.Set(string(k), value)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

// Get - pending value if written in this transaction, otherwise committed value
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	if value, found := t.cache.Get(string(p.prefixKey(key))); found {
		return value
	}
	return p.Get(key)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	if _, found := t.cache.Get(string(p.prefixKey(key))); found {
		return true
	}
	return p.Has(key)
}

func (t *transaction) Id() TxId {
	return t.id
}

func (t *transaction) Sequence() uint64 {
	return t.sequence
}

func (t *transaction) Timestamp() uint64 {
	return t.timestamp
}

// Note - attach an item to be reported once the transaction commits
func (t *transaction) Note(item interface{}) {
	t.mustBeOpen("Note")
	t.notes = append(t.notes, item)
}

func (t *transaction) Notes() []interface{} {
	return t.notes
}
