// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/fxamacker/cbor/v2"
)

// GetObject - decode a CBOR record into v
//
// returns false if the key does not exist
func GetObject(r Reader, p *PoolHandle, key []byte, v interface{}) (bool, error) {
	buffer := r.Get(p, key)
	if nil == buffer {
		return false, nil
	}
	if err := cbor.Unmarshal(buffer, v); nil != err {
		return true, err
	}
	return true, nil
}

// DecodeObject - decode a CBOR value obtained from an iteration
func DecodeObject(buffer []byte, v interface{}) error {
	return cbor.Unmarshal(buffer, v)
}

// PutObject - encode v as a CBOR record
func PutObject(trx Transaction, p *PoolHandle, key []byte, v interface{}) error {
	buffer, err := cbor.Marshal(v)
	if nil != err {
		return err
	}
	trx.Put(p, key, buffer)
	return nil
}

// N - big endian encoding of a number so keys sort numerically
func N(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

// FromN - decode a key part created by N
func FromN(buffer []byte) uint64 {
	if len(buffer) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(buffer[:8])
}

// Key - concatenate key parts
func Key(parts ...[]byte) []byte {
	l := 0
	for _, p := range parts {
		l += len(p)
	}
	key := make([]byte, 0, l)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}
