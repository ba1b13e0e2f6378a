// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/circled/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 20

// Address - identifies a participant or a component
type Address [AddressLength]byte

// Zero - the unset address
var Zero Address

// AddressFromString - parse "0x" followed by 40 hex digits
func AddressFromString(s string) (Address, error) {
	a := Address{}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if 2*AddressLength != len(s) {
		return a, fault.ErrInvalidAddress
	}
	n, err := hex.Decode(a[:], []byte(s))
	if nil != err || AddressLength != n {
		return Zero, fault.ErrInvalidAddress
	}
	return a, nil
}

// Derive - deterministic address of a component created by parent
//
// the address is the last 20 bytes of keccak256(parent ‖ label ‖ nonce)
func Derive(parent Address, label string, nonce uint64) Address {
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, nonce)

	h := sha3.NewLegacyKeccak256()
	h.Write(parent[:])
	h.Write([]byte(label))
	h.Write(n)
	digest := h.Sum(nil)

	a := Address{}
	copy(a[:], digest[len(digest)-AddressLength:])
	return a
}

// IsZero - true for the unset address
func (a Address) IsZero() bool {
	return a == Zero
}

// Bytes - byte slice for use in storage keys
func (a Address) Bytes() []byte {
	return a[:]
}

// String - "0x" prefixed lower case hex
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert address to text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text into an address
func (a *Address) UnmarshalText(s []byte) error {
	b, err := AddressFromString(string(s))
	if nil != err {
		return err
	}
	*a = b
	return nil
}
