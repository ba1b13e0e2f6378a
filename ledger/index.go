// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/storage"
)

// Members - addresses of a circle's members in joining order
func Members(db *storage.Database, circleId uint64) []account.Address {
	members := make([]account.Address, 0, 8)
	db.Pool.MemberList.Iterate(storage.N(circleId), func(key []byte, value []byte) bool {
		a := account.Address{}
		copy(a[:], value)
		members = append(members, a)
		return true
	})
	return members
}

// CirclesOf - ids of all circles a member belongs to, ascending
func CirclesOf(db *storage.Database, member account.Address) []uint64 {
	circles := make([]uint64, 0, 4)
	db.Pool.MemberCircles.Iterate(member.Bytes(), func(key []byte, value []byte) bool {
		circles = append(circles, storage.FromN(key[account.AddressLength:]))
		return true
	})
	return circles
}

// Disbursements - all payouts received by an address
func Disbursements(db *storage.Database, recipient account.Address) ([]Disbursement, error) {
	list := make([]Disbursement, 0, 4)
	var decodeError error
	db.Pool.Disbursements.Iterate(recipient.Bytes(), func(key []byte, value []byte) bool {
		var d Disbursement
		if err := storage.DecodeObject(value, &d); nil != err {
			decodeError = err
			return false
		}
		list = append(list, d)
		return true
	})
	return list, decodeError
}
