// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasury_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/circled/treasury"
)

var (
	depositor = account.Derive(account.Zero, "deployer", 0)
	alice     = account.Derive(account.Zero, "alice", 0)
	bob       = account.Derive(account.Zero, "bob", 0)
)

func deposit(db *storage.Database, tr *treasury.Treasury, caller account.Address, payer account.Address, id uint64, value uint64) error {
	_, err := db.Atomic(5000, func(trx storage.Transaction) error {
		return tr.Deposit(trx, caller, payer, id, value)
	})
	return err
}

func TestDeposit(t *testing.T) {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer db.Close()

	tr := treasury.New(db, depositor)
	assert.Equal(t, treasury.Address(), tr.Address(), "address")

	assert.Nil(t, deposit(db, tr, depositor, alice, 1, 1000000), "first")
	assert.Nil(t, deposit(db, tr, depositor, alice, 3, 2000000), "second")
	assert.Nil(t, deposit(db, tr, depositor, bob, 2, 1000000), "bob")
	assert.Equal(t, uint64(4000000), tr.Total(), "total")

	fees, err := tr.PaidBy(alice)
	require.Nil(t, err, "paid by")
	require.Equal(t, 2, len(fees), "alice fees")
	assert.Equal(t, uint64(1), fees[0].CircleId, "first circle")
	assert.Equal(t, uint64(2000000), fees[1].Amount, "second amount")
	assert.Equal(t, uint64(5000), fees[1].Timestamp, "timestamp")
}

func TestDepositRejected(t *testing.T) {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer db.Close()

	tr := treasury.New(db, depositor)

	assert.Equal(t, fault.Unauthorized, deposit(db, tr, alice, alice, 1, 1000000), "not depositor")
	assert.Equal(t, fault.ErrInvalidAmount, deposit(db, tr, depositor, alice, 1, 0), "zero")
	assert.Equal(t, uint64(0), tr.Total(), "total")

	fees, err := tr.PaidBy(alice)
	require.Nil(t, err, "paid by")
	assert.Equal(t, 0, len(fees), "no fees")
}
