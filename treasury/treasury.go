// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treasury collects the premium fees paid when circles are deployed
package treasury

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/logger"
)

// Fee - one fee payment
type Fee struct {
	Payer     account.Address `json:"payer"`
	CircleId  uint64          `json:"circleId"`
	Amount    uint64          `json:"amount"`
	Timestamp uint64          `json:"timestamp"`
}

// Treasury - fee balance
type Treasury struct {
	address   account.Address
	depositor account.Address
	db        *storage.Database
	log       *logger.L
}

var totalKey = []byte("treasury")

// Address - the fixed address of the treasury
func Address() account.Address {
	return account.Derive(account.Zero, "treasury", 0)
}

// New - create a treasury that accepts deposits from one address
func New(db *storage.Database, depositor account.Address) *Treasury {
	return &Treasury{
		address:   Address(),
		depositor: depositor,
		db:        db,
		log:       logger.New("treasury"),
	}
}

// Address - the treasury's own address
func (t *Treasury) Address() account.Address {
	return t.address
}

// Deposit - record a fee
func (t *Treasury) Deposit(trx storage.Transaction, caller account.Address, payer account.Address, circleId uint64, value uint64) error {
	if caller != t.depositor {
		return fault.Unauthorized
	}
	if 0 == value {
		return fault.ErrInvalidAmount
	}

	total, _ := trx.GetN(t.db.Pool.Counters, totalKey)
	if total+value < total {
		return fault.ErrInvalidAmount
	}
	trx.PutN(t.db.Pool.Counters, totalKey, total+value)

	fee := Fee{
		Payer:     payer,
		CircleId:  circleId,
		Amount:    value,
		Timestamp: trx.Timestamp(),
	}
	key := storage.Key(payer.Bytes(), storage.N(circleId))
	if err := storage.PutObject(trx, t.db.Pool.Fees, key, &fee); nil != err {
		return err
	}

	t.log.Infof("fee: %d from: %s  circle: %d", value, payer, circleId)
	return nil
}

// Total - committed sum of all fees
func (t *Treasury) Total() uint64 {
	n, _ := t.db.GetN(t.db.Pool.Counters, totalKey)
	return n
}

// PaidBy - committed fees of one payer
func (t *Treasury) PaidBy(payer account.Address) ([]Fee, error) {
	fees := make([]Fee, 0, 4)
	var decodeError error
	t.db.Pool.Fees.Iterate(payer.Bytes(), func(key []byte, value []byte) bool {
		var f Fee
		if err := storage.DecodeObject(value, &f); nil != err {
			decodeError = err
			return false
		}
		fees = append(fees, f)
		return true
	})
	return fees, decodeError
}
