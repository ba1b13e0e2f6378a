// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package amount converts between decimal strings and the base units
// held by the ledger
//
// one unit is 100 000 000 base units, i.e. "0.00000001" is uint64(1)
package amount

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/circled/fault"
)

// Decimals - fractional digits carried by a base unit
const Decimals = 8

// Unit - base units in one whole unit
const Unit = uint64(100000000)

var (
	scale   = decimal.New(1, Decimals)
	maximum = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)
)

// Parse - convert a decimal string to base units
//
// unlike a lenient scan this rejects negative values, more than
// eight decimal places and anything that would overflow
func Parse(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if nil != err {
		return 0, fault.ErrInvalidAmount
	}
	if d.Sign() < 0 {
		return 0, fault.ErrInvalidAmount
	}
	if d.Exponent() < -Decimals && !d.Equal(d.Truncate(Decimals)) {
		return 0, fault.ErrInvalidAmount
	}
	base := d.Mul(scale)
	if base.GreaterThan(maximum) {
		return 0, fault.ErrInvalidAmount
	}
	return base.BigInt().Uint64(), nil
}

// String - convert base units to a decimal string, i.e. 1050000000 → "10.5"
func String(value uint64) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(value), -Decimals)
	return d.String()
}
