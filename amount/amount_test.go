// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/circled/amount"
	"github.com/bitmark-inc/circled/fault"
)

func TestParse(t *testing.T) {
	tests := []struct {
		s     string
		value uint64
	}{
		{"0", 0},
		{"0.0", 0},
		{"0.00000001", 1},
		{"0.01", 1000000},
		{"1", 100000000},
		{"1.0", 100000000},
		{"1.000000000", 100000000},
		{"1.1", 110000000},
		{"1.99999999", 199999999},
		{"99999999.99999999", 9999999999999999},
	}

	for i, item := range tests {
		value, err := amount.Parse(item.s)
		if assert.Nil(t, err, "%d: %q", i, item.s) {
			assert.Equal(t, item.value, value, "%d: %q", i, item.s)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"-1",
		"abc",
		"1.000000001",
		"0.000000001",
		"184467440737.09551616",
	}
	for i, s := range tests {
		_, err := amount.Parse(s)
		assert.Equal(t, fault.ErrInvalidAmount, err, "%d: %q", i, s)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", amount.String(0), "zero")
	assert.Equal(t, "0.01", amount.String(1000000), "premium fee")
	assert.Equal(t, "1", amount.String(amount.Unit), "one")
	assert.Equal(t, "10.5", amount.String(1050000000), "fraction")
	assert.Equal(t, "0.00000001", amount.String(1), "smallest")
}
