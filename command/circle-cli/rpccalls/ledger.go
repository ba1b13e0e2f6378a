// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/circled/rpc/ledger"
)

// Contribute - pay exactly one contribution
func (client *Client) Contribute(arguments *ledger.ContributeArguments) (json.RawMessage, error) {
	return client.call("Ledger.Contribute", arguments)
}

// GetMember - a member's ledger record
func (client *Client) GetMember(arguments *ledger.MemberArguments) (json.RawMessage, error) {
	return client.call("Ledger.Member", arguments)
}

// GetStreak - a member's streak
func (client *Client) GetStreak(arguments *ledger.MemberArguments) (json.RawMessage, error) {
	return client.call("Ledger.Streak", arguments)
}

// Disbursements - payouts received by an address
func (client *Client) Disbursements(arguments *ledger.DisbursementsArguments) (json.RawMessage, error) {
	return client.call("Ledger.Disbursements", arguments)
}
