// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/circled/rpc/governance"
)

// Propose - open a proposal
func (client *Client) Propose(arguments *governance.ProposeArguments) (json.RawMessage, error) {
	return client.call("Governance.Propose", arguments)
}

// Vote - for or against an open proposal
func (client *Client) Vote(arguments *governance.VoteArguments) (json.RawMessage, error) {
	return client.call("Governance.Vote", arguments)
}

// Execute - carry out a passed proposal
func (client *Client) Execute(arguments *governance.ProposalArguments) (json.RawMessage, error) {
	return client.call("Governance.Execute", arguments)
}

// GetProposal - one proposal and its state
func (client *Client) GetProposal(arguments *governance.ProposalArguments) (json.RawMessage, error) {
	return client.call("Governance.Get", arguments)
}

// ListProposals - all proposals of a circle
func (client *Client) ListProposals(circleId uint64) (json.RawMessage, error) {
	return client.call("Governance.List", &governance.ListArguments{CircleId: circleId})
}
